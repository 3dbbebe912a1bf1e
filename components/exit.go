package components

import (
	"github.com/automoto/herbclinic/shared/leveldata"
	"github.com/yohamta/donburi"
)

type ExitData struct {
	leveldata.Exit
	Touching bool
	// Entered is set on the frame contact begins
	Entered bool
}

var Exit = donburi.NewComponentType[ExitData]()
