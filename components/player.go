package components

import (
	"github.com/automoto/herbclinic/shared/motion"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Locomotion motion.Locomotion
	Policy     motion.Policy
	// Frozen stops movement while a panel has focus
	Frozen bool
}

var Player = donburi.NewComponentType[PlayerData]()
