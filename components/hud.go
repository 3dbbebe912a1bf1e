package components

import (
	"github.com/automoto/herbclinic/shared/hudtext"
	"github.com/yohamta/donburi"
)

// HUDData is the singleton holding every string the HUD draws. It is only
// written by relay subscribers and the clock.
type HUDData struct {
	Stats    hudtext.Stats
	Location string
	Clock    string
	Prompt   string

	Notice      string
	NoticeTimer float64 // seconds left
}

var HUD = donburi.NewComponentType[HUDData]()
