package components

import (
	"github.com/automoto/herbclinic/assets"
	"github.com/automoto/herbclinic/assets/animations"
	"github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/shared/motion"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Clips       *animations.Player[motion.Clip]
	SheetKey    string // e.g. "player", "npc"
	Palette     assets.Palette
	FrameWidth  int
	FrameHeight int
}

// SheetState maps the playing clip to the sprite sheet drawn for it.
func (a *AnimationData) SheetState() config.StateID {
	if a.Clips.Current().Walking {
		return config.Walk
	}
	return config.Idle
}

var Animation = donburi.NewComponentType[AnimationData]()
