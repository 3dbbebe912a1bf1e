package components

import (
	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the ordered stack of held movement keys.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Keys     *motion.KeyStack[ebiten.Key]
}

var Input = donburi.NewComponentType[InputData]()
