package config

import (
	"github.com/automoto/herbclinic/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionInteract
	ActionBackpack
	ActionBack
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Movement keys feed the key stack rather than the action table
	Movement map[ebiten.Key]motion.Direction
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionInteract: {Keys: []ebiten.Key{ebiten.KeyF}},
			ActionBackpack: {Keys: []ebiten.Key{ebiten.KeyB}},
			ActionBack:     {Keys: []ebiten.Key{ebiten.KeyEscape}},
			ActionDebug:    {Keys: []ebiten.Key{ebiten.KeyF3}},
		},
		Movement: map[ebiten.Key]motion.Direction{
			ebiten.KeyW:          motion.DirUp,
			ebiten.KeyArrowUp:    motion.DirUp,
			ebiten.KeyS:          motion.DirDown,
			ebiten.KeyArrowDown:  motion.DirDown,
			ebiten.KeyA:          motion.DirLeft,
			ebiten.KeyArrowLeft:  motion.DirLeft,
			ebiten.KeyD:          motion.DirRight,
			ebiten.KeyArrowRight: motion.DirRight,
		},
	}
}
