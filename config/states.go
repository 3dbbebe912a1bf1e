package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer used by every scene.
const Default ecs.LayerID = 0

// StateID identifies an animation state of a character
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walk
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	}
	return "none"
}
