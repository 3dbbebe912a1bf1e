package components

import (
	"github.com/automoto/herbclinic/shared/motion"
	"github.com/yohamta/donburi"
)

// PhysicsData holds the velocity resolved from input this frame, in world
// units per second (y-up).
type PhysicsData struct {
	Velocity motion.Vector
	Speed    float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
