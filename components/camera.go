package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Snapped  bool // false until the first frame with a player
}

var Camera = donburi.NewComponentType[CameraData]()
