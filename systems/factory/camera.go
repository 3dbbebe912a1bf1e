package factory

import (
	"github.com/automoto/herbclinic/archetypes"
	"github.com/automoto/herbclinic/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera already centered on x, y so the first frame
// does not pan in from the origin.
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: math.NewVec2(x, y)})
	return camera
}
