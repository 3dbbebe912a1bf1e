package systems

import (
	"github.com/automoto/herbclinic/components"
	"github.com/yohamta/donburi/ecs"
)

func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}

// UpdateAnimations steps the playing clip of every animated entity.
func UpdateAnimations(ecs *ecs.ECS) {
	for e := range components.Animation.Iter(ecs.World) {
		components.Animation.Get(e).Clips.Update()
	}
}
