package factory

import (
	"github.com/automoto/herbclinic/archetypes"
	"github.com/automoto/herbclinic/components"
	"github.com/automoto/herbclinic/shared/leveldata"
	"github.com/automoto/herbclinic/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateExit spawns a door. Exits are not solid; the player walks onto them.
func CreateExit(ecs *ecs.ECS, exit leveldata.Exit) *donburi.Entry {
	entry := archetypes.Exit.Spawn(ecs)

	obj := resolv.NewObject(exit.X, exit.Y, exit.W, exit.H, tags.ResolvExit)
	obj.SetShape(resolv.NewRectangle(0, 0, exit.W, exit.H))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Exit.SetValue(entry, components.ExitData{Exit: exit})

	addToSpace(ecs, obj)
	return entry
}
