package archetypes

import (
	"github.com/automoto/herbclinic/components"
	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Animation,
	)
	NPC = newArchetype(
		tags.NPC,
		components.NPC,
		components.Object,
		components.Animation,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Exit,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	HUD = newArchetype(
		components.HUD,
	)
	Overlay = newArchetype(
		components.Overlay,
	)
	Sync = newArchetype(
		components.Sync,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
