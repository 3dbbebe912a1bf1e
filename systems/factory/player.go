package factory

import (
	"github.com/automoto/herbclinic/archetypes"
	"github.com/automoto/herbclinic/assets"
	"github.com/automoto/herbclinic/components"
	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/shared/motion"
	"github.com/automoto/herbclinic/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centered on cx, cy in TMX space.
func CreatePlayer(ecs *ecs.ECS, cx, cy float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	obj := resolv.NewObject(cx-w/2, cy-h/2, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Locomotion: motion.NewLocomotion(),
		Policy:     cfg.Player.Policy,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Speed: cfg.Player.MoveSpeed,
	})
	components.Animation.Set(player, GenerateAnimations("player", assets.PlayerPalette, int(w), int(h)))

	addToSpace(ecs, obj)
	return player
}
