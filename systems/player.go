package systems

import (
	"github.com/automoto/herbclinic/components"
	"github.com/automoto/herbclinic/shared/messages"
	"github.com/automoto/herbclinic/shared/motion"
	"github.com/automoto/herbclinic/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer resolves the held keys into a velocity and starts a new
// animation clip only when the locomotion state actually changed.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)

		if player.Frozen {
			physics.Velocity = motion.Vector{}
		} else {
			physics.Velocity = motion.Resolve(player.Policy, input.Keys, physics.Speed)
		}

		if clip, changed := player.Locomotion.Update(physics.Velocity); changed {
			components.Animation.Get(e).Clips.Play(clip)
		}
	})
}

// SetPlayerFrozen stops or resumes movement. Held keys are dropped either
// way so nothing keeps walking after a panel closes.
func SetPlayerFrozen(ecs *ecs.ECS, frozen bool) {
	if e, ok := tags.Player.First(ecs.World); ok {
		components.Player.Get(e).Frozen = frozen
	}
	ResetMovementKeys(ecs)
}

// PlayerPosition returns the player center in world coordinates.
func PlayerPosition(ecs *ecs.ECS) (messages.Position, bool) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return messages.Position{}, false
	}
	level, ok := currentLevel(ecs)
	if !ok {
		return messages.Position{}, false
	}
	x, y := level.ToWorld(components.Object.Get(playerEntry).Center())
	return messages.Position{MapID: level.MapID, X: x, Y: y}, true
}

// PlacePlayer moves the player so its center sits on the world position.
func PlacePlayer(ecs *ecs.ECS, x, y float64) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	level, ok := currentLevel(ecs)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry).Object
	mx, my := level.ToMap(x, y)
	obj.X = mx - obj.W/2
	obj.Y = my - obj.H/2
	obj.Update()
}
