package systems

import (
	"github.com/automoto/herbclinic/components"
	"github.com/automoto/herbclinic/shared/gamemath"
	"github.com/automoto/herbclinic/shared/relay"
	"github.com/automoto/herbclinic/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactMargin is how close (in pixels) the player must stand to an NPC or
// exit to count as touching it.
const contactMargin = 2.0

// UpdateCollisions moves the player by its velocity, one axis at a time, and
// stops it flush against solids. Every tick with a non-zero velocity publishes
// the new coordinates to the HUD, even when a wall blocks the move.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := 1.0 / float64(ebiten.TPS())

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		if physics.Velocity.IsZero() {
			return
		}

		// World space is y-up, the collision space is y-down
		dx := gamemath.Step(physics.Velocity.X, dt)
		dy := -gamemath.Step(physics.Velocity.Y, dt)

		moveHorizontal(obj.Object, dx)
		moveVertical(obj.Object, dy)
		clampToLevel(ecs, obj.Object)
		obj.Update()

		if pos, ok := PlayerPosition(ecs); ok {
			relay.PublishCoordinates(ecs.World, pos)
		}
	})
}

func moveHorizontal(object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlaps(object, solid, dx, 0, 0) {
			dx = check.ContactWithObject(solid).X()
			break
		}
	}
	object.X += dx
}

func moveVertical(object *resolv.Object, dy float64) {
	if dy == 0 {
		return
	}
	check := object.Check(0, dy, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlaps(object, solid, 0, dy, 0) {
			dy = check.ContactWithObject(solid).Y()
			break
		}
	}
	object.Y += dy
}

// overlaps reports whether a, moved by dx/dy and grown by margin on every
// side, intersects b. resolv's cell check only narrows the candidates.
func overlaps(a, b *resolv.Object, dx, dy, margin float64) bool {
	ax, ay := a.X+dx-margin, a.Y+dy-margin
	aw, ah := a.W+2*margin, a.H+2*margin
	return ax < b.X+b.W && ax+aw > b.X && ay < b.Y+b.H && ay+ah > b.Y
}

func clampToLevel(ecs *ecs.ECS, object *resolv.Object) {
	level, ok := currentLevel(ecs)
	if !ok {
		return
	}
	object.X = gamemath.Clamp(object.X, 0, float64(level.Width)-object.W)
	object.Y = gamemath.Clamp(object.Y, 0, float64(level.Height)-object.H)
}

// touching reports whether the player stands against obj.
func touching(player, obj *resolv.Object) bool {
	return overlaps(player, obj, 0, 0, contactMargin)
}
