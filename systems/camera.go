package systems

import (
	"math"

	"github.com/automoto/herbclinic/components"
	"github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	targetX, targetY := components.Object.Get(playerEntry).Center()

	level, ok := currentLevel(e)
	if !ok {
		return
	}

	// Calculate camera bounds based on screen and level dimensions
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(level.Width)
	levelHeight := float64(level.Height)

	targetX = clampAxis(targetX, screenWidth, levelWidth)
	targetY = clampAxis(targetY, screenHeight, levelHeight)

	// Jump straight to the player on the first frame, then smooth
	if !camera.Snapped {
		camera.Position.X, camera.Position.Y = targetX, targetY
		camera.Snapped = true
		return
	}
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps the level filling the screen; a level smaller than the
// screen is centered instead.
func clampAxis(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}
