package systems

import (
	"image/color"

	"github.com/automoto/herbclinic/components"
	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles collider drawing.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionDebug).JustPressed {
		cfg.Debug.DrawColliders = !cfg.Debug.DrawColliders
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders {
		return
	}

	// Get camera for world-space rendering.
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	// Viewport in world coordinates
	viewX := camera.Position.X - float64(width)/2
	viewY := camera.Position.Y - float64(height)/2
	viewW := float64(width)
	viewH := float64(height)

	for _, obj := range space.Objects() {
		if obj.X+obj.W < viewX || obj.X > viewX+viewW || obj.Y+obj.H < viewY || obj.Y > viewY+viewH {
			continue
		}

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvNPC):
			c = color.RGBA{255, 0, 0, 255} // Red
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255} // Grey
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255} // Blue
		case obj.HasTags(tags.ResolvExit):
			c = color.RGBA{0, 255, 0, 255} // Green
		}
		vector.StrokeRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
