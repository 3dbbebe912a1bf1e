package systems

import (
	"github.com/automoto/herbclinic/assets"
	"github.com/automoto/herbclinic/components"
	cfg "github.com/automoto/herbclinic/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func currentLevel(ecs *ecs.ECS) (*assets.Level, bool) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, false
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	return level, level != nil
}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	// Get camera
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	screen.Fill(cfg.UI.BackgroundColor)

	level, ok := currentLevel(ecs)
	if !ok || level.Background == nil {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(-camera.Position.X, -camera.Position.Y)
	opts.GeoM.Translate(float64(width)/2, float64(height)/2)
	screen.DrawImage(level.Background, opts)
}
