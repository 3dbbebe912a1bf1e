package systems

import (
	"github.com/automoto/herbclinic/assets"
	"github.com/automoto/herbclinic/components"
	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/fonts"
	"github.com/automoto/herbclinic/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// DrawAnimated renders entities with an Animation component based on their
// current clip and frame. Characters are anchored bottom-center on their
// collision box; NPCs the player can talk to are highlighted.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	// Culling bounds
	padding := 64.0
	minX := camera.Position.X - float64(width)/2 - padding
	maxX := camera.Position.X + float64(width)/2 + padding
	minY := camera.Position.Y - float64(height)/2 - padding
	maxY := camera.Position.Y + float64(height)/2 + padding

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if o.X+o.W < minX || o.X > maxX || o.Y+o.H < minY || o.Y > maxY {
			return
		}

		anim := components.Animation.Get(e)
		img := assets.GetFrame(anim.SheetKey, anim.SheetState(), anim.Palette,
			anim.Clips.Frame(), anim.FrameWidth, anim.FrameHeight)
		if img == nil {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(anim.FrameWidth)/2, -float64(anim.FrameHeight))

		// Sheets face right; mirror for left
		if anim.Clips.Current().Facing == motion.DirLeft {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Translate(o.X+o.W/2+camX, o.Y+o.H+camY)

		if e.HasComponent(components.NPC) && components.NPC.Get(e).Trigger.Touching() && assets.HighlightShader != nil {
			drawHighlighted(screen, img, drawOp.GeoM)
			return
		}
		screen.DrawImage(img, drawOp)
	})
}

func drawHighlighted(screen, img *ebiten.Image, geoM ebiten.GeoM) {
	b := img.Bounds()
	shaderOp.GeoM = geoM
	shaderOp.Images[0] = img
	if shaderOp.Uniforms == nil {
		shaderOp.Uniforms = map[string]any{}
	}
	shaderOp.Uniforms["Strength"] = float32(0.35)
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.HighlightShader, shaderOp)
}

// DrawNPCLabels draws the name above each NPC and a bobbing marker when the
// player can interact.
func DrawNPCLabels(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y
	face := fonts.Small.Get()

	components.NPC.Each(ecs.World, func(e *donburi.Entry) {
		npc := components.NPC.Get(e)
		o := components.Object.Get(e)
		cx := o.X + o.W/2 + camX
		top := o.Y + camY

		if npc.Name != "" {
			w := measure(npc.Name, face)
			text.Draw(screen, npc.Name, face, int(cx)-w/2, int(top)-6, cfg.Cream)
		}
		if npc.Trigger.Touching() && !npc.Trigger.Open() {
			y := float32(top) - 24 + npc.BobY
			vector.DrawFilledCircle(screen, float32(cx), y, 7, cfg.Gold, true)
			text.Draw(screen, "F", face, int(cx)-3, int(y)+4, cfg.Ink)
		}
	})
}
