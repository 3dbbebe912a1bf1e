package systems

import (
	"image/color"
	"time"

	"github.com/automoto/herbclinic/components"
	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/fonts"
	"github.com/automoto/herbclinic/shared/hudtext"
	"github.com/automoto/herbclinic/shared/relay"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudPanelWidth  = 220
	hudPanelHeight = 96
	noticeSeconds  = 3.0
)

// SubscribeHUD wires the relay events of w into the HUD singleton. Call once
// per world, after the HUD entity exists.
func SubscribeHUD(w donburi.World) {
	relay.Coordinates.Subscribe(w, func(w donburi.World, e relay.CoordinatesUpdated) {
		if hud := hudOf(w); hud != nil {
			hud.Location = hudtext.Location(cfg.Maps.DisplayNames, e.Position)
		}
	})
	relay.Refreshed.Subscribe(w, func(w donburi.World, e relay.PlayerRefreshed) {
		if hud := hudOf(w); hud != nil {
			hud.Stats = hudtext.StatsOf(e.Record)
		}
	})
	relay.Notices.Subscribe(w, func(w donburi.World, e relay.Notice) {
		if hud := hudOf(w); hud != nil {
			hud.Notice = e.Text
			hud.NoticeTimer = noticeSeconds
		}
	})
}

// UpdateEvents delivers the relay events queued this frame.
// Must run after every system that publishes.
func UpdateEvents(ecs *ecs.ECS) {
	relay.Process(ecs.World)
}

// UpdateHUD ticks the clock and the notice toast.
func UpdateHUD(ecs *ecs.ECS) {
	hud := getHUD(ecs)
	if hud == nil {
		return
	}
	hud.Clock = hudtext.Clock(time.Now())
	if hud.NoticeTimer > 0 {
		hud.NoticeTimer -= 1.0 / float64(ebiten.TPS())
		if hud.NoticeTimer <= 0 {
			hud.NoticeTimer = 0
			hud.Notice = ""
		}
	}
}

// DrawHUD renders the player stats panel in the top-left corner, the clock
// top-right and prompts along the bottom.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	hud := getHUD(ecs)
	if hud == nil {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	margin := float32(cfg.UI.HUDMargin)
	line := int(cfg.UI.HUDLineHeight)

	vector.DrawFilledRect(screen, margin, margin, hudPanelWidth, hudPanelHeight, cfg.UI.HUDPanelColor, false)
	vector.StrokeRect(screen, margin, margin, hudPanelWidth, hudPanelHeight, 1, cfg.UI.HUDAccentColor, false)

	titleFont := fonts.Title.Get()
	bodyFont := fonts.Body.Get()
	x := int(margin) + 10
	y := int(margin) + line

	text.Draw(screen, hud.Stats.Name, titleFont, x, y, cfg.UI.HUDAccentColor)
	y += line
	text.Draw(screen, "金币: "+hud.Stats.Gold, bodyFont, x, y, cfg.UI.HUDTextColor)
	y += line
	text.Draw(screen, hud.Stats.Level+"   "+hud.Stats.Reputation, bodyFont, x, y, cfg.UI.HUDTextColor)
	y += line
	text.Draw(screen, hud.Location, bodyFont, x, y, cfg.UI.HUDTextColor)

	clockX := width - int(margin) - measure(hud.Clock, bodyFont)
	text.Draw(screen, hud.Clock, bodyFont, clockX, int(margin)+line, cfg.UI.HUDTextColor)

	if hud.Prompt != "" {
		drawCentered(screen, hud.Prompt, bodyFont, width, height-3*line, cfg.UI.PromptColor)
	}
	if hud.Notice != "" {
		drawCentered(screen, hud.Notice, bodyFont, width, height-line, cfg.UI.HUDAccentColor)
	}
}

// PublishNotice shows a toast on the HUD.
func PublishNotice(ecs *ecs.ECS, msg string) {
	relay.PublishNotice(ecs.World, msg)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int, clr color.Color) {
	w := measure(s, face)
	pad := 8
	vector.DrawFilledRect(screen,
		float32(width/2-w/2-pad), float32(y-int(cfg.UI.HUDLineHeight)+4),
		float32(w+2*pad), float32(cfg.UI.HUDLineHeight),
		cfg.UI.HUDPanelColor, false)
	text.Draw(screen, s, face, width/2-w/2, y, clr)
}

func measure(s string, face font.Face) int {
	return text.BoundString(face, s).Dx()
}

func getHUD(ecs *ecs.ECS) *components.HUDData {
	return hudOf(ecs.World)
}

func hudOf(w donburi.World) *components.HUDData {
	entry, ok := components.HUD.First(w)
	if !ok {
		return nil
	}
	return components.HUD.Get(entry)
}
