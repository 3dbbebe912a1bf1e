package ui

import (
	"github.com/automoto/herbclinic/backpack"
	cfg "github.com/automoto/herbclinic/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type BackpackUI struct {
	UI *ebitenui.UI

	OnClose func()

	entries *widget.Container
	status  *widget.Label

	faces *faces
}

func NewBackpackUI() *BackpackUI {
	ui := &BackpackUI{faces: loadFaces()}
	ui.buildUI()
	return ui
}

func (ui *BackpackUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := panel(cfg.UI.PanelColor, 16, 8)
	content.AddChild(newLabel("背包", &ui.faces.title, cfg.Gold))

	ui.entries = rowContainer(widget.DirectionVertical, 6)
	content.AddChild(ui.entries)

	ui.status = newLabel("", &ui.faces.small, cfg.Cream)
	content.AddChild(ui.status)

	content.AddChild(newButton("关闭", &ui.faces.normal, 80, 28, func() { call(ui.OnClose) }))

	rootContainer.AddChild(content)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// SetLoading clears the list while definitions are fetched.
func (ui *BackpackUI) SetLoading() {
	ui.entries.RemoveChildren()
	ui.status.Label = "整理中..."
}

// SetEntries shows one row per inventory entry: name, count, description.
func (ui *BackpackUI) SetEntries(entries []backpack.Entry) {
	ui.entries.RemoveChildren()
	for _, e := range entries {
		row := rowContainer(widget.DirectionHorizontal, 12)
		row.AddChild(newLabel(e.Name, &ui.faces.normal, cfg.Cream))
		row.AddChild(newLabel(e.Count, &ui.faces.normal, cfg.Gold))
		row.AddChild(newLabel(e.Description, &ui.faces.small, cfg.Cream))
		ui.entries.AddChild(row)
	}
	if len(entries) == 0 {
		ui.status.Label = "背包空空如也"
		return
	}
	ui.status.Label = ""
}

func (ui *BackpackUI) Update() {
	ui.UI.Update()
}

func (ui *BackpackUI) Draw(screen *ebiten.Image) {
	drawBackdrop(screen, 1)
	ui.UI.Draw(screen)
}
