package ui

import (
	"image/color"

	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/market"
	"github.com/automoto/herbclinic/shared/hudtext"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MarketUI is the herb market overlay: stalls, the buy dialog and the
// rumour popup. The backdrop fades in each time the panel is shown.
type MarketUI struct {
	UI *ebitenui.UI

	OnPick    func(herbID string)
	OnBuy     func(count string)
	OnCancel  func()
	OnClose   func()
	OnRumour  func()
	OnMapMove func()

	stalls      *widget.Container
	tipLabel    *widget.Label
	dialog      *widget.Container
	dialogTitle *widget.Label
	countInput  *widget.TextInput
	buyBtn      *widget.Button
	rumour      *widget.Container
	rumourLabel *widget.Label

	fade  *gween.Tween
	alpha float32

	faces *faces
}

func NewMarketUI(herbs []market.Herb, mapMoveLabel string) *MarketUI {
	ui := &MarketUI{faces: loadFaces()}
	ui.buildUI(herbs, mapMoveLabel)
	return ui
}

func (ui *MarketUI) buildUI(herbs []market.Herb, mapMoveLabel string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := panel(cfg.UI.PanelColor, 16, 8)
	content.AddChild(newLabel("集市药摊", &ui.faces.title, cfg.Gold))

	ui.stalls = rowContainer(widget.DirectionVertical, 6)
	for _, herb := range herbs {
		ui.stalls.AddChild(ui.buildStall(herb))
	}
	content.AddChild(ui.stalls)

	ui.dialog = ui.buildDialog()
	content.AddChild(ui.dialog)

	ui.rumour = rowContainer(widget.DirectionVertical, 6)
	ui.rumourLabel = newLabel("", &ui.faces.normal, cfg.Gold)
	ui.rumour.AddChild(ui.rumourLabel)
	ui.rumour.AddChild(newButton("知道了", &ui.faces.normal, 80, 26, func() { call(ui.OnRumour) }))
	content.AddChild(ui.rumour)

	ui.tipLabel = newLabel("", &ui.faces.small, cfg.Cream)
	content.AddChild(ui.tipLabel)

	footer := rowContainer(widget.DirectionHorizontal, 10)
	if mapMoveLabel != "" {
		footer.AddChild(newButton(mapMoveLabel, &ui.faces.normal, 110, 28, func() { call(ui.OnMapMove) }))
	}
	footer.AddChild(newButton("离开", &ui.faces.normal, 80, 28, func() { call(ui.OnClose) }))
	content.AddChild(footer)

	rootContainer.AddChild(content)
	ui.UI = &ebitenui.UI{Container: rootContainer}

	setVisible(ui.dialog, false)
	setVisible(ui.rumour, false)
}

func (ui *MarketUI) buildStall(herb market.Herb) *widget.Container {
	row := rowContainer(widget.DirectionHorizontal, 12)
	row.AddChild(newLabel(herb.Name, &ui.faces.normal, cfg.Cream))
	row.AddChild(newLabel(hudtext.Price(herb.Price), &ui.faces.normal, cfg.Gold))
	if herb.Season != "" {
		row.AddChild(newLabel(herb.Season, &ui.faces.small, cfg.Cream))
	}
	id := herb.ID
	row.AddChild(newButton("购买", &ui.faces.normal, 60, 24, func() {
		if ui.OnPick != nil {
			ui.OnPick(id)
		}
	}))
	return row
}

func (ui *MarketUI) buildDialog() *widget.Container {
	c := rowContainer(widget.DirectionVertical, 6)
	ui.dialogTitle = newLabel("", &ui.faces.normal, cfg.Gold)
	c.AddChild(ui.dialogTitle)

	row := rowContainer(widget.DirectionHorizontal, 8)
	row.AddChild(newLabel("数量:", &ui.faces.normal, cfg.Cream))
	ui.countInput = newTextInput(&ui.faces.normal, "1", 80, func(s string) {
		if ui.OnBuy != nil {
			ui.OnBuy(s)
		}
	})
	row.AddChild(ui.countInput)
	ui.buyBtn = newButton("确认购买", &ui.faces.normal, 90, 26, func() {
		if ui.OnBuy != nil {
			ui.OnBuy(ui.countInput.GetText())
		}
	})
	row.AddChild(ui.buyBtn)
	row.AddChild(newButton("取消", &ui.faces.normal, 60, 26, func() { call(ui.OnCancel) }))
	c.AddChild(row)
	return c
}

// Refresh shows the dialog and tip for the current stall state.
func (ui *MarketUI) Refresh(s *market.Stalls) {
	herb, ok := s.Selected()
	if s.DialogOpen && ok {
		if !ui.dialog.GetWidget().IsVisible() {
			ui.countInput.SetText("1")
			ui.countInput.Focus(true)
		}
		ui.dialogTitle.Label = "购买 " + herb.Name + " (" + hudtext.Price(herb.Price) + ")"
		setVisible(ui.dialog, true)
	} else {
		ui.countInput.Focus(false)
		setVisible(ui.dialog, false)
	}
	ui.tipLabel.Label = s.Tip
}

// SetBusy disables the buy button while a purchase is in flight.
func (ui *MarketUI) SetBusy(busy bool) {
	setEnabled(ui.buyBtn, !busy)
}

// ShowRumour pops up a rumour; an empty string hides it.
func (ui *MarketUI) ShowRumour(msg string) {
	ui.rumourLabel.Label = msg
	setVisible(ui.rumour, msg != "")
}

// Show restarts the backdrop fade.
func (ui *MarketUI) Show() {
	ui.fade = gween.New(0, 1, cfg.UI.DialogFadeSecs, ease.OutQuad)
	ui.alpha = 0
}

func (ui *MarketUI) Update() {
	if ui.fade != nil {
		var done bool
		ui.alpha, done = ui.fade.Update(float32(1.0 / float64(ebiten.TPS())))
		if done {
			ui.fade = nil
		}
	}
	ui.UI.Update()
}

func (ui *MarketUI) Draw(screen *ebiten.Image) {
	drawBackdrop(screen, ui.alpha)
	ui.UI.Draw(screen)
}

// drawBackdrop dims the world behind an overlay.
func drawBackdrop(screen *ebiten.Image, alpha float32) {
	b := screen.Bounds()
	c := cfg.BlackOverlay
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()),
		color.RGBA{c.R, c.G, c.B, uint8(float32(c.A) * alpha)}, false)
}
