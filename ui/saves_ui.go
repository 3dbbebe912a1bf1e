package ui

import (
	"strings"

	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/saves"
	"github.com/automoto/herbclinic/shared/hudtext"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// SavesUI is the save select screen: the slot list, create/delete/enter
// buttons and a tip line. It only renders a saves.Book; every decision is
// made by the scene through the callbacks.
type SavesUI struct {
	UI *ebitenui.UI

	OnSelect     func(id string)
	OnOpenCreate func()
	OnCreate     func(nickname string)
	OnCancel     func()
	OnDelete     func()
	OnConfirm    func()

	list          *widget.Container
	tipLabel      *widget.Label
	createBtn     *widget.Button
	deleteBtn     *widget.Button
	confirmBtn    *widget.Button
	createPanel   *widget.Container
	nicknameInput *widget.TextInput

	faces *faces
}

func NewSavesUI() *SavesUI {
	ui := &SavesUI{faces: loadFaces()}
	ui.buildUI()
	return ui
}

func (ui *SavesUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := panel(cfg.UI.PanelColor, 16, 10)
	content.AddChild(newLabel(cfg.C.Title+" · 选择存档", &ui.faces.title, cfg.Gold))

	ui.list = rowContainer(widget.DirectionVertical, 6)
	content.AddChild(ui.list)

	buttons := rowContainer(widget.DirectionHorizontal, 10)
	ui.createBtn = newButton("新建存档", &ui.faces.normal, 110, 30, func() { call(ui.OnOpenCreate) })
	ui.deleteBtn = newButton("删除存档", &ui.faces.normal, 110, 30, func() { call(ui.OnDelete) })
	ui.confirmBtn = newButton("进入游戏", &ui.faces.normal, 110, 30, func() { call(ui.OnConfirm) })
	buttons.AddChild(ui.createBtn, ui.deleteBtn, ui.confirmBtn)
	content.AddChild(buttons)

	ui.createPanel = ui.buildCreatePanel()
	content.AddChild(ui.createPanel)

	ui.tipLabel = newLabel(hudtext.SavesLoading, &ui.faces.small, cfg.Cream)
	content.AddChild(ui.tipLabel)

	rootContainer.AddChild(content)
	ui.UI = &ebitenui.UI{Container: rootContainer}
	ui.ShowCreate(false)
}

func (ui *SavesUI) buildCreatePanel() *widget.Container {
	c := rowContainer(widget.DirectionHorizontal, 8)
	c.AddChild(newLabel("昵称:", &ui.faces.normal, cfg.Cream))
	ui.nicknameInput = newTextInput(&ui.faces.normal, "输入昵称", 180, func(s string) {
		if ui.OnCreate != nil {
			ui.OnCreate(s)
		}
	})
	c.AddChild(ui.nicknameInput)
	c.AddChild(newButton("确定", &ui.faces.normal, 60, 26, func() {
		if ui.OnCreate != nil {
			ui.OnCreate(ui.nicknameInput.GetText())
		}
	}))
	c.AddChild(newButton("取消", &ui.faces.normal, 60, 26, func() { call(ui.OnCancel) }))
	return c
}

// Refresh redraws the slot list and button states from the book.
func (ui *SavesUI) Refresh(book *saves.Book) {
	ui.list.RemoveChildren()
	for _, rec := range book.Saves() {
		id := rec.ID
		label := hudtext.SaveName(rec) + "    " + hudtext.SaveInfo(rec)
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(360, 32)),
			widget.ButtonOpts.Image(slotImage(id == book.Selected())),
			widget.ButtonOpts.Text(label, &ui.faces.normal, buttonTextColor()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if ui.OnSelect != nil {
					ui.OnSelect(id)
				}
			}),
		)
		ui.list.AddChild(btn)
	}
	if book.Loaded() && book.Count() == 0 {
		ui.list.AddChild(newLabel("暂无存档", &ui.faces.normal, cfg.Cream))
	}

	ui.tipLabel.Label = book.Tip
	setEnabled(ui.confirmBtn, book.ConfirmEnabled())
	setEnabled(ui.deleteBtn, book.ConfirmEnabled() && book.DeleteEnabled)
	setEnabled(ui.createBtn, book.Loaded())
}

// ShowCreate shows or hides the nickname panel. Opening it clears the field.
func (ui *SavesUI) ShowCreate(show bool) {
	if show {
		ui.nicknameInput.SetText("")
		ui.nicknameInput.Focus(true)
	} else {
		ui.nicknameInput.Focus(false)
	}
	setVisible(ui.createPanel, show)
}

func (ui *SavesUI) SetTip(msg string) {
	ui.tipLabel.Label = msg
}

func (ui *SavesUI) Nickname() string {
	return strings.TrimSpace(ui.nicknameInput.GetText())
}

func (ui *SavesUI) Update() {
	ui.UI.Update()
}

func slotImage(selected bool) *widget.ButtonImage {
	if selected {
		return selectedButtonImage()
	}
	return buttonImage()
}

func call(f func()) {
	if f != nil {
		f()
	}
}
