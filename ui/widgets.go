package ui

import (
	"image/color"

	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/fonts"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// faces holds the text/v2 faces shared by every panel. Widgets take a
// pointer to the interface value, so the faces live in a struct.
type faces struct {
	title  text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() *faces {
	return &faces{
		title:  fonts.Title.Face(),
		normal: fonts.Body.Face(),
		small:  fonts.Small.Face(),
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Wood),
		Hover:    image.NewNineSliceColor(color.RGBA{150, 105, 65, 255}),
		Pressed:  image.NewNineSliceColor(cfg.DarkWood),
		Disabled: image.NewNineSliceColor(color.RGBA{60, 50, 45, 255}),
	}
}

func selectedButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Jade),
		Hover:    image.NewNineSliceColor(color.RGBA{110, 190, 150, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{60, 130, 95, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{60, 90, 75, 255}),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     cfg.Cream,
		Hover:    cfg.White,
		Pressed:  cfg.Gold,
		Disabled: color.RGBA{120, 110, 100, 255},
	}
}

func newButton(label string, face *text.Face, w, h int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(w, h)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, face, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func newLabel(label string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(label, face, &widget.LabelColor{
			Idle:     clr,
			Disabled: color.RGBA{120, 110, 100, 255},
		}),
	)
}

func newTextInput(face *text.Face, placeholder string, w int, onSubmit func(string)) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(w, 26)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(cfg.Ink),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 35, 30, 255}),
		}),
		widget.TextInputOpts.Face(face),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          cfg.Cream,
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         cfg.Gold,
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			if onSubmit != nil {
				onSubmit(args.InputText)
			}
		}),
	)
}

func rowContainer(dir widget.Direction, spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(dir),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}

// panel is a padded vertical box with a wooden background, centered in an
// anchor layout parent.
func panel(bg color.Color, padding, spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(padding)),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
}

func setVisible(w widget.HasWidget, visible bool) {
	if visible {
		w.GetWidget().Visibility = widget.Visibility_Show
		return
	}
	w.GetWidget().Visibility = widget.Visibility_Hide
}

func setEnabled(w widget.HasWidget, enabled bool) {
	w.GetWidget().Disabled = !enabled
}
