package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// controlsHelp lists the default bindings shown under the title.
var controlsHelp = []string{
	"Arrows / WASD  move",
	"Z / Space  fire",
	"Q / E  switch weapon",
	"P / Esc  pause",
	"R / Enter  restart",
}

// TitleUI holds the ebitenui interface for the title screen
type TitleUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart func()
	OnQuit  func()

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTitleUI creates the title screen UI.
func NewTitleUI(onStart, onQuit func()) *TitleUI {
	tui := &TitleUI{
		OnStart: onStart,
		OnQuit:  onQuit,
	}

	tui.loadFonts()
	tui.buildUI()

	return tui
}

func (tui *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   36,
	}
	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	tui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (tui *TitleUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 10, 24, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("STARBLASTER", &tui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{0, 220, 255, 255},
		}),
	))

	for _, line := range controlsHelp {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &tui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{180, 180, 180, 255},
			}),
		))
	}

	contentContainer.AddChild(tui.newButton("START", tui.startButtonImage(), func() {
		if tui.OnStart != nil {
			tui.OnStart()
		}
	}))
	contentContainer.AddChild(tui.newButton("QUIT", tui.buttonImage(), func() {
		if tui.OnQuit != nil {
			tui.OnQuit()
		}
	}))

	rootContainer.AddChild(contentContainer)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TitleUI) newButton(label string, img *widget.ButtonImage, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 28),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (tui *TitleUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (tui *TitleUI) startButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

// Update processes UI input
func (tui *TitleUI) Update() {
	tui.UI.Update()
}
