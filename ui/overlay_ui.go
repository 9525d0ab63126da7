package ui

import (
	"bytes"

	cfg "github.com/automoto/soliman/config"
	"github.com/automoto/soliman/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// OverlayUI holds the start overlay and the fullscreen toggle shown once
// the presentation has started.
type OverlayUI struct {
	StartUI    *ebitenui.UI
	ControlsUI *ebitenui.UI
	ecs        *ecs.ECS

	fullscreenButton *widget.Button
	layer            *ebiten.Image

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewOverlayUI builds the overlay for the presentation running in e.
func NewOverlayUI(e *ecs.ECS) *OverlayUI {
	o := &OverlayUI{ecs: e}
	o.loadFonts()
	o.buildStartUI()
	o.buildControlsUI()
	return o
}

func (o *OverlayUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	o.titleFace = &text.GoTextFace{Source: fontSource, Size: 40}
	o.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	o.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (o *OverlayUI) buildStartUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Overlay.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(14),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Overlay.Title, &o.titleFace, &widget.LabelColor{
			Idle: cfg.Overlay.TitleColor,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Overlay.Subtitle, &o.normalFace, &widget.LabelColor{
			Idle: cfg.Overlay.TextColor,
		}),
	))

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 36),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.Panel.IdleColor),
			Hover:   image.NewNineSliceColor(cfg.Panel.HoverColor),
			Pressed: image.NewNineSliceColor(cfg.Panel.ActiveColor),
		}),
		widget.ButtonOpts.Text(cfg.Overlay.StartLabel, &o.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Overlay.TextColor,
			Hover:   cfg.Overlay.TitleColor,
			Pressed: cfg.Panel.ActiveText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.StartPresentation(o.ecs)
		}),
	)
	contentContainer.AddChild(startButton)

	rootContainer.AddChild(contentContainer)
	o.StartUI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (o *OverlayUI) buildControlsUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(10)),
		)),
	)

	o.fullscreenButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(96, 24),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.Panel.IdleColor),
			Hover:   image.NewNineSliceColor(cfg.Panel.HoverColor),
			Pressed: image.NewNineSliceColor(cfg.Panel.ActiveColor),
		}),
		widget.ButtonOpts.Text(o.fullscreenLabel(), &o.smallFace, &widget.ButtonTextColor{
			Idle:    cfg.Panel.TextColor,
			Hover:   cfg.Panel.TextColor,
			Pressed: cfg.Panel.ActiveText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.ToggleFullscreen(o.ecs)
		}),
	)

	rootContainer.AddChild(o.fullscreenButton)
	o.ControlsUI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (o *OverlayUI) fullscreenLabel() string {
	if systems.IsFullscreen(o.ecs) {
		return cfg.Panel.FullscreenOn
	}
	return cfg.Panel.FullscreenOff
}

// Update delivers input to the start button until the presentation starts,
// then to the fullscreen toggle.
func (o *OverlayUI) Update() {
	if !systems.Started(o.ecs) {
		o.StartUI.Update()
		return
	}
	if textWidget := o.fullscreenButton.Text(); textWidget != nil {
		textWidget.Label = o.fullscreenLabel()
	}
	o.ControlsUI.Update()
}

// Draw renders the fading start overlay, or the fullscreen toggle once
// the presentation has started.
func (o *OverlayUI) Draw(screen *ebiten.Image) {
	if systems.Started(o.ecs) {
		o.ControlsUI.Draw(screen)
	}

	alpha := systems.OverlayAlpha(o.ecs)
	if alpha <= 0 {
		return
	}
	bounds := screen.Bounds()
	if o.layer == nil || o.layer.Bounds().Size() != bounds.Size() {
		o.layer = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	o.layer.Clear()
	o.StartUI.Draw(o.layer)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(o.layer, op)
}
