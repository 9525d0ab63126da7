package ui

import (
	"bytes"

	cfg "github.com/automoto/soliman/config"
	"github.com/automoto/soliman/selection"
	"github.com/automoto/soliman/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

const activeMarker = "• "

// PanelUI holds the character selection panel. It stays hidden and
// inactive until RevealPanel, then fades in.
type PanelUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	buttons map[selection.Variant]*widget.Button
	active  map[selection.Variant]bool

	revealed bool
	fade     *gween.Tween
	alpha    float32
	layer    *ebiten.Image

	normalFace text.Face
}

// NewPanelUI builds the panel for the presentation running in e.
func NewPanelUI(e *ecs.ECS) *PanelUI {
	p := &PanelUI{
		ecs:     e,
		buttons: make(map[selection.Variant]*widget.Button),
		active:  make(map[selection.Variant]bool),
	}
	p.loadFonts()
	p.buildUI()
	return p
}

func (p *PanelUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	p.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   13,
	}
}

func (p *PanelUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(cfg.Panel.Padding)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Panel.BackdropColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(cfg.Panel.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	for _, v := range selection.Variants {
		panel.AddChild(p.buildVariantButton(v))
	}

	rootContainer.AddChild(panel)
	p.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (p *PanelUI) buildVariantButton(v selection.Variant) *widget.Button {
	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Panel.ButtonWidth, cfg.Panel.ButtonHeight),
			widget.WidgetOpts.CursorEnterHandler(func(args *widget.WidgetCursorEnterEventArgs) {
				systems.HoverVariant(p.ecs, v, p)
			}),
			widget.WidgetOpts.CursorExitHandler(func(args *widget.WidgetCursorExitEventArgs) {
				systems.UnhoverVariant(p.ecs, v, p)
			}),
		),
		widget.ButtonOpts.Image(p.buttonImage()),
		widget.ButtonOpts.Text(cfg.Panel.Labels[v], &p.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Panel.TextColor,
			Hover:   cfg.Panel.TextColor,
			Pressed: cfg.Panel.ActiveText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.ClickVariant(p.ecs, v, p)
		}),
	)
	p.buttons[v] = button
	return button
}

func (p *PanelUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.Panel.IdleColor),
		Hover:   image.NewNineSliceColor(cfg.Panel.HoverColor),
		Pressed: image.NewNineSliceColor(cfg.Panel.ActiveColor),
	}
}

// RevealPanel makes the panel visible and interactive and starts its fade.
func (p *PanelUI) RevealPanel() {
	if p.revealed {
		return
	}
	p.revealed = true
	p.alpha = 0
	p.fade = gween.New(0, 1, cfg.Panel.FadeSec, ease.OutQuad)
}

// Revealed reports whether the panel is shown.
func (p *PanelUI) Revealed() bool {
	return p.revealed
}

// SetActive marks v as the locked variant or clears the mark.
func (p *PanelUI) SetActive(v selection.Variant, active bool) {
	if active {
		p.active[v] = true
	} else {
		delete(p.active, v)
	}
	if button, ok := p.buttons[v]; ok {
		if textWidget := button.Text(); textWidget != nil {
			label := cfg.Panel.Labels[v]
			if active {
				label = activeMarker + label
			}
			textWidget.Label = label
		}
	}
}

// Active reports whether v carries the active mark.
func (p *PanelUI) Active(v selection.Variant) bool {
	return p.active[v]
}

// Update advances the fade and delivers pointer events to the buttons.
// A restart closes the reveal gate, which hides the panel again.
func (p *PanelUI) Update(dtSec float32) {
	if p.revealed && !systems.PanelRevealed(p.ecs) {
		p.revealed = false
		p.alpha = 0
		p.fade = nil
	}
	if !p.revealed {
		return
	}
	if p.fade != nil {
		alpha, done := p.fade.Update(dtSec)
		p.alpha = alpha
		if done {
			p.fade = nil
			p.alpha = 1
		}
	}
	p.UI.Update()
}

// Draw renders the panel through an offscreen layer so the fade applies to
// the whole panel.
func (p *PanelUI) Draw(screen *ebiten.Image) {
	if !p.revealed || p.alpha <= 0 {
		return
	}
	bounds := screen.Bounds()
	if p.layer == nil || p.layer.Bounds().Size() != bounds.Size() {
		p.layer = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	p.layer.Clear()
	p.UI.Draw(p.layer)

	for v := range p.active {
		if button, ok := p.buttons[v]; ok {
			r := button.GetWidget().Rect
			vector.StrokeRect(p.layer, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()),
				2, cfg.Panel.ActiveColor, false)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(p.alpha)
	screen.DrawImage(p.layer, op)
}
