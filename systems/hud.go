package systems

import (
	"image/color"

	"github.com/automoto/soliman/components"
	cfg "github.com/automoto/soliman/config"
	"github.com/automoto/soliman/fonts"
	"github.com/automoto/soliman/selection"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const hudMargin = 14

// DrawHUD renders the caption of the displayed variant and, when the
// window is taller than wide, the rotate notice.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Regular) {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	if v := ResolvedVariant(ecs); v != selection.None && PanelRevealed(ecs) {
		label := cfg.Panel.Labels[v]
		face := fonts.Title.Get()
		x := (width - textWidth(face, label)) / 2
		text.Draw(screen, label, face, x, height-hudMargin, cfg.Overlay.TitleColor)
	}

	if entry, ok := components.Settings.First(ecs.World); ok && components.Settings.Get(entry).Portrait() {
		drawPortraitNotice(screen, width, height)
	}
}

func drawPortraitNotice(screen *ebiten.Image, width, height int) {
	face := fonts.Regular.Get()
	notice := cfg.Panel.PortraitNotice
	tw := textWidth(face, notice)
	boxH := 40

	vector.DrawFilledRect(screen, 0, float32(height/2-boxH/2), float32(width), float32(boxH),
		color.RGBA{A: 200}, false)
	text.Draw(screen, notice, face, (width-tw)/2, height/2+6, cfg.Overlay.TextColor)
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Round()
}
