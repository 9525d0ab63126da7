package scenes

import (
	"sync"

	"github.com/automoto/soliman/assets"
	"github.com/automoto/soliman/components"
	cfg "github.com/automoto/soliman/config"
	"github.com/automoto/soliman/systems"
	"github.com/automoto/soliman/systems/factory"
	"github.com/automoto/soliman/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PresentationScene runs the zoom, the selection panel and the start
// overlay.
type PresentationScene struct {
	ecs      *ecs.ECS
	layout   *assets.Scene
	images   map[string]*ebiten.Image
	settings components.SettingsData

	panel   *ui.PanelUI
	overlay *ui.OverlayUI

	outsideW, outsideH int
	once               sync.Once
}

// NewPresentationScene creates the scene from a parsed layout and its
// decoded sprite strips.
func NewPresentationScene(layout *assets.Scene, images map[string]*ebiten.Image, settings components.SettingsData) *PresentationScene {
	return &PresentationScene{layout: layout, images: images, settings: settings}
}

func (ps *PresentationScene) Update() {
	ps.once.Do(ps.configure)

	ps.ecs.Update()
	ps.overlay.Update()
	ps.panel.Update(1 / float32(cfg.C.TPS))
}

func (ps *PresentationScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		screen.Fill(cfg.Scenery.BackdropColor)
		return
	}
	ps.ecs.DrawLayer(cfg.Default, screen)
	ps.panel.Draw(screen)
	ps.ecs.DrawLayer(cfg.HUD, screen)
	ps.overlay.Draw(screen)
}

// Layout records the outside size for the portrait notice.
func (ps *PresentationScene) Layout(outsideWidth, outsideHeight int) {
	ps.outsideW, ps.outsideH = outsideWidth, outsideHeight
	if ps.ecs != nil {
		systems.SetOutsideSize(ps.ecs, outsideWidth, outsideHeight)
	}
}

// Done reports whether the quit action was used.
func (ps *PresentationScene) Done() bool {
	return ps.ecs != nil && systems.QuitRequested(ps.ecs)
}

func (ps *PresentationScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	ps.ecs = ecs

	ps.panel = ui.NewPanelUI(ecs)
	ps.overlay = ui.NewOverlayUI(ecs)

	// Per tick: clock, sprite animator, progression, reveal gate. Input
	// and shortcuts run first so this tick's pointer is used.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewActionSystem(ps.panel))
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateSprites)
	ecs.AddSystem(systems.UpdateProgression)
	ecs.AddSystem(systems.NewRevealSystem(ps.panel))
	ecs.AddSystem(systems.UpdateBonesBird)
	ecs.AddSystem(systems.UpdateCulling)
	ecs.AddSystem(systems.UpdateOverlay)
	ecs.AddSystem(systems.UpdateSettings)

	ecs.AddRenderer(cfg.Default, systems.DrawScene)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)

	factory.CreatePresentation(ecs, ps.settings)
	factory.CreateScene(ecs, ps.layout, ps.images)
	systems.SetOutsideSize(ecs, ps.outsideW, ps.outsideH)

	if cfg.Debug.SkipIntro {
		systems.StartPresentation(ecs)
	}
}
