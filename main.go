package main

import (
	"context"
	"errors"
	"flag"
	"image"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/soliman/assets"
	"github.com/automoto/soliman/config"
	"github.com/automoto/soliman/fonts"
	"github.com/automoto/soliman/scenes"
	"github.com/automoto/soliman/systems"
	"github.com/automoto/soliman/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
	Done() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.scene.Layout(width, height)
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding zoom, camera and plane settings")
	flag.BoolVar(&config.Debug.SkipIntro, "skip-intro", config.Debug.SkipIntro, "Start the zoom without the start overlay")
	flag.BoolVar(&config.Debug.ShowCulling, "show-culling", config.Debug.ShowCulling, "Outline scenery bounds")
	flag.StringVar(&config.Debug.AssetsDir, "assets", config.Debug.AssetsDir, "Directory holding sprite strips (placeholders are drawn when empty)")
	flag.Parse()

	// The layout's camera group sets the default framings; an override file
	// wins over both.
	layout := assets.MustLoadDefaultScene()
	if layout.Idle != nil {
		config.Camera.Idle = *layout.Idle
	}
	if layout.Target != nil {
		config.Camera.Target = *layout.Target
	}
	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var assetFS fs.FS
	if config.Debug.AssetsDir != "" {
		if _, err := os.Stat(config.Debug.AssetsDir); err != nil {
			log.Printf("Warning: asset directory %s: %v, using placeholders", config.Debug.AssetsDir, err)
		} else {
			assetFS = os.DirFS(config.Debug.AssetsDir)
		}
	}
	images, err := assets.LoadStrips(context.Background(), assetFS, factory.StripRequests(layout))
	if err != nil {
		log.Fatalf("Failed to load sprite strips: %v", err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}
	settings := systems.SettingsFrom(saved)
	systems.ApplySavedSettingsGlobal(settings)

	game := NewGame(scenes.NewPresentationScene(layout, images, settings))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
