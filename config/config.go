package config

import (
	"image/color"

	"github.com/automoto/soliman/selection"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// PoseConfig is a camera framing in world units
type PoseConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Zoom float64 `yaml:"zoom"`
	Tilt float64 `yaml:"tilt"` // radians
}

// ProgressionConfig tunes the establishing-shot zoom
type ProgressionConfig struct {
	ZoomDurationMs float64 `yaml:"zoomDurationMs"`
	Easing         string  `yaml:"easing"` // see EasingFunc
}

// CameraConfig contains the idle and focused framings and pointer parallax
type CameraConfig struct {
	Idle      PoseConfig `yaml:"idle"`
	Target    PoseConfig `yaml:"target"`
	ParallaxX float64    `yaml:"parallaxX"` // world units at full pointer deflection
	ParallaxY float64    `yaml:"parallaxY"`
}

// SceneryConfig contains ambient plane motion and culling settings
type SceneryConfig struct {
	SwayX         float64 `yaml:"swayX"` // world units per depth unit at full deflection
	SwayY         float64 `yaml:"swayY"`
	WindAmplitude float64 `yaml:"windAmplitude"`
	WindPeriodMs  float64 `yaml:"windPeriodMs"`
	CullPadding   float64 `yaml:"cullPadding"` // pixels kept around the viewport
	BackdropColor color.RGBA `yaml:"-"`
}

// BonesBirdConfig contains the remains-and-bird secondary animation settings
type BonesBirdConfig struct {
	FlightDurationSec float32 // one leg of the bird's circuit
	HoverHeight       float64 // how far above the remains the bird climbs
	SwoopWidth        float64
}

// OverlayConfig contains the start overlay configuration
type OverlayConfig struct {
	FadeMs       float64 // overlay fade-out after start (ms)
	Title        string
	Subtitle     string
	StartLabel   string
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
}

// PanelConfig contains the character selection panel configuration
type PanelConfig struct {
	FadeSec        float32 // panel fade-in once revealed
	Labels         map[selection.Variant]string
	ButtonWidth    int
	ButtonHeight   int
	Spacing        int
	Padding        int
	IdleColor      color.RGBA
	HoverColor     color.RGBA
	ActiveColor    color.RGBA
	TextColor      color.RGBA
	ActiveText     color.RGBA
	BackdropColor  color.RGBA
	FullscreenOn   string
	FullscreenOff  string
	PortraitNotice string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipIntro   bool // start the zoom without waiting for the start button
	ShowCulling bool // outline scenery bounds
	AssetsDir   string
}

// Global configuration instances
var C *Config
var Progression ProgressionConfig
var Camera CameraConfig
var Scenery SceneryConfig
var BonesBird BonesBirdConfig
var Overlay OverlayConfig
var Panel PanelConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Sand         = color.RGBA{R: 232, G: 212, B: 170, A: 255}
	Ochre        = color.RGBA{R: 196, G: 140, B: 62, A: 255}
	DeepTeal     = color.RGBA{R: 20, G: 56, B: 64, A: 255}
	Night        = color.RGBA{R: 12, G: 16, B: 24, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	PanelGlass   = color.RGBA{R: 10, G: 14, B: 20, A: 170}
	ButtonIdle   = color.RGBA{R: 40, G: 48, B: 60, A: 220}
	ButtonHover  = color.RGBA{R: 70, G: 84, B: 104, A: 235}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Soliman",
		TPS:    60,
	}

	Progression = ProgressionConfig{
		ZoomDurationMs: 4000,
		Easing:         "inOutCubic",
	}

	// World is 1280x720; the idle framing shows all of it on a 960x540 screen
	Camera = CameraConfig{
		Idle:      PoseConfig{X: 640, Y: 360, Zoom: 0.75},
		Target:    PoseConfig{X: 700, Y: 470, Zoom: 2.2, Tilt: 0},
		ParallaxX: 40,
		ParallaxY: 20,
	}

	Scenery = SceneryConfig{
		SwayX:         8,
		SwayY:         3,
		WindAmplitude: 1.5,
		WindPeriodMs:  5200,
		CullPadding:   32,
		BackdropColor: DeepTeal,
	}

	BonesBird = BonesBirdConfig{
		FlightDurationSec: 1.6,
		HoverHeight:       48,
		SwoopWidth:        36,
	}

	Overlay = OverlayConfig{
		FadeMs:       700,
		Title:        "SOLIMAN",
		Subtitle:     "Four faces of one man",
		StartLabel:   "START",
		OverlayColor: BlackOverlay,
		TitleColor:   Sand,
		TextColor:    White,
	}

	Panel = PanelConfig{
		FadeSec: 0.6,
		Labels: map[selection.Variant]string{
			selection.Student:  "Student",
			selection.Assassin: "Assassin",
			selection.Martyr:   "Martyr",
			selection.Hero:     "Hero",
			selection.Body:     "Body",
			selection.Remains:  "Human remains",
		},
		ButtonWidth:    132,
		ButtonHeight:   26,
		Spacing:        6,
		Padding:        10,
		IdleColor:      ButtonIdle,
		HoverColor:     ButtonHover,
		ActiveColor:    Ochre,
		TextColor:      White,
		ActiveText:     Night,
		BackdropColor:  PanelGlass,
		FullscreenOn:   "Windowed",
		FullscreenOff:  "Fullscreen",
		PortraitNotice: "Rotate your device or widen the window",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipIntro:   false,
		ShowCulling: false,
		AssetsDir:   "",
	}
}
