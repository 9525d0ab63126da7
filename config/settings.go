package config

// Resolution represents a windowed size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains window settings defaults
type SettingsConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	DefaultFullscreen      bool
}

// Settings is the global window settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 960, Height: 540, Label: "960 x 540"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 1,
		DefaultFullscreen:      false,
	}
}
