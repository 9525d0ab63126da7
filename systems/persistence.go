package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/soliman/components"
	cfg "github.com/automoto/soliman/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "soliman",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil without error when
// persistence is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return DecodeSettings(data)
}

// DecodeSettings parses saved settings, clamping the resolution index.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	if settings.ResolutionIndex < 0 || settings.ResolutionIndex >= len(cfg.Settings.Resolutions) {
		settings.ResolutionIndex = cfg.Settings.DefaultResolutionIndex
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// DefaultSettings returns the settings used when nothing was saved.
func DefaultSettings() components.SettingsData {
	return components.SettingsData{
		Fullscreen:      cfg.Settings.DefaultFullscreen,
		ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
	}
}

// SettingsFrom converts saved settings, falling back to defaults for nil.
func SettingsFrom(saved *SavedSettings) components.SettingsData {
	if saved == nil {
		return DefaultSettings()
	}
	return components.SettingsData{
		Fullscreen:      saved.Fullscreen,
		ResolutionIndex: saved.ResolutionIndex,
	}
}

// ApplySavedSettingsGlobal applies settings to the window. Used during
// startup before the scene exists.
func ApplySavedSettingsGlobal(s components.SettingsData) {
	ebiten.SetFullscreen(s.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !s.Fullscreen && s.ResolutionIndex >= 0 && s.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// ToggleFullscreen flips the fullscreen setting and marks it for saving.
func ToggleFullscreen(e *ecs.ECS) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	settings.Fullscreen = !settings.Fullscreen
	settings.Dirty = true
	ebiten.SetFullscreen(settings.Fullscreen)
}

// IsFullscreen reports the current fullscreen setting.
func IsFullscreen(e *ecs.ECS) bool {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return false
	}
	return components.Settings.Get(entry).Fullscreen
}

// UpdateSettings writes changed settings to disk.
func UpdateSettings(e *ecs.ECS) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	if !settings.Dirty {
		return
	}
	settings.Dirty = false
	_ = SaveSettings(&SavedSettings{
		Fullscreen:      settings.Fullscreen,
		ResolutionIndex: settings.ResolutionIndex,
	})
}

// SetOutsideSize records the size of the window the game is shown in.
func SetOutsideSize(e *ecs.ECS, width, height int) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	settings.OutsideWidth, settings.OutsideHeight = width, height
}
