package components

import "github.com/yohamta/donburi"

// SettingsData stores window settings that persist between runs.
type SettingsData struct {
	Fullscreen      bool
	ResolutionIndex int
	Dirty           bool // changed since the last save

	// Size of the window or screen the game is shown in, from Layout.
	OutsideWidth  int
	OutsideHeight int
}

// Portrait reports whether the window is taller than it is wide.
func (s *SettingsData) Portrait() bool {
	return s.OutsideHeight > s.OutsideWidth
}

var Settings = donburi.NewComponentType[SettingsData]()
