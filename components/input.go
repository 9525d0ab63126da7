package components

import (
	cfg "github.com/automoto/soliman/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputPointer InputMethod = iota
	InputKeyboard
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions and the normalized pointer position.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	PointerX        float64 // [-1, 1], left to right
	PointerY        float64 // [-1, 1], top to bottom
	CursorX         int     // last seen cursor, in screen pixels
	CursorY         int
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
