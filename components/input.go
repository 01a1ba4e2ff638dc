package components

import (
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()

// KeyEvent is a single keyboard transition observed this frame
type KeyEvent struct {
	Key      ebiten.Key
	Released bool // false = pressed
}

// KeyEventsData is the ordered batch of key events for the current frame.
// It is rebuilt every frame; readers never modify it.
type KeyEventsData struct {
	Events []KeyEvent
}

var KeyEvents = donburi.NewComponentType[KeyEventsData]()
