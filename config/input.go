package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical app action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionStartZoom
	ActionNextDemo
	ActionToggleHUD
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			// Zoom start is driven by raw key release events, gamepads are not bound
			ActionStartZoom: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
			},
			ActionNextDemo: {
				Keys: []ebiten.Key{ebiten.KeyTab},
				// Right shoulder
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionToggleHUD: {
				Keys: []ebiten.Key{ebiten.KeyH},
				// Select / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}

// KeysFor returns the keyboard keys bound to an action
func KeysFor(id ActionID) []ebiten.Key {
	return Input.Bindings[id].Keys
}
