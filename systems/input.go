package systems

import (
	"github.com/automoto/sdfzoom/components"
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	keyScratch []ebiten.Key
)

// UpdateInput polls raw input and updates the Input and KeyEvents components.
// Must run BEFORE any system that reads actions or key events.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs.World)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}

	events := getOrCreateKeyEvents(ecs.World)
	events.Events = pollKeyEvents(events.Events[:0])
}

// pollKeyEvents appends this frame's key transitions: presses first, then releases
func pollKeyEvents(dst []components.KeyEvent) []components.KeyEvent {
	keyScratch = inpututil.AppendJustPressedKeys(keyScratch[:0])
	for _, k := range keyScratch {
		dst = append(dst, components.KeyEvent{Key: k})
	}
	keyScratch = inpututil.AppendJustReleasedKeys(keyScratch[:0])
	for _, k := range keyScratch {
		dst = append(dst, components.KeyEvent{Key: k, Released: true})
	}
	return dst
}

// ZoomStartRequested reports whether events contain a release of any of keys.
// Presses and releases of other keys are ignored. The caller decides whether
// the controller can still start.
func ZoomStartRequested(events []components.KeyEvent, keys []ebiten.Key) bool {
	for _, ev := range events {
		if !ev.Released {
			continue
		}
		for _, k := range keys {
			if ev.Key == k {
				return true
			}
		}
	}
	return false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// getOrCreateKeyEvents returns the singleton KeyEvents component, creating if needed
func getOrCreateKeyEvents(w donburi.World) *components.KeyEventsData {
	entry, ok := components.KeyEvents.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.KeyEvents))
	}
	return components.KeyEvents.Get(entry)
}

// FrameKeyEvents returns the key events polled this frame, or nil before the
// first UpdateInput
func FrameKeyEvents(w donburi.World) []components.KeyEvent {
	entry, ok := components.KeyEvents.First(w)
	if !ok {
		return nil
	}
	return components.KeyEvents.Get(entry).Events
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
