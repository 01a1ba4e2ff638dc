package systems

import (
	"github.com/automoto/sdfzoom/components"
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/automoto/sdfzoom/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// StartZoomTimer moves an idle timer to Animating. Any other state is left
// untouched.
func StartZoomTimer(timer *components.ZoomTimerData) bool {
	if timer.State != components.ZoomIdle {
		return false
	}
	timer.State = components.ZoomAnimating
	return true
}

// AdvanceZoomTimer adds dt seconds to a running timer and settles it once
// the duration is reached. Elapsed is clamped to the duration and never
// decreases; paused timers and negative deltas are ignored.
func AdvanceZoomTimer(timer *components.ZoomTimerData, dt float64) {
	if !timer.Running() || dt < 0 {
		return
	}
	timer.Elapsed += dt
	if timer.Elapsed >= timer.Duration {
		timer.Elapsed = max(timer.Duration, 0)
		timer.State = components.ZoomSettled
	}
}

// ZoomTimerScale returns the camera scale for the timer's current progress
func ZoomTimerScale(timer *components.ZoomTimerData) float64 {
	t := 0.0
	switch timer.State {
	case components.ZoomAnimating:
		t = gamemath.Progress(timer.Elapsed, timer.Duration)
	case components.ZoomSettled:
		t = 1
	}
	return gamemath.AnimatedScale(t, cfg.Zoom.MinScale)
}

// TickZoom runs one frame of the zoom controller: drain the start signal,
// advance by dt, then compute the scale. The trigger frame counts toward
// elapsed.
func TickZoom(timer *components.ZoomTimerData, events []components.KeyEvent, startKeys []ebiten.Key, dt float64) float64 {
	if ZoomStartRequested(events, startKeys) {
		StartZoomTimer(timer)
	}
	AdvanceZoomTimer(timer, dt)
	return ZoomTimerScale(timer)
}

// WriteCameraScale sets a uniform scale on the world's camera. It returns
// false without touching anything when no camera exists.
func WriteCameraScale(w donburi.World, scale float64) bool {
	entry, ok := components.Camera.First(w)
	if !ok {
		return false
	}
	camera := components.Camera.Get(entry)
	camera.Scale = math.NewVec2(scale, scale)
	return true
}

// ApplyZoomAnimation ticks the world's zoom controller with the given events
// and writes the result to the camera. A world without a controller is left
// alone.
func ApplyZoomAnimation(w donburi.World, events []components.KeyEvent, dt float64) {
	entry, ok := components.ZoomTimer.First(w)
	if !ok {
		return
	}
	timer := components.ZoomTimer.Get(entry)
	scale := TickZoom(timer, events, cfg.KeysFor(cfg.ActionStartZoom), dt)
	WriteCameraScale(w, scale)
}

// UpdateZoomAnimation drives the camera from the timed ease-out animation.
// Must run AFTER UpdateInput.
func UpdateZoomAnimation(e *ecs.ECS) {
	ApplyZoomAnimation(e.World, FrameKeyEvents(e.World), FrameDelta())
}

// FrameDelta is the fixed simulated time of one Update call, in seconds
func FrameDelta() float64 {
	return 1 / float64(ebiten.TPS())
}

// GetZoomTimer returns the world's zoom timer, if any
func GetZoomTimer(w donburi.World) (*components.ZoomTimerData, bool) {
	entry, ok := components.ZoomTimer.First(w)
	if !ok {
		return nil, false
	}
	return components.ZoomTimer.Get(entry), true
}
