package components

import "github.com/yohamta/donburi"

// ZoomState is the phase of the one-shot zoom animation
type ZoomState int

const (
	ZoomIdle      ZoomState = iota // Paused, nothing elapsed
	ZoomAnimating                  // Running, 0 <= Elapsed < Duration
	ZoomSettled                    // Paused for good, Elapsed == Duration
)

func (s ZoomState) String() string {
	switch s {
	case ZoomIdle:
		return "Idle"
	case ZoomAnimating:
		return "Animating"
	case ZoomSettled:
		return "Settled"
	}
	return "Unknown"
}

// ZoomTimerData is the animation timer owned by a scene's world.
// There is no path back to ZoomIdle.
type ZoomTimerData struct {
	State    ZoomState
	Elapsed  float64 // seconds
	Duration float64 // seconds
}

// Running reports whether ticks advance the timer
func (z *ZoomTimerData) Running() bool {
	return z.State == ZoomAnimating
}

var ZoomTimer = donburi.NewComponentType[ZoomTimerData]()

// ZoomOverlayData holds the zoom factor read from the overlay slider.
// ZoomFactor is always within the configured slider range.
type ZoomOverlayData struct {
	ZoomFactor float64
}

var ZoomOverlay = donburi.NewComponentType[ZoomOverlayData]()
