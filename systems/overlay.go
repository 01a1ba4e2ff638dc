package systems

import (
	"math"

	"github.com/automoto/sdfzoom/components"
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/automoto/sdfzoom/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ClampZoomFactor clamps a zoom factor to the configured slider range
func ClampZoomFactor(f float64) float64 {
	if math.IsNaN(f) {
		return cfg.Zoom.DefaultFactor
	}
	return gamemath.Clamp(f, cfg.Zoom.MinFactor, cfg.Zoom.MaxFactor)
}

// SliderRange returns the integer bounds of the overlay slider
func SliderRange() (lo, hi int) {
	return ZoomFactorToSlider(cfg.Zoom.MinFactor), ZoomFactorToSlider(cfg.Zoom.MaxFactor)
}

// SliderToZoomFactor converts an integer slider position to a clamped zoom factor
func SliderToZoomFactor(v int) float64 {
	return ClampZoomFactor(float64(v) / float64(cfg.Zoom.SliderResolution))
}

// ZoomFactorToSlider converts a zoom factor to the nearest slider position
func ZoomFactorToSlider(f float64) int {
	return int(math.Round(ClampZoomFactor(f) * float64(cfg.Zoom.SliderResolution)))
}

// SetOverlayZoomFactor stores a new slider reading, clamped to range.
// Returns false when the world has no overlay.
func SetOverlayZoomFactor(w donburi.World, f float64) bool {
	entry, ok := components.ZoomOverlay.First(w)
	if !ok {
		return false
	}
	components.ZoomOverlay.Get(entry).ZoomFactor = ClampZoomFactor(f)
	return true
}

// GetOverlayZoomFactor returns the current slider reading
func GetOverlayZoomFactor(w donburi.World) (float64, bool) {
	entry, ok := components.ZoomOverlay.First(w)
	if !ok {
		return 0, false
	}
	return components.ZoomOverlay.Get(entry).ZoomFactor, true
}

// ApplyZoomOverlay writes 1/zoomFactor to the camera. Missing overlay or
// camera makes this a no-op.
func ApplyZoomOverlay(w donburi.World) {
	f, ok := GetOverlayZoomFactor(w)
	if !ok {
		return
	}
	WriteCameraScale(w, gamemath.DirectScale(f))
}

// UpdateZoomOverlay drives the camera from the overlay slider.
// Must run AFTER the UI has processed this frame's input.
func UpdateZoomOverlay(e *ecs.ECS) {
	ApplyZoomOverlay(e.World)
}
