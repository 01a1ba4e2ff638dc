package factory

import (
	"github.com/automoto/sdfzoom/archetypes"
	"github.com/automoto/sdfzoom/components"
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateZoomController spawns an idle zoom timer
func CreateZoomController(ecs *ecs.ECS) *donburi.Entry {
	controller := archetypes.ZoomController.Spawn(ecs)
	components.ZoomTimer.Set(controller, &components.ZoomTimerData{
		State:    components.ZoomIdle,
		Duration: cfg.Zoom.SecondsToPerfection,
	})
	return controller
}

// CreateZoomOverlay spawns the slider state holding an initial zoom factor
func CreateZoomOverlay(ecs *ecs.ECS, zoomFactor float64) *donburi.Entry {
	overlay := archetypes.ZoomOverlay.Spawn(ecs)
	components.ZoomOverlay.Set(overlay, &components.ZoomOverlayData{
		ZoomFactor: zoomFactor,
	})
	return overlay
}
