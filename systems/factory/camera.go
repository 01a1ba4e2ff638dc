package factory

import (
	"github.com/automoto/sdfzoom/archetypes"
	"github.com/automoto/sdfzoom/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera at the origin with unit scale
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Scale: math.NewVec2(1, 1),
	})
	return camera
}
