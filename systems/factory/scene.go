package factory

import (
	"github.com/automoto/sdfzoom/components"
	"github.com/yohamta/donburi/ecs"
)

// SetupScene spawns the one camera and the one shape every demo draws.
// Nothing else creates or destroys these entities.
func SetupScene(ecs *ecs.ECS, material components.MaterialData) {
	CreateCamera(ecs)
	CreateShape(ecs, material)
}
