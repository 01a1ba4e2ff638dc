package archetypes

import (
	"github.com/automoto/sdfzoom/components"
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/automoto/sdfzoom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		tags.MainCamera,
		components.Camera,
	)
	Shape = newArchetype(
		tags.Shape,
		components.Shape,
		components.Material,
	)
	ZoomController = newArchetype(
		components.ZoomTimer,
	)
	ZoomOverlay = newArchetype(
		components.ZoomOverlay,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
