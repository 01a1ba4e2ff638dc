package factory

import (
	"image/color"

	"github.com/automoto/sdfzoom/archetypes"
	"github.com/automoto/sdfzoom/assets"
	"github.com/automoto/sdfzoom/components"
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateMaterial describes an SDF circle material. A nil radius inscribes
// the circle in whatever quad it is drawn on.
func CreateMaterial(c color.RGBA, radius *float64) components.MaterialData {
	m := components.MaterialData{
		Color:  c,
		Shader: assets.SDFCircleShader,
	}
	if radius != nil {
		r := *radius
		m.Radius = &r
	}
	return m
}

// CreateShape spawns the quad from config carrying the given material
func CreateShape(ecs *ecs.ECS, material components.MaterialData) *donburi.Entry {
	shape := archetypes.Shape.Spawn(ecs)
	components.Shape.Set(shape, &components.ShapeData{
		Width:    cfg.Shape.Width,
		Height:   cfg.Shape.Height,
		Position: math.NewVec2(cfg.Shape.X, cfg.Shape.Y),
	})
	components.Material.Set(shape, &material)
	return shape
}
