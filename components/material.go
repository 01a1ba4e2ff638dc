package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// MaterialData describes the uniforms bound to the SDF circle shader.
// It is never mutated after the shape is spawned.
type MaterialData struct {
	Color  color.RGBA
	Radius *float64 // nil = circle inscribed in the quad
	Shader string   // Shader program name registered in assets
}

// EffectiveRadius returns the circle radius for a quad of the given size
func (m *MaterialData) EffectiveRadius(width, height float64) float64 {
	if m.Radius != nil {
		return *m.Radius
	}
	return min(width, height) / 2
}

var Material = donburi.NewComponentType[MaterialData]()
