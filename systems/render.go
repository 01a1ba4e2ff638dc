package systems

import (
	"image/color"
	"math"

	"github.com/automoto/sdfzoom/assets"
	"github.com/automoto/sdfzoom/components"
	"github.com/automoto/sdfzoom/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// DrawShapes rasterizes every shape with its material's shader through the
// camera transform
func DrawShapes(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	tags.Shape.Each(ecs.World, func(e *donburi.Entry) {
		shape := components.Shape.Get(e)
		material := components.Material.Get(e)

		shader := assets.Shader(material.Shader)
		if shader == nil {
			return
		}

		shaderOp.GeoM = ShapeGeoM(shape, camera, width, height)
		shaderOp.Uniforms = MaterialUniforms(material, shape)
		screen.DrawRectShader(
			int(math.Ceil(shape.Width)),
			int(math.Ceil(shape.Height)),
			shader,
			shaderOp,
		)
	})
}

// MaterialUniforms returns the shader uniforms for a material on a shape
func MaterialUniforms(material *components.MaterialData, shape *components.ShapeData) map[string]any {
	return map[string]any{
		"Color":  ColorUniform(material.Color),
		"Radius": float32(material.EffectiveRadius(shape.Width, shape.Height)),
		"Size":   []float32{float32(shape.Width), float32(shape.Height)},
	}
}

// ColorUniform converts a premultiplied RGBA color to a vec4 in [0, 1]
func ColorUniform(c color.RGBA) []float32 {
	return []float32{
		float32(c.R) / 0xff,
		float32(c.G) / 0xff,
		float32(c.B) / 0xff,
		float32(c.A) / 0xff,
	}
}
