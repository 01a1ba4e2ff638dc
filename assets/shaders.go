package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// Shader program names, as referenced by materials
const (
	SDFCircleShader = "shaders/sdf_circle.kage"
)

var shaders = map[string]*ebiten.Shader{}

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	for _, name := range []string{SDFCircleShader} {
		src, err := shaderFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read shader %s: %w", name, err)
		}
		s, err := ebiten.NewShader(src)
		if err != nil {
			return fmt.Errorf("compile shader %s: %w", name, err)
		}
		shaders[name] = s
	}
	return nil
}

// Shader returns a compiled shader by name, or nil if it was never loaded
func Shader(name string) *ebiten.Shader {
	return shaders[name]
}
