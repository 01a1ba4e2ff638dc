package scenes

import (
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/automoto/sdfzoom/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

// StaticScene draws the circle with an explicit radius and an unscaled camera
type StaticScene struct {
	demoScene
}

// NewStaticScene creates a new static scene
func NewStaticScene(sc SceneChanger) *StaticScene {
	return &StaticScene{demoScene{sceneChanger: sc, id: cfg.DemoStatic}}
}

func (ss *StaticScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
	ss.handleTransitions()
}

func (ss *StaticScene) Draw(screen *ebiten.Image) {
	ss.draw(screen)
}

func (ss *StaticScene) configure() {
	var radius *float64
	if cfg.Material.Radius > 0 {
		radius = &cfg.Material.Radius
	}
	ss.setup(factory.CreateMaterial(cfg.Material.Color, radius))
	ss.addRenderers()
}
