package scenes

import (
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/automoto/sdfzoom/systems"
	"github.com/automoto/sdfzoom/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

// AnimatedScene zooms the camera in once, easing out over the configured
// duration, after the start key is released
type AnimatedScene struct {
	demoScene
}

// NewAnimatedScene creates a new animated zoom scene
func NewAnimatedScene(sc SceneChanger) *AnimatedScene {
	return &AnimatedScene{demoScene{sceneChanger: sc, id: cfg.DemoAnimated}}
}

func (as *AnimatedScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
	as.handleTransitions()
}

func (as *AnimatedScene) Draw(screen *ebiten.Image) {
	as.draw(screen)
}

func (as *AnimatedScene) configure() {
	as.setup(factory.CreateMaterial(cfg.Material.Color, nil))
	factory.CreateZoomController(as.ecs)

	as.ecs.AddSystem(systems.UpdateZoomAnimation)
	as.addRenderers()
}
