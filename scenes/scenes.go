package scenes

import (
	"log"
	"sync"

	"github.com/automoto/sdfzoom/components"
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/automoto/sdfzoom/systems"
	"github.com/automoto/sdfzoom/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// NewScene creates the demo scene for id. Unknown ids fall back to the
// first demo in the cycle.
func NewScene(sc SceneChanger, id cfg.DemoID) interface{} {
	switch id {
	case cfg.DemoStatic:
		return NewStaticScene(sc)
	case cfg.DemoSlider:
		return NewSliderScene(sc)
	case cfg.DemoAnimated:
		return NewAnimatedScene(sc)
	}
	return NewScene(sc, cfg.Demos[0])
}

// demoScene holds what every demo shares: one world with a camera and a shape,
// the input and settings systems, and the shape and HUD renderers
type demoScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	id           cfg.DemoID
	once         sync.Once
}

// setup creates the world and registers the systems that must run before
// any zoom system
func (ds *demoScene) setup(material components.MaterialData) {
	ds.ecs = ecs.NewECS(donburi.NewWorld())

	settings := systems.GetOrCreateSettings(ds.ecs.World)
	settings.Demo = ds.id

	ds.ecs.AddSystem(systems.UpdateInput)
	ds.ecs.AddSystem(systems.UpdateSettings)

	factory.SetupScene(ds.ecs, material)
}

// addRenderers registers the shape and HUD renderers. Call after the zoom
// system so the systems run in order.
func (ds *demoScene) addRenderers() {
	ds.ecs.AddRenderer(cfg.Default, systems.DrawShapes)
	ds.ecs.AddRenderer(cfg.HUDLayer, systems.DrawHUD)
}

// handleTransitions reacts to quit and next-demo requests from this frame.
// Returns true when the scene was replaced.
func (ds *demoScene) handleTransitions() bool {
	settings := systems.GetOrCreateSettings(ds.ecs.World)

	if settings.QuitRequested {
		ds.sceneChanger.Quit()
		return true
	}

	if settings.NextDemoRequested {
		next := cfg.NextDemo(ds.id)
		log.Printf("[scene] switching demo %s -> %s", ds.id, next)
		cfg.Demo.Start = next
		systems.SaveCurrentSettings()
		ds.sceneChanger.ChangeScene(NewScene(ds.sceneChanger, next))
		return true
	}
	return false
}

func (ds *demoScene) draw(screen *ebiten.Image) {
	screen.Fill(cfg.Render.ClearColor)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}
