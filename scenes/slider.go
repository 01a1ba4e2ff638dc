package scenes

import (
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/automoto/sdfzoom/systems"
	"github.com/automoto/sdfzoom/systems/factory"
	"github.com/automoto/sdfzoom/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// zoomFactorSource is anything holding a slider reading
type zoomFactorSource interface {
	ZoomFactor() float64
}

// SliderScene drives the camera from the overlay slider
type SliderScene struct {
	demoScene
	zoomUI *ui.ZoomUI
}

// NewSliderScene creates a new slider scene
func NewSliderScene(sc SceneChanger) *SliderScene {
	return &SliderScene{demoScene: demoScene{sceneChanger: sc, id: cfg.DemoSlider}}
}

func (ss *SliderScene) Update() {
	ss.once.Do(ss.configure)

	// Slider moves land in ebitenui's Update; read them before the camera
	// is written so this frame draws the new zoom
	ss.zoomUI.Update()
	syncOverlay(ss.ecs.World, ss.zoomUI)
	ss.ecs.Update()
	ss.handleTransitions()
}

func (ss *SliderScene) Draw(screen *ebiten.Image) {
	ss.draw(screen)

	if ss.zoomUI == nil {
		return
	}
	ss.zoomUI.UI.Draw(screen)
}

func (ss *SliderScene) configure() {
	zoomFactor := ss.configureWorld()

	ss.zoomUI = ui.NewZoomUI(zoomFactor, func(f float64, settled bool) {
		if settled {
			systems.RememberZoomFactor(f)
		}
	})
}

// configureWorld builds the scene's entities and systems and returns the
// zoom factor the slider starts at
func (ss *SliderScene) configureWorld() float64 {
	ss.setup(factory.CreateMaterial(cfg.Material.Color, nil))

	zoomFactor := systems.LastZoomFactor()
	factory.CreateZoomOverlay(ss.ecs, zoomFactor)

	ss.ecs.AddSystem(systems.UpdateZoomOverlay)
	ss.addRenderers()
	return zoomFactor
}

// syncOverlay copies the slider reading into the world's overlay
func syncOverlay(w donburi.World, src zoomFactorSource) {
	systems.SetOverlayZoomFactor(w, src.ZoomFactor())
}
