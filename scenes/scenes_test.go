package scenes

import (
	"testing"

	"github.com/automoto/sdfzoom/components"
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/automoto/sdfzoom/systems"
)

type fakeChanger struct {
	scene interface{}
	quit  bool
}

func (f *fakeChanger) ChangeScene(scene interface{}) { f.scene = scene }
func (f *fakeChanger) Quit()                         { f.quit = true }

func restoreDemo(t *testing.T) {
	t.Helper()
	start := cfg.Demo.Start
	t.Cleanup(func() { cfg.Demo.Start = start })
}

func TestNewSceneDispatch(t *testing.T) {
	sc := &fakeChanger{}

	if _, ok := NewScene(sc, cfg.DemoStatic).(*StaticScene); !ok {
		t.Error("static demo did not create a StaticScene")
	}
	if _, ok := NewScene(sc, cfg.DemoSlider).(*SliderScene); !ok {
		t.Error("slider demo did not create a SliderScene")
	}
	if _, ok := NewScene(sc, cfg.DemoAnimated).(*AnimatedScene); !ok {
		t.Error("animated demo did not create an AnimatedScene")
	}
	if _, ok := NewScene(sc, "bogus").(*SliderScene); !ok {
		t.Error("unknown demo should fall back to the first demo")
	}
}

func TestHandleTransitions(t *testing.T) {
	restoreDemo(t)

	t.Run("nothing requested", func(t *testing.T) {
		sc := &fakeChanger{}
		ds := &StaticScene{demoScene{sceneChanger: sc, id: cfg.DemoStatic}}
		ds.configure()

		if ds.handleTransitions() {
			t.Error("handleTransitions reported a change with no request")
		}
		if sc.scene != nil || sc.quit {
			t.Errorf("changer touched: %+v", sc)
		}
	})

	t.Run("next demo", func(t *testing.T) {
		sc := &fakeChanger{}
		ds := &StaticScene{demoScene{sceneChanger: sc, id: cfg.DemoStatic}}
		ds.configure()
		systems.GetOrCreateSettings(ds.ecs.World).NextDemoRequested = true

		if !ds.handleTransitions() {
			t.Fatal("handleTransitions did not report a change")
		}
		want := cfg.NextDemo(cfg.DemoStatic)
		if cfg.Demo.Start != want {
			t.Errorf("Demo.Start = %s, want %s", cfg.Demo.Start, want)
		}
		if sc.scene == nil {
			t.Fatal("no scene was installed")
		}
	})

	t.Run("quit", func(t *testing.T) {
		sc := &fakeChanger{}
		ds := &AnimatedScene{demoScene{sceneChanger: sc, id: cfg.DemoAnimated}}
		ds.configure()
		settings := systems.GetOrCreateSettings(ds.ecs.World)
		settings.QuitRequested = true
		settings.NextDemoRequested = true

		if !ds.handleTransitions() {
			t.Fatal("handleTransitions did not report quitting")
		}
		if !sc.quit {
			t.Error("Quit was not called")
		}
		if sc.scene != nil {
			t.Error("quit must win over next demo")
		}
	})
}

func TestConfigureBuildsOneCameraAndShape(t *testing.T) {
	static := &StaticScene{demoScene{sceneChanger: &fakeChanger{}, id: cfg.DemoStatic}}
	animated := &AnimatedScene{demoScene{sceneChanger: &fakeChanger{}, id: cfg.DemoAnimated}}
	slider := NewSliderScene(&fakeChanger{})

	tests := []struct {
		name       cfg.DemoID
		configure  func()
		demo       *demoScene
		wantTimer  bool
		wantRadius bool
	}{
		{cfg.DemoStatic, static.configure, &static.demoScene, false, true},
		{cfg.DemoAnimated, animated.configure, &animated.demoScene, true, false},
		{cfg.DemoSlider, func() { slider.configureWorld() }, &slider.demoScene, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			tt.configure()
			w := tt.demo.ecs.World

			if _, ok := components.Camera.First(w); !ok {
				t.Error("camera missing")
			}
			shape, ok := components.Material.First(w)
			if !ok {
				t.Fatal("shape missing")
			}
			if got := components.Material.Get(shape).Radius != nil; got != tt.wantRadius {
				t.Errorf("explicit radius = %v, want %v", got, tt.wantRadius)
			}
			if _, ok := systems.GetZoomTimer(w); ok != tt.wantTimer {
				t.Errorf("zoom timer present = %v, want %v", ok, tt.wantTimer)
			}
			if got := systems.GetOrCreateSettings(w).Demo; got != tt.name {
				t.Errorf("settings demo = %s, want %s", got, tt.name)
			}
		})
	}
}

type fixedZoom float64

func (f fixedZoom) ZoomFactor() float64 { return float64(f) }

func TestSliderSceneTracksSliderInSameUpdate(t *testing.T) {
	ss := NewSliderScene(&fakeChanger{})
	start := ss.configureWorld()
	w := ss.ecs.World

	if got, _ := systems.GetOverlayZoomFactor(w); got != start {
		t.Fatalf("overlay starts at %v, want %v", got, start)
	}

	// What Update does between the UI and the ECS tick
	syncOverlay(w, fixedZoom(4))
	systems.ApplyZoomOverlay(w)

	if got, _ := systems.GetOverlayZoomFactor(w); got != 4 {
		t.Errorf("overlay = %v, want 4", got)
	}
	camera, ok := components.Camera.First(w)
	if !ok {
		t.Fatal("camera missing")
	}
	if got := components.Camera.Get(camera).Scale.X; got != 0.25 {
		t.Errorf("camera scale = %v, want 0.25 in the same frame", got)
	}

	syncOverlay(w, fixedZoom(1000))
	if got, _ := systems.GetOverlayZoomFactor(w); got != cfg.Zoom.MaxFactor {
		t.Errorf("overlay = %v, want clamped to %v", got, cfg.Zoom.MaxFactor)
	}
}
