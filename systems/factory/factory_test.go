package factory

import (
	"image/color"
	"testing"

	"github.com/automoto/sdfzoom/assets"
	"github.com/automoto/sdfzoom/components"
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/automoto/sdfzoom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"golang.org/x/image/colornames"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func count(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

func TestSetupSceneSpawnsOneCameraAndShape(t *testing.T) {
	e := newTestECS()
	SetupScene(e, CreateMaterial(cfg.Material.Color, nil))

	if n := count(e.World, tags.MainCamera); n != 1 {
		t.Errorf("cameras = %d, want 1", n)
	}
	if n := count(e.World, tags.Shape); n != 1 {
		t.Errorf("shapes = %d, want 1", n)
	}

	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		t.Fatal("camera missing")
	}
	cam := components.Camera.Get(camEntry)
	if cam.Scale.X != 1 || cam.Scale.Y != 1 {
		t.Errorf("initial scale = %+v, want (1, 1)", cam.Scale)
	}

	shapeEntry, _ := tags.Shape.First(e.World)
	shape := components.Shape.Get(shapeEntry)
	if shape.Width != cfg.Shape.Width || shape.Position.Y != cfg.Shape.Y {
		t.Errorf("shape = %+v, want config placement", shape)
	}
}

func TestCreateMaterial(t *testing.T) {
	yellow := color.RGBA{R: 255, G: 255, A: 255}

	m := CreateMaterial(yellow, nil)
	if m.Shader != assets.SDFCircleShader {
		t.Errorf("Shader = %q, want %q", m.Shader, assets.SDFCircleShader)
	}
	if m.Radius != nil {
		t.Errorf("Radius = %v, want nil", *m.Radius)
	}
	if got := m.EffectiveRadius(100, 60); got != 30 {
		t.Errorf("inscribed radius = %v, want 30", got)
	}

	r := 40.0
	m = CreateMaterial(colornames.Red, &r)
	r = 99 // caller's variable must not leak into the material
	if m.Radius == nil || *m.Radius != 40 {
		t.Fatalf("Radius = %v, want 40", m.Radius)
	}
	if got := m.EffectiveRadius(100, 100); got != 40 {
		t.Errorf("explicit radius = %v, want 40", got)
	}
}

func TestCreateZoomController(t *testing.T) {
	e := newTestECS()
	entry := CreateZoomController(e)

	timer := components.ZoomTimer.Get(entry)
	if timer.State != components.ZoomIdle || timer.Elapsed != 0 {
		t.Errorf("timer = %+v, want idle at 0", timer)
	}
	if timer.Duration != cfg.Zoom.SecondsToPerfection {
		t.Errorf("Duration = %v, want %v", timer.Duration, cfg.Zoom.SecondsToPerfection)
	}
}

func TestCreateZoomOverlay(t *testing.T) {
	e := newTestECS()
	entry := CreateZoomOverlay(e, 3.5)
	if got := components.ZoomOverlay.Get(entry).ZoomFactor; got != 3.5 {
		t.Errorf("ZoomFactor = %v, want 3.5", got)
	}
}
