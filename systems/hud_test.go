package systems

import (
	"image/color"
	"strings"
	"testing"

	"github.com/automoto/sdfzoom/components"
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/automoto/sdfzoom/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestHUDLinesAnimated(t *testing.T) {
	useMemStore(t)
	e := newZoomECS(t)
	GetOrCreateSettings(e.World).Demo = cfg.DemoAnimated

	ApplyZoomAnimation(e.World, nil, 0)
	joined := strings.Join(HUDLines(e.World), "\n")

	for _, want := range []string{"demo: animated", "camera scale: 1", "timer: Idle 0.00/10.00s"} {
		if !strings.Contains(joined, want) {
			t.Errorf("HUD missing %q in:\n%s", want, joined)
		}
	}
}

func TestHUDLinesSlider(t *testing.T) {
	useMemStore(t)
	e := ecs.NewECS(donburi.NewWorld())
	factory.SetupScene(e, factory.CreateMaterial(cfg.Material.Color, nil))
	factory.CreateZoomOverlay(e, 4)
	ApplyZoomOverlay(e.World)

	joined := strings.Join(HUDLines(e.World), "\n")

	if !strings.Contains(joined, "zoom factor: 4.0") {
		t.Errorf("HUD missing zoom factor in:\n%s", joined)
	}
	if !strings.Contains(joined, "camera scale: 0.25") {
		t.Errorf("HUD missing scale in:\n%s", joined)
	}
	if strings.Contains(joined, "timer:") {
		t.Errorf("slider HUD should not show a timer:\n%s", joined)
	}
}

func TestHUDHintsFollowBindingsAndDevice(t *testing.T) {
	tests := []struct {
		name   string
		method components.InputMethod
		want   []string
	}{
		{
			name:   "keyboard",
			method: components.InputKeyboard,
			want:   []string{"[Space/Enter] start zoom", "[Tab] next demo  [H] hide"},
		},
		{
			name:   "gamepad",
			method: components.InputGamepad,
			// Start zoom has no pad binding and keeps its keys
			want: []string{"[Space/Enter] start zoom", "[RB] next demo  [Select] hide"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newZoomECS(t)
			getOrCreateInput(e.World).LastInputMethod = tt.method

			got := HUDHints(e.World)
			if len(got) != len(tt.want) {
				t.Fatalf("hints = %q, want %q", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("hint %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestHUDHintsTrackRebinding(t *testing.T) {
	prev := cfg.Input.Bindings[cfg.ActionToggleHUD]
	t.Cleanup(func() { cfg.Input.Bindings[cfg.ActionToggleHUD] = prev })

	rebound := prev
	rebound.Keys = []ebiten.Key{ebiten.KeyF1}
	cfg.Input.Bindings[cfg.ActionToggleHUD] = rebound

	e := newZoomECS(t)
	joined := strings.Join(HUDHints(e.World), "\n")
	if !strings.Contains(joined, "[F1] hide") {
		t.Errorf("hints did not follow the rebinding:\n%s", joined)
	}
}

func TestHUDHintsHideStartOnceRunning(t *testing.T) {
	e := newZoomECS(t)
	key := cfg.KeysFor(cfg.ActionStartZoom)[0]
	ApplyZoomAnimation(e.World, []components.KeyEvent{release(key)}, 1)

	for _, hint := range HUDHints(e.World) {
		if strings.Contains(hint, "start zoom") {
			t.Errorf("start hint shown while animating: %q", hint)
		}
	}
}

func TestFadeColor(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 200}

	if got := fadeColor(c, 1); got != c {
		t.Errorf("full alpha = %v, want %v", got, c)
	}
	if got := fadeColor(c, 0); got != (color.RGBA{}) {
		t.Errorf("zero alpha = %v, want transparent", got)
	}
	if got := fadeColor(c, 0.5); got != (color.RGBA{R: 100, G: 50, B: 25, A: 100}) {
		t.Errorf("half alpha = %v", got)
	}
}
