package systems

import (
	"testing"

	"github.com/automoto/sdfzoom/components"
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

func TestZoomStartRequested(t *testing.T) {
	keys := []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}

	tests := []struct {
		name   string
		events []components.KeyEvent
		want   bool
	}{
		{"no events", nil, false},
		{"press only", []components.KeyEvent{press(ebiten.KeySpace)}, false},
		{"release bound key", []components.KeyEvent{release(ebiten.KeySpace)}, true},
		{"release second binding", []components.KeyEvent{release(ebiten.KeyEnter)}, true},
		{"release other key", []components.KeyEvent{release(ebiten.KeyA)}, false},
		{"press then release in one frame", []components.KeyEvent{press(ebiten.KeySpace), release(ebiten.KeySpace)}, true},
		{"bound release among noise", []components.KeyEvent{press(ebiten.KeyQ), release(ebiten.KeyW), release(ebiten.KeyEnter)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ZoomStartRequested(tt.events, keys); got != tt.want {
				t.Errorf("ZoomStartRequested = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestZoomStartRequestedWithoutBindings(t *testing.T) {
	if ZoomStartRequested([]components.KeyEvent{release(ebiten.KeySpace)}, nil) {
		t.Error("no keys bound should never trigger")
	}
}

func TestGetAction(t *testing.T) {
	input := &components.InputData{}

	input.Current[cfg.ActionNextDemo] = true
	if s := GetAction(input, cfg.ActionNextDemo); !s.Pressed || !s.JustPressed || s.JustReleased {
		t.Errorf("first frame = %+v, want pressed+just pressed", s)
	}

	input.Previous = input.Current
	if s := GetAction(input, cfg.ActionNextDemo); !s.Pressed || s.JustPressed {
		t.Errorf("held = %+v, want pressed only", s)
	}

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	if s := GetAction(input, cfg.ActionNextDemo); s.Pressed || !s.JustReleased {
		t.Errorf("released = %+v, want just released", s)
	}
}

func TestFrameKeyEventsBeforeFirstPoll(t *testing.T) {
	w := donburi.NewWorld()
	if events := FrameKeyEvents(w); events != nil {
		t.Errorf("events = %v, want nil", events)
	}
	getOrCreateKeyEvents(w).Events = []components.KeyEvent{release(ebiten.KeyH)}
	if events := FrameKeyEvents(w); len(events) != 1 {
		t.Errorf("events = %v, want one", events)
	}
}
