package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/sdfzoom/components"
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/automoto/sdfzoom/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudWidth = 230

// DrawHUD renders the zoom readout and key hints in the bottom-left corner
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs.World)
	if settings.HUDAlpha <= 0 || !fonts.Loaded(fonts.Regular) || !fonts.Loaded(fonts.Small) {
		return
	}

	lines := HUDLines(ecs.World)
	hints := HUDHints(ecs.World)

	height := cfg.HUD.LineGap*float64(len(lines)+len(hints)) + cfg.HUD.Margin
	x := cfg.HUD.Margin
	y := float64(screen.Bounds().Dy()) - height - cfg.HUD.Margin

	alpha := settings.HUDAlpha
	vector.FillRect(screen, float32(x), float32(y), hudWidth, float32(height), fadeColor(cfg.HUD.BgColor, alpha), false)

	textColor := fadeColor(cfg.HUD.TextColor, alpha)
	baseline := y
	for _, line := range lines {
		baseline += cfg.HUD.LineGap
		text.Draw(screen, line, fonts.Regular.Get(), int(x+6), int(baseline), textColor)
	}
	for _, hint := range hints {
		baseline += cfg.HUD.LineGap
		text.Draw(screen, hint, fonts.Small.Get(), int(x+6), int(baseline), textColor)
	}
}

// fadeColor scales a premultiplied color by alpha
func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// HUDLines builds the readout text for a world
func HUDLines(w donburi.World) []string {
	settings := GetOrCreateSettings(w)
	lines := []string{fmt.Sprintf("demo: %s", settings.Demo)}

	if entry, ok := components.Camera.First(w); ok {
		camera := components.Camera.Get(entry)
		lines = append(lines, fmt.Sprintf("camera scale: %.6g", camera.Scale.X))
	}

	if f, ok := GetOverlayZoomFactor(w); ok {
		lines = append(lines, fmt.Sprintf("zoom factor: %.1f", f))
	}

	if timer, ok := GetZoomTimer(w); ok {
		lines = append(lines,
			fmt.Sprintf("timer: %s %.2f/%.2fs", timer.State, timer.Elapsed, timer.Duration))
	}

	return lines
}

// HUDHints builds the key hints for the device the user last touched
func HUDHints(w donburi.World) []string {
	method := getOrCreateInput(w).LastInputMethod
	var hints []string

	if timer, ok := GetZoomTimer(w); ok && timer.State == components.ZoomIdle {
		hints = append(hints, fmt.Sprintf("%s start zoom", actionHint(cfg.ActionStartZoom, method)))
	}

	hints = append(hints, fmt.Sprintf("%s next demo  %s hide",
		actionHint(cfg.ActionNextDemo, method),
		actionHint(cfg.ActionToggleHUD, method)))
	return hints
}

// actionHint lists the bindings of an action for the given input method.
// Actions with no gamepad binding fall back to their keys.
func actionHint(id cfg.ActionID, method components.InputMethod) string {
	binding := cfg.Input.Bindings[id]

	var names []string
	if method == components.InputGamepad {
		for _, btn := range binding.StandardGamepadButtons {
			names = append(names, gamepadButtonName(btn))
		}
	}
	if len(names) == 0 {
		for _, key := range binding.Keys {
			names = append(names, key.String())
		}
	}
	return "[" + strings.Join(names, "/") + "]"
}

func gamepadButtonName(btn ebiten.StandardGamepadButton) string {
	switch btn {
	case ebiten.StandardGamepadButtonRightBottom:
		return "A"
	case ebiten.StandardGamepadButtonRightRight:
		return "B"
	case ebiten.StandardGamepadButtonFrontTopLeft:
		return "LB"
	case ebiten.StandardGamepadButtonFrontTopRight:
		return "RB"
	case ebiten.StandardGamepadButtonCenterLeft:
		return "Select"
	case ebiten.StandardGamepadButtonCenterRight:
		return "Start"
	}
	return fmt.Sprintf("Button %d", btn)
}
