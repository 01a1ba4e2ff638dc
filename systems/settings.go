package systems

import (
	"github.com/automoto/sdfzoom/components"
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeding it
// from config on first use
func GetOrCreateSettings(w donburi.World) *components.SettingsData {
	entry, ok := components.Settings.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Settings))
		components.Settings.Set(entry, &components.SettingsData{
			ShowHUD:  cfg.HUD.Visible,
			Demo:     cfg.Demo.Start,
			HUDAlpha: hudTargetAlpha(cfg.HUD.Visible),
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles app-level actions. Must run AFTER UpdateInput.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e.World)
	input := getOrCreateInput(e.World)
	applySettingsInput(settings, input)
	advanceHUDFade(settings, FrameDelta())
}

func applySettingsInput(settings *components.SettingsData, input *components.InputData) {
	settings.NextDemoRequested = GetAction(input, cfg.ActionNextDemo).JustPressed
	settings.QuitRequested = GetAction(input, cfg.ActionQuit).JustPressed

	if GetAction(input, cfg.ActionToggleHUD).JustPressed {
		settings.ShowHUD = !settings.ShowHUD
		cfg.HUD.Visible = settings.ShowHUD
		startHUDFade(settings)
		SaveCurrentSettings()
	}
}

func hudTargetAlpha(visible bool) float64 {
	if visible {
		return 1
	}
	return 0
}

// startHUDFade eases the HUD from its current opacity toward ShowHUD.
// A toggle mid-fade turns around from wherever the HUD is.
func startHUDFade(settings *components.SettingsData) {
	target := hudTargetAlpha(settings.ShowHUD)
	if cfg.HUD.FadeSeconds <= 0 {
		settings.HUDAlpha = target
		settings.HUDFade = nil
		return
	}
	settings.HUDFade = gween.New(
		float32(settings.HUDAlpha),
		float32(target),
		float32(cfg.HUD.FadeSeconds),
		ease.OutQuad,
	)
}

func advanceHUDFade(settings *components.SettingsData, dt float64) {
	if settings.HUDFade == nil || dt <= 0 {
		return
	}
	alpha, finished := settings.HUDFade.Update(float32(dt))
	settings.HUDAlpha = float64(alpha)
	if finished {
		settings.HUDAlpha = hudTargetAlpha(settings.ShowHUD)
		settings.HUDFade = nil
	}
}
