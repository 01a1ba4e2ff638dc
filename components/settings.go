package components

import (
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SettingsData stores app-level toggles shared by every demo
type SettingsData struct {
	ShowHUD bool
	Demo    cfg.DemoID

	// HUD opacity in [0, 1], eased toward ShowHUD by HUDFade
	HUDAlpha float64
	HUDFade  *gween.Tween

	// Requests raised this frame, consumed by the scene
	NextDemoRequested bool
	QuitRequested     bool
}

var Settings = donburi.NewComponentType[SettingsData]()
