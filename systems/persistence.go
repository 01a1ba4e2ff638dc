package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/sdfzoom/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ZoomFactor float64 `json:"zoomFactor"`
	ShowHUD    bool    `json:"showHud"`
	Demo       string  `json:"demo"`
}

const settingsKey = "settings"

// settingsStore is the subset of gdata.Manager used for settings
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// lastZoomFactor carries the slider value across scenes and runs
var lastZoomFactor float64

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "sdfzoom",
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. Missing storage or data yields nil.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings snapshots the global settings and saves them
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		ZoomFactor: LastZoomFactor(),
		ShowHUD:    cfg.HUD.Visible,
		Demo:       string(cfg.Demo.Start),
	})
}

// ApplySavedSettingsGlobal applies settings before any scene exists.
// Out-of-range values are clamped or ignored.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	if saved.ZoomFactor > 0 {
		lastZoomFactor = ClampZoomFactor(saved.ZoomFactor)
	}
	cfg.HUD.Visible = saved.ShowHUD
	if id := cfg.DemoID(saved.Demo); cfg.ValidDemo(id) {
		cfg.Demo.Start = id
	}
}

// LastZoomFactor returns the most recent slider value, or the configured
// default when none was recorded
func LastZoomFactor() float64 {
	if lastZoomFactor <= 0 {
		return cfg.Zoom.DefaultFactor
	}
	return lastZoomFactor
}

// RememberZoomFactor records a slider value for later scenes and saves
func RememberZoomFactor(f float64) {
	lastZoomFactor = ClampZoomFactor(f)
	SaveCurrentSettings()
}
