package config

import (
	"image/color"
	"math"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// ZoomConfig contains camera zoom and animation configuration
type ZoomConfig struct {
	// Animation
	SecondsToPerfection float64 // Duration of the one-shot zoom animation

	// Overlay slider range
	MinFactor        float64
	MaxFactor        float64
	DefaultFactor    float64
	SliderResolution int // Integer slider steps per zoom unit

	// MinScale keeps the camera scale strictly positive
	MinScale float64
}

// MaterialConfig contains the SDF circle material defaults
type MaterialConfig struct {
	Color  color.RGBA
	Radius float64 // Only used by the static demo; 0 means inscribed in the quad
}

// ShapeConfig contains the quad dimensions and placement in world units
type ShapeConfig struct {
	Width  float64
	Height float64
	X      float64
	Y      float64
}

// RenderConfig contains renderer limits
type RenderConfig struct {
	ClearColor       color.RGBA
	MaxMagnification float64 // Upper bound on 1/scale handed to the GPU
}

// HUDConfig contains the zoom readout configuration
type HUDConfig struct {
	Visible     bool
	FadeSeconds float64 // Show/hide fade; 0 switches instantly
	Margin      float64
	LineGap     float64
	FontSize    float64
	TextColor   color.RGBA
	BgColor     color.RGBA
}

// OverlayConfig contains the slider window layout
type OverlayConfig struct {
	Title       string
	SliderLabel string
	X, Y        int
	Width       int
	Height      int
}

// DemoID selects which variant of the zoom demo runs
type DemoID string

const (
	DemoStatic   DemoID = "static"
	DemoSlider   DemoID = "slider"
	DemoAnimated DemoID = "animated"
)

// Demos lists the demos in Tab cycling order
var Demos = []DemoID{DemoSlider, DemoAnimated, DemoStatic}

// DemoConfig contains startup options (can be overridden by CLI flags)
type DemoConfig struct {
	Start DemoID
}

// Global configuration instances
var C *Config
var Zoom ZoomConfig
var Material MaterialConfig
var Shape ShapeConfig
var Render RenderConfig
var HUD HUDConfig
var Overlay OverlayConfig
var Demo DemoConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "SDF Zoom",
	}

	Zoom = ZoomConfig{
		SecondsToPerfection: 10.0,

		MinFactor:        1.0,
		MaxFactor:        100.0,
		DefaultFactor:    1.0,
		SliderResolution: 10,

		MinScale: math.SmallestNonzeroFloat64,
	}

	Material = MaterialConfig{
		Color:  Yellow,
		Radius: 40.0,
	}

	// Quad sits just below the origin so the animated zoom lands on its top edge
	Shape = ShapeConfig{
		Width:  100.0,
		Height: 100.0,
		X:      0.0,
		Y:      -50.0,
	}

	Render = RenderConfig{
		ClearColor:       color.RGBA{R: 43, G: 44, B: 47, A: 255},
		MaxMagnification: 1e7,
	}

	HUD = HUDConfig{
		Visible:     true,
		FadeSeconds: 0.25,
		Margin:      10,
		LineGap:     16,
		FontSize:    12,
		TextColor:   White,
		BgColor:     BlackOverlay,
	}

	Overlay = OverlayConfig{
		Title:       "CIRCLE",
		SliderLabel: "ZOOOOM!",
		X:           20,
		Y:           20,
		Width:       260,
		Height:      80,
	}

	Demo = DemoConfig{
		Start: DemoSlider,
	}
}

// ValidDemo reports whether id names a known demo
func ValidDemo(id DemoID) bool {
	for _, d := range Demos {
		if d == id {
			return true
		}
	}
	return false
}

// NextDemo returns the demo after id in cycling order
func NextDemo(id DemoID) DemoID {
	for i, d := range Demos {
		if d == id {
			return Demos[(i+1)%len(Demos)]
		}
	}
	return Demos[0]
}
