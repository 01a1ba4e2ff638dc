package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// ColorFile is an RGBA color as written in the config file
type ColorFile struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

type windowFile struct {
	Width  *int    `yaml:"width"`
	Height *int    `yaml:"height"`
	Title  *string `yaml:"title"`
}

type zoomFile struct {
	SecondsToPerfection *float64 `yaml:"seconds_to_perfection"`
	MinFactor           *float64 `yaml:"min_factor"`
	MaxFactor           *float64 `yaml:"max_factor"`
	DefaultFactor       *float64 `yaml:"default_factor"`
	SliderResolution    *int     `yaml:"slider_resolution"`
}

type materialFile struct {
	Color  *ColorFile `yaml:"color"`
	Radius *float64   `yaml:"radius"`
}

type shapeFile struct {
	Width  *float64 `yaml:"width"`
	Height *float64 `yaml:"height"`
	X      *float64 `yaml:"x"`
	Y      *float64 `yaml:"y"`
}

type hudFile struct {
	Visible     *bool    `yaml:"visible"`
	FadeSeconds *float64 `yaml:"fade_seconds"`
	FontSize    *float64 `yaml:"font_size"`
}

// File is the on-disk layout of the optional YAML config. Absent keys keep
// their compiled-in defaults.
type File struct {
	Demo     *string       `yaml:"demo"`
	Window   *windowFile   `yaml:"window"`
	Zoom     *zoomFile     `yaml:"zoom"`
	Material *materialFile `yaml:"material"`
	Shape    *shapeFile    `yaml:"shape"`
	HUD      *hudFile      `yaml:"hud"`
}

// LoadFile reads a YAML config file and applies it over the globals
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := ApplyYAML(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	log.Printf("[config] loaded overrides from %s", path)
	return nil
}

// ApplyYAML decodes data and applies it over the globals. Nothing is applied
// when the document fails validation.
func ApplyYAML(data []byte) error {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	zoom := Zoom
	if z := f.Zoom; z != nil {
		setFloat(&zoom.SecondsToPerfection, z.SecondsToPerfection)
		setFloat(&zoom.MinFactor, z.MinFactor)
		setFloat(&zoom.MaxFactor, z.MaxFactor)
		setFloat(&zoom.DefaultFactor, z.DefaultFactor)
		if z.SliderResolution != nil {
			zoom.SliderResolution = *z.SliderResolution
		}
	}
	if err := validateZoom(zoom); err != nil {
		return err
	}

	demo := Demo
	if f.Demo != nil {
		id := DemoID(*f.Demo)
		if !ValidDemo(id) {
			return fmt.Errorf("unknown demo %q", *f.Demo)
		}
		demo.Start = id
	}

	win := *C
	if w := f.Window; w != nil {
		if w.Width != nil {
			win.Width = *w.Width
		}
		if w.Height != nil {
			win.Height = *w.Height
		}
		if w.Title != nil {
			win.Title = *w.Title
		}
	}
	if win.Width <= 0 || win.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", win.Width, win.Height)
	}

	material := Material
	if m := f.Material; m != nil {
		if m.Color != nil {
			material.Color = color.RGBA{R: m.Color.R, G: m.Color.G, B: m.Color.B, A: m.Color.A}
		}
		setFloat(&material.Radius, m.Radius)
	}
	if material.Radius < 0 {
		return errors.New("material radius must not be negative")
	}

	shape := Shape
	if s := f.Shape; s != nil {
		setFloat(&shape.Width, s.Width)
		setFloat(&shape.Height, s.Height)
		setFloat(&shape.X, s.X)
		setFloat(&shape.Y, s.Y)
	}
	if shape.Width <= 0 || shape.Height <= 0 {
		return errors.New("shape size must be positive")
	}

	hud := HUD
	if h := f.HUD; h != nil {
		if h.Visible != nil {
			hud.Visible = *h.Visible
		}
		setFloat(&hud.FadeSeconds, h.FadeSeconds)
		setFloat(&hud.FontSize, h.FontSize)
	}
	if hud.FadeSeconds < 0 {
		return errors.New("hud fade_seconds must not be negative")
	}

	Zoom = zoom
	Demo = demo
	*C = win
	Material = material
	Shape = shape
	HUD = hud
	return nil
}

func validateZoom(z ZoomConfig) error {
	if z.SecondsToPerfection < 0 {
		return errors.New("zoom seconds_to_perfection must not be negative")
	}
	if z.MinFactor <= 0 {
		return errors.New("zoom min_factor must be positive")
	}
	if z.MaxFactor < z.MinFactor {
		return fmt.Errorf("zoom max_factor %v is below min_factor %v", z.MaxFactor, z.MinFactor)
	}
	if z.DefaultFactor < z.MinFactor || z.DefaultFactor > z.MaxFactor {
		return fmt.Errorf("zoom default_factor %v outside [%v, %v]", z.DefaultFactor, z.MinFactor, z.MaxFactor)
	}
	if z.SliderResolution < 1 {
		return errors.New("zoom slider_resolution must be at least 1")
	}
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
