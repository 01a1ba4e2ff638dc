package main

import (
	"flag"
	"log"

	"github.com/automoto/sdfzoom/assets"
	"github.com/automoto/sdfzoom/config"
	"github.com/automoto/sdfzoom/fonts"
	"github.com/automoto/sdfzoom/scenes"
	"github.com/automoto/sdfzoom/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
	quit  bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	g := &Game{}
	g.scene = scenes.NewScene(g, config.Demo.Start).(Scene)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	demo := flag.String("demo", "", "Demo to start in: static, slider or animated")
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	hud := flag.Bool("hud", true, "Show the HUD readout")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Explicit flags win over saved settings
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "hud":
			config.HUD.Visible = *hud
		case "demo":
			id := config.DemoID(*demo)
			if !config.ValidDemo(id) {
				log.Fatalf("Unknown demo %q", *demo)
			}
			config.Demo.Start = id
		}
	})

	if err := assets.LoadShaders(); err != nil {
		log.Fatalf("Failed to load shaders: %v", err)
	}
	if err := fonts.LoadDefaultFonts(config.HUD.FontSize); err != nil {
		log.Printf("Warning: Could not load HUD font: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	log.Printf("[sdfzoom] starting demo %s", config.Demo.Start)
	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
