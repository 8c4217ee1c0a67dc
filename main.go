package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/fonts"
	"github.com/automoto/starblaster/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipTitle {
		g.scene = scenes.NewShooterScene(g, false)
	} else {
		g.scene = scenes.NewTitleScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file with tuning overrides")
	seed := flag.Int64("seed", 0, "RNG seed (0 = seed from the clock)")
	skipTitle := flag.Bool("skip-title", false, "Go straight to the playfield")
	colliders := flag.Bool("colliders", false, "Outline collision proxies")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *seed != 0 {
		config.Debug.Seed = *seed
	}
	config.Debug.SkipTitle = config.Debug.SkipTitle || *skipTitle
	config.Debug.ShowColliders = config.Debug.ShowColliders || *colliders

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Starblaster")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
