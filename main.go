package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/orthocam/config"
	"github.com/automoto/orthocam/fonts"
	"github.com/automoto/orthocam/scenes"
	"github.com/automoto/orthocam/systems"
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

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
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
	debug := flag.Bool("debug", false, "draw the culling overlay (toggle with F3)")
	inputMode := flag.String("input", "", "input sources: auto, pointer, touch or both")
	mapPath := flag.String("map", "", "path to a .tmx map, or a built-in name such as maps/demo.tmx")
	watch := flag.Bool("watch", false, "reload the -map file when it changes on disk")
	configPath := flag.String("config", "", "YAML file overriding camera and input defaults")
	flag.Parse()

	// Overrides first so explicit flags win
	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *inputMode != "" {
		mode, err := config.ParseInputSourceMode(*inputMode)
		if err != nil {
			log.Fatalf("Invalid -input: %v", err)
		}
		config.Input.Mode = mode
	}
	if *debug {
		config.Debug.Enabled = true
	}
	if *watch && *mapPath == "" {
		log.Printf("Warning: -watch has no effect without -map")
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence; the viewer still runs without it
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	scene := scenes.NewViewerScene(scenes.ViewerOptions{
		MapPath: *mapPath,
		Watch:   *watch,
	})
	defer scene.Close()

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
