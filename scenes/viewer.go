package scenes

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/automoto/orthocam/assets"
	cfg "github.com/automoto/orthocam/config"
	"github.com/automoto/orthocam/input"
	"github.com/automoto/orthocam/systems"
	"github.com/automoto/orthocam/systems/factory"
	"github.com/automoto/orthocam/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ViewerOptions selects the map the viewer shows
type ViewerOptions struct {
	MapPath string // File on disk; empty means the embedded default map
	Watch   bool   // Reload MapPath when it changes
}

// ViewerScene shows a tile map through the pan/zoom camera
type ViewerScene struct {
	ecs     *ecs.ECS
	opts    ViewerOptions
	overlay *ui.Overlay
	watcher *assets.MapWatcher
	once    sync.Once
}

func NewViewerScene(opts ViewerOptions) *ViewerScene {
	return &ViewerScene{opts: opts}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

// Close stops the map watcher, if any
func (vs *ViewerScene) Close() {
	if vs.watcher != nil {
		if err := vs.watcher.Close(); err != nil {
			log.Printf("Warning: Could not stop map watcher: %v", err)
		}
	}
}

func (vs *ViewerScene) configure() {
	m, source, onDisk := vs.loadMap()

	ecs := ecs.NewECS(donburi.NewWorld())
	vs.overlay = ui.NewOverlay(ecs)

	// Input must be polled before the UI and camera read it
	mode := input.Resolve(cfg.Input.Mode)
	ecs.AddSystem(systems.NewUpdateInput(input.Sources(mode, cfg.Input.PanButton)...))
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(vs.overlay.Update)
	ecs.AddSystem(systems.NewUpdateCameraController(vs.overlay))
	ecs.AddSystem(systems.UpdateCameraTween)
	ecs.AddSystem(systems.UpdatePersistence)
	if vs.opts.Watch && onDisk {
		vs.startWatcher(ecs)
	}

	ecs.AddRenderer(cfg.Default, systems.DrawMap)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, vs.overlay.Draw)

	vs.ecs = ecs

	factory.CreateMap(ecs, m, source)
	camera := factory.CreateCamera(ecs, m.Home)

	saved, err := systems.LoadView()
	if err != nil {
		log.Printf("Warning: Could not restore camera view: %v", err)
	}
	systems.ApplySavedView(camera, saved, source)

	log.Printf("Viewing %s (%dx%d tiles), input mode %s", source, m.Width, m.Height, mode)
}

// loadMap returns the map to show, the source name it is saved under and
// whether it was read from disk. Embedded map names such as "maps/demo.tmx"
// are accepted when no such file exists.
func (vs *ViewerScene) loadMap() (*assets.Map, string, bool) {
	if path := vs.opts.MapPath; path != "" {
		if _, statErr := os.Stat(path); statErr != nil && assets.IsEmbeddedMap(path) {
			if m, err := assets.LoadMap(path); err == nil {
				return m, path, false
			}
		}
		m, err := assets.LoadMapFile(path)
		if err == nil {
			return m, path, true
		}
		log.Printf("Warning: Could not load map %s, using %s: %v", path, cfg.Map.DefaultMap, err)
	}

	m, err := assets.LoadMap(cfg.Map.DefaultMap)
	if err != nil {
		panic("failed to load default map: " + err.Error())
	}
	return m, cfg.Map.DefaultMap, false
}

func (vs *ViewerScene) startWatcher(e *ecs.ECS) {
	debounce := time.Duration(cfg.Map.ReloadDebounceMillis) * time.Millisecond
	watcher, err := assets.NewMapWatcher(vs.opts.MapPath, debounce)
	if err != nil {
		log.Printf("Warning: Could not watch %s: %v", vs.opts.MapPath, err)
		return
	}
	vs.watcher = watcher
	e.AddSystem(systems.NewUpdateMapReload(watcher, vs.opts.MapPath, assets.LoadMapFile))
}
