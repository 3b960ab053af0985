package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/orthocam/components"
	cfg "github.com/automoto/orthocam/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const viewItemKey = "view"

// SavedView represents the camera view stored on disk
type SavedView struct {
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
	OrthographicSize float64 `json:"orthographicSize"`
	Map              string  `json:"map"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for view storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "orthocam",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadView loads the last saved camera view. It returns nil without error when
// persistence is unavailable or nothing was saved yet.
func LoadView() (*SavedView, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(viewItemKey)
	if err != nil {
		log.Printf("Warning: Could not load camera view: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decodeView(data)
}

// SaveView saves a camera view to disk
func SaveView(v *SavedView) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize camera view: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(viewItemKey, data); err != nil {
		log.Printf("Warning: Could not save camera view: %v", err)
		return err
	}
	return nil
}

func decodeView(data []byte) (*SavedView, error) {
	var v SavedView
	if err := json.Unmarshal(data, &v); err != nil {
		log.Printf("Warning: Could not parse saved camera view: %v", err)
		return nil, err
	}
	return &v, nil
}

// ApplySavedView restores a saved view onto the camera entry. Views saved for a
// different map are ignored; the size is clamped to the controller's range.
func ApplySavedView(cameraEntry *donburi.Entry, saved *SavedView, mapSource string) bool {
	if saved == nil || saved.Map != mapSource {
		return false
	}
	camera := components.Camera.Get(cameraEntry)
	ctrl := components.CameraController.Get(cameraEntry)

	camera.Position.X = saved.X
	camera.Position.Y = saved.Y
	camera.OrthographicSize = clamp(saved.OrthographicSize, ctrl.MinZoom, ctrl.MaxZoom)

	if cameraEntry.HasComponent(components.ViewState) {
		components.ViewState.Get(cameraEntry).LastSaved = *camera
	}
	return true
}

// UpdatePersistence saves the camera view when it has changed, at most once
// every cfg.Camera.SaveIntervalFrames frames.
func UpdatePersistence(e *ecs.ECS) {
	cameraEntry, camera, ok := mainCamera(e)
	if !ok || !cameraEntry.HasComponent(components.ViewState) {
		return
	}
	state := components.ViewState.Get(cameraEntry)
	state.FramesSinceSave++

	if state.FramesSinceSave < cfg.Camera.SaveIntervalFrames || state.LastSaved == *camera {
		return
	}

	_ = SaveView(&SavedView{
		X:                camera.Position.X,
		Y:                camera.Position.Y,
		OrthographicSize: camera.OrthographicSize,
		Map:              currentMapSource(e),
	})
	state.LastSaved = *camera
	state.FramesSinceSave = 0
}

func currentMapSource(e *ecs.ECS) string {
	mapEntry, ok := components.Map.First(e.World)
	if !ok {
		return ""
	}
	return components.Map.Get(mapEntry).Source
}
