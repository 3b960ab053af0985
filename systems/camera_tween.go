package systems

import (
	"github.com/automoto/orthocam/components"
	cfg "github.com/automoto/orthocam/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// StartCameraHome animates the main camera back to the map's home view.
func StartCameraHome(e *ecs.ECS) {
	cameraEntry, _, ok := mainCamera(e)
	if !ok {
		return
	}
	ctrl := components.CameraController.Get(cameraEntry)

	target := homePosition(e)
	size := clamp(cfg.Camera.DefaultOrthographicSize, ctrl.MinZoom, ctrl.MaxZoom)
	StartCameraTween(cameraEntry, target, size, cfg.Camera.HomeTweenSeconds)
}

// StartCameraTween animates the camera to position and orthographic size over duration seconds.
// It replaces any tween already running.
func StartCameraTween(cameraEntry *donburi.Entry, position math.Vec2, size float64, duration float32) {
	camera := components.Camera.Get(cameraEntry)
	tween := &components.CameraTweenData{
		X:    gween.New(float32(camera.Position.X), float32(position.X), duration, ease.OutCubic),
		Y:    gween.New(float32(camera.Position.Y), float32(position.Y), duration, ease.OutCubic),
		Size: gween.New(float32(camera.OrthographicSize), float32(size), duration, ease.OutCubic),
	}

	if !cameraEntry.HasComponent(components.CameraTween) {
		cameraEntry.AddComponent(components.CameraTween)
	}
	components.CameraTween.Set(cameraEntry, tween)
}

// UpdateCameraTween advances an active camera tween by one tick.
func UpdateCameraTween(e *ecs.ECS) {
	advanceCameraTween(e, float32(1.0/float64(ebiten.TPS())))
}

func advanceCameraTween(e *ecs.ECS, dt float32) {
	cameraEntry, camera, ok := mainCamera(e)
	if !ok || !cameraEntry.HasComponent(components.CameraTween) {
		return
	}
	tween := components.CameraTween.Get(cameraEntry)

	x, doneX := tween.X.Update(dt)
	y, doneY := tween.Y.Update(dt)
	size, doneSize := tween.Size.Update(dt)
	camera.Position.X = float64(x)
	camera.Position.Y = float64(y)
	camera.OrthographicSize = float64(size)

	if doneX && doneY && doneSize {
		cameraEntry.RemoveComponent(components.CameraTween)
	}
}

// cancelCameraTween stops any running camera animation where it is
func cancelCameraTween(cameraEntry *donburi.Entry) {
	if cameraEntry.HasComponent(components.CameraTween) {
		cameraEntry.RemoveComponent(components.CameraTween)
	}
}

// homePosition is the loaded map's home view, or the world origin without a map
func homePosition(e *ecs.ECS) math.Vec2 {
	mapEntry, ok := components.Map.First(e.World)
	if !ok {
		return math.Vec2{}
	}
	data := components.Map.Get(mapEntry)
	if data.Map == nil {
		return math.Vec2{}
	}
	return data.Map.Home
}
