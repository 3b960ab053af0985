package factory

import (
	"math"

	"github.com/automoto/orthocam/archetypes"
	"github.com/automoto/orthocam/components"
	cfg "github.com/automoto/orthocam/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the main camera centred on position with the configured tunables.
func CreateCamera(ecs *ecs.ECS, position dmath.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	size := math.Max(cfg.Camera.MinZoom, math.Min(cfg.Camera.DefaultOrthographicSize, cfg.Camera.MaxZoom))
	cameraData := components.CameraData{
		Position:         position,
		OrthographicSize: size,
	}
	components.Camera.Set(camera, &cameraData)
	components.CameraController.Set(camera, &components.CameraControllerData{
		ZoomSpeed: cfg.Camera.ZoomSpeed,
		MinZoom:   cfg.Camera.MinZoom,
		MaxZoom:   cfg.Camera.MaxZoom,
	})
	components.ViewState.Set(camera, &components.ViewStateData{
		LastSaved: cameraData,
	})
	return camera
}
