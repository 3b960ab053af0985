package systems

import (
	"testing"

	"github.com/automoto/orthocam/assets"
	"github.com/automoto/orthocam/components"
	cfg "github.com/automoto/orthocam/config"
	"github.com/automoto/orthocam/input"
	"github.com/automoto/orthocam/systems/factory"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestCameraHomeReachesTarget(t *testing.T) {
	e, cameraEntry := newCameraWorld(t)
	factory.CreateMap(e, &assets.Map{Name: "test", Width: 8, Height: 8, Home: dmath.Vec2{X: 4, Y: 2}}, "test")

	camera := components.Camera.Get(cameraEntry)
	camera.Position = dmath.Vec2{X: 30, Y: -10}
	camera.OrthographicSize = 25

	StartCameraHome(e)
	if !cameraEntry.HasComponent(components.CameraTween) {
		t.Fatal("StartCameraHome did not add a tween")
	}

	advanceCameraTween(e, cfg.Camera.HomeTweenSeconds/4)
	if camera.Position.X >= 30 || camera.Position.X <= 4 {
		t.Errorf("Position.X = %v mid-tween, want between 4 and 30", camera.Position.X)
	}

	advanceCameraTween(e, cfg.Camera.HomeTweenSeconds)
	if !near(camera.Position.X, 4) || !near(camera.Position.Y, 2) {
		t.Errorf("Position = %v, want (4, 2)", camera.Position)
	}
	if !near(camera.OrthographicSize, cfg.Camera.DefaultOrthographicSize) {
		t.Errorf("size = %v, want %v", camera.OrthographicSize, cfg.Camera.DefaultOrthographicSize)
	}
	if cameraEntry.HasComponent(components.CameraTween) {
		t.Error("tween still attached after finishing")
	}
}

func TestCameraHomeWithoutMapUsesOrigin(t *testing.T) {
	e, cameraEntry := newCameraWorld(t)
	camera := components.Camera.Get(cameraEntry)
	camera.Position = dmath.Vec2{X: 5, Y: 5}

	StartCameraHome(e)
	advanceCameraTween(e, cfg.Camera.HomeTweenSeconds*2)

	if camera.Position != (dmath.Vec2{}) {
		t.Errorf("Position = %v, want origin", camera.Position)
	}
}

func TestInputCancelsCameraTween(t *testing.T) {
	e, cameraEntry := newCameraWorld(t)
	components.Camera.Get(cameraEntry).Position = dmath.Vec2{X: 10, Y: 10}
	StartCameraHome(e)

	step(e, nil, pointerFrame(input.PhaseBegan, 0, 0))
	if !cameraEntry.HasComponent(components.CameraTween) {
		t.Fatal("a press alone should not cancel the tween")
	}
	step(e, nil, pointerFrame(input.PhaseMoved, 5, 0))
	if cameraEntry.HasComponent(components.CameraTween) {
		t.Error("drag did not cancel the tween")
	}
}

func TestZoomByCancelsCameraTween(t *testing.T) {
	e, cameraEntry := newCameraWorld(t)
	StartCameraHome(e)
	ZoomBy(e, 1)
	if cameraEntry.HasComponent(components.CameraTween) {
		t.Error("ZoomBy did not cancel the tween")
	}
}

func TestUpdateCameraTweenWithoutTween(t *testing.T) {
	e, cameraEntry := newCameraWorld(t)
	before := *components.Camera.Get(cameraEntry)
	UpdateCameraTween(e)
	if *components.Camera.Get(cameraEntry) != before {
		t.Error("camera changed without an active tween")
	}
}

func TestRestingPinchKeepsCameraTween(t *testing.T) {
	e, cameraEntry := newCameraWorld(t)
	components.Camera.Get(cameraEntry).Position = dmath.Vec2{X: 10, Y: 10}
	StartCameraHome(e)

	// Two fingers resting, or one just landed: zero distance change
	f := touchFrame(input.PhaseNone, 0, 0)
	f.Zoom = input.ZoomSample{Gesture: input.ZoomPinch, Amount: 0}
	step(e, nil, f)
	if !cameraEntry.HasComponent(components.CameraTween) {
		t.Error("a zero pinch cancelled the tween")
	}

	// Scrolling against the zoom limit changes nothing either
	components.Camera.Get(cameraEntry).OrthographicSize = cfg.Camera.MinZoom
	f = pointerFrame(input.PhaseNone, 0, 0)
	f.Zoom = input.ZoomSample{Gesture: input.ZoomScroll, Amount: 1}
	step(e, nil, f)
	if !cameraEntry.HasComponent(components.CameraTween) {
		t.Error("a clamped scroll cancelled the tween")
	}

	f.Zoom.Amount = -1
	step(e, nil, f)
	if cameraEntry.HasComponent(components.CameraTween) {
		t.Error("a real zoom did not cancel the tween")
	}
}
