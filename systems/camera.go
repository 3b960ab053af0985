package systems

import (
	"math"

	"github.com/automoto/orthocam/components"
	cfg "github.com/automoto/orthocam/config"
	"github.com/automoto/orthocam/input"
	"github.com/automoto/orthocam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UIGuard reports whether a pointer currently overlaps a UI element.
type UIGuard interface {
	PointerOverUI(device input.DeviceID, screen dmath.Vec2) bool
}

// NewUpdateCameraController returns the pan/zoom system guarded by guard.
// A nil guard means there is no UI, so nothing is ever over it.
func NewUpdateCameraController(guard UIGuard) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		UpdateCameraController(e, guard)
	}
}

// UpdateCameraController applies this frame's input samples to the main camera.
// Must run AFTER the input and UI systems.
func UpdateCameraController(e *ecs.ECS, guard UIGuard) {
	cameraEntry, ok := tags.MainCamera.First(e.World)
	if !ok {
		return // no camera yet
	}
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	ctrl := components.CameraController.Get(cameraEntry)
	frames := components.Input.Get(inputEntry).Frames

	for i := range frames {
		f := &frames[i]
		moved := handleDrag(camera, ctrl, f, guard)
		zoomed := handleZoom(camera, ctrl, f, guard)

		// Direct input wins over an in-flight home animation
		if moved || zoomed {
			cancelCameraTween(cameraEntry)
		}
	}
}

// handleDrag advances the frame's gesture channel and pans the camera.
// Returns true if the camera moved.
func handleDrag(camera *components.CameraData, ctrl *components.CameraControllerData, f *input.Frame, guard UIGuard) bool {
	if f.Channel < 0 || f.Channel >= input.ChannelCount {
		return false
	}
	g := &ctrl.Gestures[f.Channel]

	switch f.Drag {
	case input.PhaseBegan:
		// The UI check is latched here; leaving the UI mid-drag does not start panning.
		g.State = components.GestureDragging
		if pointerOverUI(guard, f) {
			g.State = components.GestureDraggingFromUI
		}
		g.LastPointer = f.Pointer
	case input.PhaseMoved:
		if g.State != components.GestureDragging {
			return false
		}
		dx := f.Pointer.X - g.LastPointer.X
		dy := f.Pointer.Y - g.LastPointer.Y
		g.LastPointer = f.Pointer

		// Dragging the scene right moves the camera left
		units := WorldUnitsPerPixel(camera)
		camera.Position.X -= dx * units
		camera.Position.Y -= dy * units
		return dx != 0 || dy != 0
	case input.PhaseEnded:
		g.State = components.GestureIdle
	}
	return false
}

// handleZoom applies scroll or pinch zoom. Returns true if the size changed.
func handleZoom(camera *components.CameraData, ctrl *components.CameraControllerData, f *input.Frame, guard UIGuard) bool {
	before := camera.OrthographicSize
	switch f.Zoom.Gesture {
	case input.ZoomScroll:
		if pointerOverUI(guard, f) {
			return false
		}
		if math.Abs(f.Zoom.Amount) <= cfg.Camera.ScrollThreshold {
			return false
		}
		AdjustZoom(camera, ctrl, f.Zoom.Amount)
	case input.ZoomPinch:
		// Pinch skips the UI check.
		AdjustZoom(camera, ctrl, f.Zoom.Amount*ctrl.ZoomSpeed)
	}
	return camera.OrthographicSize != before
}

func pointerOverUI(guard UIGuard, f *input.Frame) bool {
	if guard == nil {
		return false
	}
	return guard.PointerOverUI(f.Device, f.Pointer)
}

// AdjustZoom shrinks the orthographic size by increment, clamped to the controller's range.
// Positive increments zoom in.
func AdjustZoom(camera *components.CameraData, ctrl *components.CameraControllerData, increment float64) {
	camera.OrthographicSize = clamp(camera.OrthographicSize-increment, ctrl.MinZoom, ctrl.MaxZoom)
}

// ZoomBy adjusts the main camera's zoom by increment and cancels any home animation.
func ZoomBy(e *ecs.ECS, increment float64) {
	cameraEntry, ok := tags.MainCamera.First(e.World)
	if !ok {
		return
	}
	AdjustZoom(components.Camera.Get(cameraEntry), components.CameraController.Get(cameraEntry), increment)
	cancelCameraTween(cameraEntry)
}

// WorldUnitsPerPixel is how far one screen pixel spans in world units at the camera's zoom.
func WorldUnitsPerPixel(camera *components.CameraData) float64 {
	if cfg.C.Height <= 0 {
		return 0
	}
	return camera.OrthographicSize * 2 / float64(cfg.C.Height)
}

// WorldToScreen converts a world point to screen pixels for a screen of the given size.
func WorldToScreen(camera *components.CameraData, world dmath.Vec2, screenW, screenH int) dmath.Vec2 {
	ppu := pixelsPerUnit(camera, screenH)
	return dmath.Vec2{
		X: (world.X-camera.Position.X)*ppu + float64(screenW)/2,
		Y: (world.Y-camera.Position.Y)*ppu + float64(screenH)/2,
	}
}

// ScreenToWorld converts screen pixels to a world point for a screen of the given size.
func ScreenToWorld(camera *components.CameraData, screen dmath.Vec2, screenW, screenH int) dmath.Vec2 {
	ppu := pixelsPerUnit(camera, screenH)
	if ppu == 0 {
		return camera.Position
	}
	return dmath.Vec2{
		X: (screen.X-float64(screenW)/2)/ppu + camera.Position.X,
		Y: (screen.Y-float64(screenH)/2)/ppu + camera.Position.Y,
	}
}

// VisibleRect returns the world-space rectangle the camera shows on a screen of the given size.
func VisibleRect(camera *components.CameraData, screenW, screenH int) (x, y, w, h float64) {
	h = camera.OrthographicSize * 2
	if screenH > 0 {
		w = h * float64(screenW) / float64(screenH)
	}
	return camera.Position.X - w/2, camera.Position.Y - h/2, w, h
}

func pixelsPerUnit(camera *components.CameraData, screenH int) float64 {
	if camera.OrthographicSize <= 0 {
		return 0
	}
	return float64(screenH) / (camera.OrthographicSize * 2)
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// mainCamera returns the camera entry and its data, if present
func mainCamera(e *ecs.ECS) (*donburi.Entry, *components.CameraData, bool) {
	cameraEntry, ok := tags.MainCamera.First(e.World)
	if !ok {
		return nil, nil, false
	}
	return cameraEntry, components.Camera.Get(cameraEntry), true
}
