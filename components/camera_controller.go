package components

import (
	"github.com/automoto/orthocam/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// GestureState is the drag state of one gesture channel
type GestureState int

const (
	GestureIdle           GestureState = iota
	GestureDragging                    // Began off UI, moves the camera
	GestureDraggingFromUI              // Began over UI, latched until release
)

func (s GestureState) String() string {
	switch s {
	case GestureDragging:
		return "dragging"
	case GestureDraggingFromUI:
		return "dragging (ui)"
	default:
		return "idle"
	}
}

// GestureData is the per-channel drag state machine
type GestureData struct {
	State       GestureState
	LastPointer math.Vec2 // Screen position at the previous sample
}

// CameraControllerData holds the pan/zoom tunables and gesture state
type CameraControllerData struct {
	ZoomSpeed float64
	MinZoom   float64
	MaxZoom   float64

	Gestures [input.ChannelCount]GestureData
}

var CameraController = donburi.NewComponentType[CameraControllerData]()
