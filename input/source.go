// Package input turns platform input devices into per-frame camera gesture
// samples. Each device family is a Source variant; the camera controller is
// written once against Frame and never branches on the platform.
package input

import (
	"github.com/yohamta/donburi/features/math"
)

// DeviceID identifies the pointer a sample came from. Touches use their
// ebiten.TouchID; the mouse uses MouseDevice.
type DeviceID int

// MouseDevice is the DeviceID reported for the mouse pointer.
const MouseDevice DeviceID = -1

// Channel identifies an independent gesture state machine. Every Source owns
// exactly one channel so mouse and touch gestures never share drag state.
type Channel int

const (
	ChannelPointer Channel = iota
	ChannelTouch
	ChannelCount // Must be last - used for array sizing
)

// Phase is the drag phase of the primary pointer in one frame.
type Phase int

const (
	PhaseNone  Phase = iota // No press, or held without movement (touch)
	PhaseBegan              // Pressed this frame
	PhaseMoved              // Held (mouse) or moved (touch) this frame
	PhaseEnded              // Released this frame
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseMoved:
		return "moved"
	case PhaseEnded:
		return "ended"
	default:
		return "none"
	}
}

// ZoomGesture tells the controller how to interpret ZoomSample.Amount.
type ZoomGesture int

const (
	ZoomNone   ZoomGesture = iota
	ZoomScroll             // Amount is the raw vertical wheel delta
	ZoomPinch              // Amount is the change in inter-touch distance, in pixels
)

// ZoomSample is the zoom intent of one frame.
type ZoomSample struct {
	Gesture ZoomGesture
	Amount  float64
}

// Frame is everything the camera controller needs from one device in one frame.
type Frame struct {
	Channel Channel
	Device  DeviceID
	Pointer math.Vec2 // Primary pointer position in screen pixels
	Drag    Phase
	Zoom    ZoomSample
}

// Source is a platform input device that can drive the camera.
type Source interface {
	// Channel returns the gesture channel this source feeds.
	Channel() Channel
	// Poll samples the device. It returns false when the device is absent,
	// in which case the frame is skipped.
	Poll() (Frame, bool)
}
