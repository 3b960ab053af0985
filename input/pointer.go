package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/features/math"
)

// PointerDevice is the subset of mouse state PointerSource reads.
type PointerDevice interface {
	Connected() bool
	CursorPosition() (x, y int)
	IsButtonPressed(b ebiten.MouseButton) bool
	IsButtonJustPressed(b ebiten.MouseButton) bool
	IsButtonJustReleased(b ebiten.MouseButton) bool
	Wheel() (x, y float64)
}

// PointerSource is the pointer-and-scroll variant: a mouse button drags,
// the wheel zooms.
type PointerSource struct {
	Device PointerDevice
	Button ebiten.MouseButton
}

// NewPointerSource returns a PointerSource reading the Ebitengine mouse.
func NewPointerSource(button ebiten.MouseButton) *PointerSource {
	return &PointerSource{Device: EbitenMouse{}, Button: button}
}

func (s *PointerSource) Channel() Channel {
	return ChannelPointer
}

func (s *PointerSource) Poll() (Frame, bool) {
	if s.Device == nil || !s.Device.Connected() {
		return Frame{}, false
	}

	x, y := s.Device.CursorPosition()
	f := Frame{
		Channel: ChannelPointer,
		Device:  MouseDevice,
		Pointer: math.Vec2{X: float64(x), Y: float64(y)},
	}

	// Press wins over held so a drag always starts on the press frame.
	switch {
	case s.Device.IsButtonJustPressed(s.Button):
		f.Drag = PhaseBegan
	case s.Device.IsButtonPressed(s.Button):
		f.Drag = PhaseMoved
	case s.Device.IsButtonJustReleased(s.Button):
		f.Drag = PhaseEnded
	}

	if _, wy := s.Device.Wheel(); wy != 0 {
		f.Zoom = ZoomSample{Gesture: ZoomScroll, Amount: wy}
	}
	return f, true
}

// EbitenMouse reads the mouse through ebiten and inpututil.
type EbitenMouse struct{}

// Connected reports true: Ebitengine always exposes a cursor, even on
// touch-only devices, so mode selection decides whether the mouse is used.
func (EbitenMouse) Connected() bool { return true }

func (EbitenMouse) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (EbitenMouse) IsButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (EbitenMouse) IsButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

func (EbitenMouse) IsButtonJustReleased(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(b)
}

func (EbitenMouse) Wheel() (float64, float64) { return ebiten.Wheel() }
