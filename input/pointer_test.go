package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeMouse struct {
	absent       bool
	x, y         int
	pressed      bool
	justPressed  bool
	justReleased bool
	wheelY       float64
}

func (m *fakeMouse) Connected() bool            { return !m.absent }
func (m *fakeMouse) CursorPosition() (int, int) { return m.x, m.y }
func (m *fakeMouse) Wheel() (float64, float64)  { return 0, m.wheelY }
func (m *fakeMouse) IsButtonPressed(ebiten.MouseButton) bool {
	return m.pressed
}
func (m *fakeMouse) IsButtonJustPressed(ebiten.MouseButton) bool {
	return m.justPressed
}
func (m *fakeMouse) IsButtonJustReleased(ebiten.MouseButton) bool {
	return m.justReleased
}

func TestPointerSourcePhases(t *testing.T) {
	tests := []struct {
		name  string
		mouse fakeMouse
		want  Phase
	}{
		{"idle", fakeMouse{}, PhaseNone},
		{"press", fakeMouse{pressed: true, justPressed: true}, PhaseBegan},
		{"held", fakeMouse{pressed: true}, PhaseMoved},
		{"release", fakeMouse{justReleased: true}, PhaseEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mouse := tt.mouse
			src := &PointerSource{Device: &mouse, Button: ebiten.MouseButtonLeft}
			f, ok := src.Poll()
			if !ok {
				t.Fatal("Poll() reported absent device")
			}
			if f.Drag != tt.want {
				t.Errorf("Drag = %v, want %v", f.Drag, tt.want)
			}
			if f.Device != MouseDevice {
				t.Errorf("Device = %d, want MouseDevice", f.Device)
			}
			if f.Channel != ChannelPointer {
				t.Errorf("Channel = %d, want ChannelPointer", f.Channel)
			}
		})
	}
}

func TestPointerSourcePositionAndScroll(t *testing.T) {
	mouse := &fakeMouse{x: 120, y: 45, wheelY: -1.5}
	src := &PointerSource{Device: mouse, Button: ebiten.MouseButtonLeft}

	f, _ := src.Poll()
	if f.Pointer.X != 120 || f.Pointer.Y != 45 {
		t.Errorf("Pointer = %v, want (120, 45)", f.Pointer)
	}
	if f.Zoom.Gesture != ZoomScroll || f.Zoom.Amount != -1.5 {
		t.Errorf("Zoom = %+v, want scroll -1.5", f.Zoom)
	}

	mouse.wheelY = 0
	f, _ = src.Poll()
	if f.Zoom.Gesture != ZoomNone {
		t.Errorf("Zoom.Gesture = %v without wheel movement, want ZoomNone", f.Zoom.Gesture)
	}
}

func TestPointerSourceAbsent(t *testing.T) {
	src := &PointerSource{Device: &fakeMouse{absent: true}}
	if _, ok := src.Poll(); ok {
		t.Error("Poll() on a disconnected mouse should report absent")
	}

	src = &PointerSource{}
	if _, ok := src.Poll(); ok {
		t.Error("Poll() without a device should report absent")
	}
}
