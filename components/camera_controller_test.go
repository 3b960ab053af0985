package components

import "testing"

func TestGestureStateString(t *testing.T) {
	tests := map[GestureState]string{
		GestureIdle:           "idle",
		GestureDragging:       "dragging",
		GestureDraggingFromUI: "dragging (ui)",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("GestureState(%d).String() = %q, want %q", int(state), got, want)
		}
	}
}
