package input

import (
	gomath "math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/features/math"
)

// TouchDevice is the subset of touch-surface state TouchSource reads.
type TouchDevice interface {
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (x, y int)
	PreviousTouchPosition(id ebiten.TouchID) (x, y int)
	IsTouchJustPressed(id ebiten.TouchID) bool
}

// TouchSource is the touch-surface variant: the first touch drags, two
// touches pinch.
type TouchSource struct {
	Device TouchDevice

	// Reusable slice for touch IDs to avoid allocations
	ids []ebiten.TouchID

	// Touch that drove the previous frame's drag
	primary  ebiten.TouchID
	tracking bool
}

// NewTouchSource returns a TouchSource reading Ebitengine touches.
func NewTouchSource() *TouchSource {
	return &TouchSource{Device: EbitenTouch{}}
}

func (s *TouchSource) Channel() Channel {
	return ChannelTouch
}

func (s *TouchSource) Poll() (Frame, bool) {
	if s.Device == nil {
		return Frame{}, false
	}
	s.ids = s.Device.AppendTouchIDs(s.ids[:0])
	if len(s.ids) == 0 {
		s.tracking = false
		return Frame{}, false
	}
	// Lowest ID is the oldest touch.
	slices.Sort(s.ids)

	first := s.ids[0]
	pos, delta := s.sample(first)
	f := Frame{
		Channel: ChannelTouch,
		Device:  DeviceID(first),
		Pointer: pos,
	}

	// A new primary touch (the old one lifted) begins a fresh drag so the
	// next delta is measured from this touch, not the one that left.
	switch {
	case !s.tracking || first != s.primary || s.Device.IsTouchJustPressed(first):
		f.Drag = PhaseBegan
	case delta.X != 0 || delta.Y != 0:
		f.Drag = PhaseMoved
	}
	s.primary = first
	s.tracking = true

	if len(s.ids) >= 2 {
		pos1, delta1 := s.sample(s.ids[1])
		prev0 := math.Vec2{X: pos.X - delta.X, Y: pos.Y - delta.Y}
		prev1 := math.Vec2{X: pos1.X - delta1.X, Y: pos1.Y - delta1.Y}
		f.Zoom = ZoomSample{
			Gesture: ZoomPinch,
			Amount:  distance(pos, pos1) - distance(prev0, prev1),
		}
	}
	return f, true
}

// sample returns a touch's position and its movement since the previous tick.
// A touch that began this tick has no previous position, so its delta is zero.
func (s *TouchSource) sample(id ebiten.TouchID) (pos, delta math.Vec2) {
	x, y := s.Device.TouchPosition(id)
	pos = math.Vec2{X: float64(x), Y: float64(y)}
	if s.Device.IsTouchJustPressed(id) {
		return pos, math.Vec2{}
	}
	px, py := s.Device.PreviousTouchPosition(id)
	delta = math.Vec2{X: float64(x - px), Y: float64(y - py)}
	return pos, delta
}

func distance(a, b math.Vec2) float64 {
	return gomath.Hypot(b.X-a.X, b.Y-a.Y)
}

// EbitenTouch reads touches through ebiten and inpututil.
type EbitenTouch struct{}

func (EbitenTouch) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (EbitenTouch) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (EbitenTouch) PreviousTouchPosition(id ebiten.TouchID) (int, int) {
	return inpututil.TouchPositionInPreviousTick(id)
}

func (EbitenTouch) IsTouchJustPressed(id ebiten.TouchID) bool {
	return inpututil.TouchPressDuration(id) == 1
}
