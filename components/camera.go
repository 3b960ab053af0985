package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the camera transform and zoom field. Position is the world
// point at the centre of the screen; OrthographicSize is half the visible
// world height.
type CameraData struct {
	Position         math.Vec2
	OrthographicSize float64
}

var Camera = donburi.NewComponentType[CameraData]()

// CameraTweenData holds the tweens animating the camera towards a target view
type CameraTweenData struct {
	X    *gween.Tween
	Y    *gween.Tween
	Size *gween.Tween
}

var CameraTween = donburi.NewComponentType[CameraTweenData]()
