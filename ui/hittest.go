package ui

import (
	"image"

	dmath "github.com/yohamta/donburi/features/math"
)

// hitTest reports whether pos lies inside any of rects
func hitTest(pos dmath.Vec2, rects ...image.Rectangle) bool {
	pt := image.Pt(int(pos.X), int(pos.Y))
	for _, r := range rects {
		if pt.In(r) {
			return true
		}
	}
	return false
}
