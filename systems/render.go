package systems

import (
	"image/color"
	"math"

	"github.com/automoto/orthocam/assets"
	"github.com/automoto/orthocam/components"
	cfg "github.com/automoto/orthocam/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// DrawMap renders the tiles visible through the main camera.
func DrawMap(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	_, camera, ok := mainCamera(e)
	if !ok {
		return // No camera yet
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	ppu := pixelsPerUnit(camera, height)
	// Round up so neighbouring tiles never leave hairline gaps
	size := float32(math.Ceil(ppu))

	for _, tile := range VisibleTiles(e, width, height) {
		pos := WorldToScreen(camera, dmath.Vec2{X: float64(tile.X), Y: float64(tile.Y)}, width, height)
		vector.FillRect(screen, float32(pos.X), float32(pos.Y), size, size, tileColor(tile), false)
	}
}

// tileColor picks a colour by tile kind, falling back to a GID palette
func tileColor(tile assets.Tile) color.RGBA {
	if c, ok := cfg.UI.KindColors[tile.Kind]; ok {
		return c
	}
	palette := cfg.UI.TilePalette
	if tile.GID == 0 || len(palette) == 0 {
		return cfg.UI.BackgroundColor
	}
	return palette[int(tile.GID-1)%len(palette)]
}

// mapBoundsOnScreen returns the map rectangle in screen pixels
func mapBoundsOnScreen(camera *components.CameraData, w, h, screenW, screenH int) (x, y, bw, bh float32) {
	topLeft := WorldToScreen(camera, dmath.Vec2{}, screenW, screenH)
	bottomRight := WorldToScreen(camera, dmath.Vec2{X: float64(w), Y: float64(h)}, screenW, screenH)
	return float32(topLeft.X), float32(topLeft.Y),
		float32(bottomRight.X - topLeft.X), float32(bottomRight.Y - topLeft.Y)
}
