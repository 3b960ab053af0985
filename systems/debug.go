package systems

import (
	"fmt"

	"github.com/automoto/orthocam/components"
	cfg "github.com/automoto/orthocam/config"
	"github.com/automoto/orthocam/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face faces come from freetype
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the map bounds and reports how many tiles survived culling.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	_, camera, ok := mainCamera(e)
	if !ok {
		return // No camera yet
	}
	mapEntry, ok := components.Map.First(e.World)
	if !ok {
		return
	}
	m := components.Map.Get(mapEntry).Map
	if m == nil {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	x, y, w, h := mapBoundsOnScreen(camera, m.Width, m.Height, width, height)
	c := cfg.UI.DebugViewColor
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right

	if !fonts.Loaded(fonts.Debug) {
		return
	}
	visible := len(VisibleTiles(e, width, height))
	msg := fmt.Sprintf("tiles drawn %d / %d  tps %.0f", visible, len(m.Tiles), ebiten.ActualTPS())
	text.Draw(screen, msg, fonts.Debug.Get(), cfg.UI.HUDMargin, cfg.UI.HUDMargin+cfg.UI.HUDLineHeight, cfg.UI.DebugCulledColor)
}
