package systems

import (
	"cmp"
	"log"
	"math"
	"slices"

	"github.com/automoto/orthocam/assets"
	"github.com/automoto/orthocam/components"
	"github.com/automoto/orthocam/systems/factory"
	"github.com/automoto/orthocam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// MapReloader is a source of changed-file notifications for the loaded map.
type MapReloader interface {
	Poll() (string, bool)
	PollError() error
}

// NewUpdateMapReload returns a system that reloads the map file at path when
// the watcher reports a change. A failed reload keeps the current map.
func NewUpdateMapReload(watcher MapReloader, path string, load func(string) (*assets.Map, error)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		for err := watcher.PollError(); err != nil; err = watcher.PollError() {
			log.Printf("Warning: Could not watch map: %v", err)
		}

		changed := false
		for {
			if _, ok := watcher.Poll(); !ok {
				break
			}
			changed = true
		}
		if !changed {
			return
		}

		m, err := load(path)
		if err != nil {
			log.Printf("Warning: Could not reload map %s: %v", path, err)
			return
		}
		factory.ReplaceMap(e, m)
		log.Printf("Reloaded map %s (%dx%d)", path, m.Width, m.Height)
	}
}

// VisibleTiles returns the tiles whose culling cells overlap the camera's view
// on a screen of the given size, in draw order (layer, then row, then column).
// The result may include a margin of tiles just outside the view.
func VisibleTiles(e *ecs.ECS, screenW, screenH int) []assets.Tile {
	_, camera, ok := mainCamera(e)
	if !ok {
		return nil
	}
	mapEntry, ok := components.Map.First(e.World)
	if !ok {
		return nil
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	m := components.Map.Get(mapEntry).Map
	space := components.Space.Get(spaceEntry)
	if m == nil || space == nil {
		return nil
	}

	// Clip the view to the map so the query never leaves the space
	x, y, w, h := VisibleRect(camera, screenW, screenH)
	minX := math.Max(x, 0)
	minY := math.Max(y, 0)
	maxX := math.Min(x+w, float64(m.Width))
	maxY := math.Min(y+h, float64(m.Height))
	if minX >= maxX || minY >= maxY {
		return nil
	}

	// resolv treats the far edge as inclusive minus one unit, so pad by a tile
	view := resolv.NewObject(minX, minY, maxX-minX+1, maxY-minY+1, tags.ResolvView)
	space.Add(view)
	defer space.Remove(view)

	check := view.Check(0, 0, tags.ResolvTile)
	if check == nil {
		return nil
	}
	tiles := make([]assets.Tile, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if tile, ok := obj.Data.(assets.Tile); ok {
			tiles = append(tiles, tile)
		}
	}
	// resolv returns objects in cell order
	slices.SortFunc(tiles, func(a, b assets.Tile) int {
		return cmp.Or(cmp.Compare(a.Layer, b.Layer), cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
	return tiles
}
