package factory

import (
	"github.com/automoto/orthocam/archetypes"
	"github.com/automoto/orthocam/assets"
	"github.com/automoto/orthocam/components"
	cfg "github.com/automoto/orthocam/config"
	"github.com/automoto/orthocam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMap spawns the map entry and the resolv space used to cull its tiles.
func CreateMap(ecs *ecs.ECS, m *assets.Map, source string) *donburi.Entry {
	mapEntry := archetypes.Map.Spawn(ecs)
	components.Map.Set(mapEntry, &components.MapData{Map: m, Source: source})

	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, NewTileSpace(m))
	return mapEntry
}

// ReplaceMap swaps in a reloaded map and rebuilds its culling space.
func ReplaceMap(ecs *ecs.ECS, m *assets.Map) {
	mapEntry, ok := components.Map.First(ecs.World)
	if !ok {
		CreateMap(ecs, m, m.Name)
		return
	}
	components.Map.Get(mapEntry).Map = m

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Set(spaceEntry, NewTileSpace(m))
	}
}

// NewTileSpace builds a resolv space with one object per tile. Tiles are one
// world unit square; object Data holds the assets.Tile.
func NewTileSpace(m *assets.Map) *resolv.Space {
	cell := cfg.Map.CullCellSize
	if cell <= 0 {
		cell = 1
	}
	// Round up so tiles on a partial last row/column still land in a cell
	width := (m.Width + cell - 1) / cell * cell
	height := (m.Height + cell - 1) / cell * cell

	space := resolv.NewSpace(width, height, cell, cell)
	for _, tile := range m.Tiles {
		obj := resolv.NewObject(float64(tile.X), float64(tile.Y), 1, 1, tags.ResolvTile)
		obj.Data = tile
		space.Add(obj)
	}
	return space
}
