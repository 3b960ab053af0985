package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

var (
	//go:embed all:maps
	mapFS embed.FS
)

// Tile is one non-empty map cell. X and Y are in tiles.
type Tile struct {
	X, Y  int
	Layer int // Index of the tile layer; higher layers draw on top
	GID   uint32
	Kind  string // "kind" property from the tileset, if any
}

// Map is a loaded tile map in world units, where one tile is one unit.
type Map struct {
	Name       string
	Width      int // in tiles
	Height     int // in tiles
	TileWidth  int // in pixels, as authored
	TileHeight int
	Tiles      []Tile
	Home       math.Vec2 // Home view centre in world units
}

// Center returns the world-space centre of the map.
func (m *Map) Center() math.Vec2 {
	return math.Vec2{X: float64(m.Width) / 2, Y: float64(m.Height) / 2}
}

// LoadMap loads an embedded map, e.g. "maps/demo.tmx".
func LoadMap(name string) (*Map, error) {
	return loadMap(mapFS, name)
}

// LoadMapFile loads a map from disk. Tilesets are resolved relative to the map's directory.
func LoadMapFile(path string) (*Map, error) {
	return loadMap(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// EmbeddedMaps lists the embedded .tmx files.
func EmbeddedMaps() ([]string, error) {
	entries, err := mapFS.ReadDir("maps")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			names = append(names, "maps/"+entry.Name())
		}
	}
	return names, nil
}

// IsEmbeddedMap reports whether name is one of EmbeddedMaps.
func IsEmbeddedMap(name string) bool {
	names, err := EmbeddedMaps()
	if err != nil {
		return false
	}
	return slices.Contains(names, name)
}

func loadMap(fsys fs.FS, name string) (*Map, error) {
	levelMap, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("assets: load map %s: %w", name, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("assets: map %s has no tile size", name)
	}

	m := &Map{
		Name:       name,
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}
	m.Home = m.Center()

	// Tiles from every tile layer, tagged with the layer index for draw order
	for layerIndex, layer := range levelMap.Layers {
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tileIndex := y*levelMap.Width + x
				if tileIndex >= len(layer.Tiles) {
					continue
				}
				tile := layer.Tiles[tileIndex]
				if tile == nil || tile.IsNil() {
					continue
				}

				var kind string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					kind = tilesetTile.Properties.GetString("kind")
				}

				m.Tiles = append(m.Tiles, Tile{
					X:     x,
					Y:     y,
					Layer: layerIndex,
					GID:   tile.Tileset.FirstGID + tile.ID,
					Kind:  kind,
				})
			}
		}
	}

	// Optional home view from a "home" object in the Camera object group
	for _, og := range levelMap.ObjectGroups {
		if og.Name != "Camera" {
			continue
		}
		for _, o := range og.Objects {
			if o.Name == "home" {
				m.Home = math.Vec2{
					X: o.X / float64(levelMap.TileWidth),
					Y: o.Y / float64(levelMap.TileHeight),
				}
			}
		}
	}

	return m, nil
}
