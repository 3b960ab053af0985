package assets

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

const smallMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="8" tileheight="8" infinite="0">
 <tileset firstgid="1" name="t" tilewidth="8" tileheight="8" tilecount="2" columns="2">
  <image source="t.png" width="16" height="8"/>
 </tileset>
 <layer id="1" name="ground" width="3" height="2">
  <data encoding="csv">
1,0,2,
0,2,1
</data>
 </layer>
</map>
`

func TestLoadEmbeddedDemoMap(t *testing.T) {
	m, err := LoadMap("maps/demo.tmx")
	if err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}
	if m.Width != 48 || m.Height != 32 {
		t.Errorf("size = %dx%d, want 48x32", m.Width, m.Height)
	}
	if m.TileWidth != 16 || m.TileHeight != 16 {
		t.Errorf("tile size = %dx%d, want 16x16", m.TileWidth, m.TileHeight)
	}
	if len(m.Tiles) != m.Width*m.Height {
		t.Errorf("len(Tiles) = %d, want %d", len(m.Tiles), m.Width*m.Height)
	}
	kinds := map[string]bool{}
	for _, tile := range m.Tiles {
		kinds[tile.Kind] = true
	}
	for _, kind := range []string{"grass", "water", "dirt", "stone", "sand"} {
		if !kinds[kind] {
			t.Errorf("no %q tiles; tileset kind property not read", kind)
		}
	}
	// home object sits at pixel (384, 256) on a 16px grid
	if m.Home.X != 24 || m.Home.Y != 16 {
		t.Errorf("Home = %v, want (24, 16)", m.Home)
	}
}

func TestLoadMapFileSkipsEmptyTiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.tmx")
	if err := os.WriteFile(path, []byte(smallMap), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadMapFile(path)
	if err != nil {
		t.Fatalf("LoadMapFile() error = %v", err)
	}
	want := []Tile{
		{X: 0, Y: 0, GID: 1},
		{X: 2, Y: 0, GID: 2},
		{X: 1, Y: 1, GID: 2},
		{X: 2, Y: 1, GID: 1},
	}
	if !slices.Equal(m.Tiles, want) {
		t.Errorf("Tiles = %+v, want %+v", m.Tiles, want)
	}
	if c := m.Center(); c.X != 1.5 || c.Y != 1 {
		t.Errorf("Center() = %v, want (1.5, 1)", c)
	}
	if m.Home != m.Center() {
		t.Errorf("Home = %v, want map centre without a home object", m.Home)
	}
}

const layeredMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="8" tileheight="8" infinite="0">
 <tileset firstgid="1" name="t" tilewidth="8" tileheight="8" tilecount="2" columns="2">
  <image source="t.png" width="16" height="8"/>
 </tileset>
 <layer id="1" name="ground" width="2" height="1">
  <data encoding="csv">
1,1
</data>
 </layer>
 <layer id="2" name="decor" width="2" height="1">
  <data encoding="csv">
0,2
</data>
 </layer>
</map>
`

func TestLoadMapFileLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layered.tmx")
	if err := os.WriteFile(path, []byte(layeredMap), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadMapFile(path)
	if err != nil {
		t.Fatalf("LoadMapFile() error = %v", err)
	}
	want := []Tile{
		{X: 0, Y: 0, Layer: 0, GID: 1},
		{X: 1, Y: 0, Layer: 0, GID: 1},
		{X: 1, Y: 0, Layer: 1, GID: 2},
	}
	if !slices.Equal(m.Tiles, want) {
		t.Errorf("Tiles = %+v, want %+v", m.Tiles, want)
	}
}

func TestIsEmbeddedMap(t *testing.T) {
	if !IsEmbeddedMap("maps/demo.tmx") {
		t.Error("IsEmbeddedMap(maps/demo.tmx) = false")
	}
	if IsEmbeddedMap("levels/demo.tmx") {
		t.Error("IsEmbeddedMap(levels/demo.tmx) = true for a path not in the binary")
	}
}

func TestLoadMapFileMissing(t *testing.T) {
	if _, err := LoadMapFile(filepath.Join(t.TempDir(), "nope.tmx")); err == nil {
		t.Error("LoadMapFile() on a missing file should fail")
	}
}

func TestEmbeddedMaps(t *testing.T) {
	names, err := EmbeddedMaps()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(names, "maps/demo.tmx") {
		t.Errorf("EmbeddedMaps() = %v, want maps/demo.tmx listed", names)
	}
}

func TestIsMapFile(t *testing.T) {
	tests := map[string]bool{
		"level.tmx":     true,
		"TERRAIN.TSX":   true,
		"terrain.png":   false,
		"notes.tmx.bak": false,
	}
	for name, want := range tests {
		if got := isMapFile(name); got != want {
			t.Errorf("isMapFile(%q) = %v, want %v", name, got, want)
		}
	}
}
