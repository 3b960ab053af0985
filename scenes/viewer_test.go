package scenes

import (
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/automoto/orthocam/config"
)

const diskMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="8" tileheight="8" infinite="0">
 <tileset firstgid="1" name="t" tilewidth="8" tileheight="8" tilecount="1" columns="1">
  <image source="t.png" width="8" height="8"/>
 </tileset>
 <layer id="1" name="ground" width="2" height="2">
  <data encoding="csv">
1,1,
1,1
</data>
 </layer>
</map>
`

func TestViewerLoadMap(t *testing.T) {
	dir := t.TempDir()
	onDiskPath := filepath.Join(dir, "room.tmx")
	if err := os.WriteFile(onDiskPath, []byte(diskMap), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		path       string
		wantSource string
		wantDisk   bool
		wantWidth  int
	}{
		{"default", "", cfg.Map.DefaultMap, false, 48},
		{"embedded name", "maps/demo.tmx", "maps/demo.tmx", false, 48},
		{"file on disk", onDiskPath, onDiskPath, true, 2},
		{"missing file falls back", filepath.Join(dir, "gone.tmx"), cfg.Map.DefaultMap, false, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs := NewViewerScene(ViewerOptions{MapPath: tt.path})
			m, source, onDisk := vs.loadMap()
			if source != tt.wantSource {
				t.Errorf("source = %q, want %q", source, tt.wantSource)
			}
			if onDisk != tt.wantDisk {
				t.Errorf("onDisk = %v, want %v", onDisk, tt.wantDisk)
			}
			if m.Width != tt.wantWidth {
				t.Errorf("Width = %d, want %d", m.Width, tt.wantWidth)
			}
		})
	}
}
