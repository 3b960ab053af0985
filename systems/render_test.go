package systems

import (
	"image/color"
	"strings"
	"testing"

	"github.com/automoto/orthocam/assets"
	"github.com/automoto/orthocam/components"
	cfg "github.com/automoto/orthocam/config"
	"github.com/automoto/orthocam/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestTileColor(t *testing.T) {
	palette := cfg.UI.TilePalette
	wrapped := uint32(len(palette) + 2)
	tests := []struct {
		name string
		tile assets.Tile
		want color.RGBA
	}{
		{"empty", assets.Tile{}, cfg.UI.BackgroundColor},
		{"kind wins over gid", assets.Tile{GID: 1, Kind: "water"}, cfg.UI.KindColors["water"]},
		{"unknown kind", assets.Tile{GID: 1, Kind: "lava"}, palette[0]},
		{"no kind", assets.Tile{GID: 1}, palette[0]},
		{"palette wraps", assets.Tile{GID: wrapped}, palette[1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tileColor(tt.tile); got != tt.want {
				t.Errorf("tileColor(%+v) = %v, want %v", tt.tile, got, tt.want)
			}
		})
	}
}

func TestHUDLines(t *testing.T) {
	camera := &components.CameraData{OrthographicSize: 7.5}
	camera.Position.X = 3
	ctrl := &components.CameraControllerData{MinZoom: 5, MaxZoom: 30}
	ctrl.Gestures[input.ChannelTouch].State = components.GestureDraggingFromUI

	lines := hudLines(camera, ctrl)
	if len(lines) != 2 {
		t.Fatalf("hudLines returned %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "size 7.50") {
		t.Errorf("line %q missing orthographic size", lines[0])
	}
	if !strings.Contains(lines[1], "mouse: idle") || !strings.Contains(lines[1], "touch: dragging (ui)") {
		t.Errorf("line %q missing gesture states", lines[1])
	}
}

func TestGetOrCreateSettings(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	settings := GetOrCreateSettings(e)
	if settings.Debug != cfg.Debug.Enabled {
		t.Errorf("Debug = %v, want config default %v", settings.Debug, cfg.Debug.Enabled)
	}

	settings.Debug = !settings.Debug
	if again := GetOrCreateSettings(e); again.Debug != settings.Debug {
		t.Error("GetOrCreateSettings created a second settings entity")
	}
}
