package config

import "image/color"

// Config holds general viewer configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// CameraConfig contains camera controller tunables and camera defaults
type CameraConfig struct {
	ZoomSpeed               float64 // Multiplier applied to pinch distance change
	MinZoom                 float64 // Smallest allowed orthographic size (most zoomed in)
	MaxZoom                 float64 // Largest allowed orthographic size (most zoomed out)
	ScrollThreshold         float64 // Wheel deltas at or below this magnitude are ignored
	DefaultOrthographicSize float64 // Orthographic size of the home view
	ButtonZoomStep          float64 // Zoom increment applied by the overlay +/- buttons
	HomeTweenSeconds        float32 // Duration of the animated return to the home view
	SaveIntervalFrames      int     // Minimum frames between persisted view saves
}

// MapConfig contains map loading and culling configuration
type MapConfig struct {
	DefaultMap           string // Embedded map shown when no -map flag is given
	CullCellSize         int    // resolv cell size in world units (tiles)
	ReloadDebounceMillis int
}

// UIConfig contains overlay and HUD configuration
type UIConfig struct {
	PanelColor       color.RGBA
	ButtonIdleColor  color.RGBA
	ButtonHoverColor color.RGBA
	ButtonPressColor color.RGBA
	ButtonTextColor  color.RGBA
	LabelColor       color.RGBA
	PanelPadding     int
	PanelSpacing     int
	ButtonMinWidth   int
	ButtonMinHeight  int
	FontSize         float64
	HUDFontSize      float64
	HUDMargin        int
	HUDLineHeight    int
	HUDTextColor     color.RGBA
	BackgroundColor  color.RGBA
	KindColors       map[string]color.RGBA // By tileset "kind" property
	TilePalette      []color.RGBA          // Fallback, indexed by (gid-1) % len
	DebugViewColor   color.RGBA
	DebugCulledColor color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled bool // Draw the culling and gesture overlay
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Map MapConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "orthocam",
	}

	// Camera Config
	Camera = CameraConfig{
		ZoomSpeed:               1.0,
		MinZoom:                 5.0,
		MaxZoom:                 30.0,
		ScrollThreshold:         0.01,
		DefaultOrthographicSize: 10.0,
		ButtonZoomStep:          2.0,
		HomeTweenSeconds:        0.6,
		SaveIntervalFrames:      120, // 2 seconds at 60fps
	}

	// Map Config
	Map = MapConfig{
		DefaultMap:           "maps/demo.tmx",
		CullCellSize:         4,
		ReloadDebounceMillis: 100,
	}

	// UI Config
	UI = UIConfig{
		PanelColor:       color.RGBA{R: 20, G: 20, B: 30, A: 200},
		ButtonIdleColor:  color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHoverColor: color.RGBA{R: 80, G: 80, B: 120, A: 255},
		ButtonPressColor: color.RGBA{R: 40, G: 40, B: 60, A: 255},
		ButtonTextColor:  White,
		LabelColor:       White,
		PanelPadding:     6,
		PanelSpacing:     4,
		ButtonMinWidth:   28,
		ButtonMinHeight:  20,
		FontSize:         12,
		HUDFontSize:      10,
		HUDMargin:        8,
		HUDLineHeight:    12,
		HUDTextColor:     White,
		BackgroundColor:  color.RGBA{R: 16, G: 18, B: 24, A: 255},
		KindColors: map[string]color.RGBA{
			"grass": {R: 76, G: 153, B: 0, A: 255},
			"water": {R: 0, G: 102, B: 204, A: 255},
			"dirt":  {R: 153, G: 102, B: 51, A: 255},
			"stone": {R: 128, G: 128, B: 128, A: 255},
			"sand":  {R: 230, G: 210, B: 140, A: 255},
		},
		TilePalette: []color.RGBA{
			{R: 96, G: 96, B: 120, A: 255},
			{R: 140, G: 90, B: 160, A: 255},
			{R: 60, G: 140, B: 140, A: 255},
			{R: 170, G: 120, B: 60, A: 255},
			{R: 110, G: 150, B: 90, A: 255},
		},
		DebugViewColor:   Magenta,
		DebugCulledColor: Yellow,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled: false,
	}
}
