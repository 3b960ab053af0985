package config

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputSourceMode selects which input-source variants drive the camera
type InputSourceMode int

const (
	InputSourceAuto    InputSourceMode = iota // Chosen from the platform at startup
	InputSourcePointer                        // Mouse and scroll wheel only
	InputSourceTouch                          // Touch surface only
	InputSourceBoth                           // Mouse and touch together
)

var inputSourceModeNames = map[InputSourceMode]string{
	InputSourceAuto:    "auto",
	InputSourcePointer: "pointer",
	InputSourceTouch:   "touch",
	InputSourceBoth:    "both",
}

func (m InputSourceMode) String() string {
	if name, ok := inputSourceModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("InputSourceMode(%d)", int(m))
}

// ParseInputSourceMode converts a flag or config value into an InputSourceMode
func ParseInputSourceMode(s string) (InputSourceMode, error) {
	for mode, name := range inputSourceModeNames {
		if name == s {
			return mode, nil
		}
	}
	return InputSourceAuto, fmt.Errorf("unknown input mode %q (want auto, pointer, touch or both)", s)
}

// InputConfig holds input device bindings
type InputConfig struct {
	Mode      InputSourceMode
	PanButton ebiten.MouseButton
	HomeKeys  []ebiten.Key
	DebugKeys []ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Mode:      InputSourceAuto,
		PanButton: ebiten.MouseButtonLeft,
		HomeKeys:  []ebiten.Key{ebiten.KeyHome, ebiten.KeyH},
		DebugKeys: []ebiten.Key{ebiten.KeyF3},
	}
}
