package input

import (
	"runtime"

	"github.com/automoto/orthocam/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// goos is the platform used to resolve InputSourceAuto.
var goos = runtime.GOOS

// Sources returns the Source variants for mode, in polling order.
func Sources(mode config.InputSourceMode, panButton ebiten.MouseButton) []Source {
	switch Resolve(mode) {
	case config.InputSourcePointer:
		return []Source{NewPointerSource(panButton)}
	case config.InputSourceTouch:
		return []Source{NewTouchSource()}
	default:
		return []Source{NewPointerSource(panButton), NewTouchSource()}
	}
}

// Resolve replaces InputSourceAuto with the mode for the current platform.
func Resolve(mode config.InputSourceMode) config.InputSourceMode {
	if mode == config.InputSourceAuto {
		return AutoMode(goos)
	}
	return mode
}

// AutoMode picks the variants a platform needs: touch on mobile, the mouse on
// desktop and both in the browser, where either may be present.
func AutoMode(platform string) config.InputSourceMode {
	switch platform {
	case "android", "ios":
		return config.InputSourceTouch
	case "js", "wasip1":
		return config.InputSourceBoth
	default:
		return config.InputSourcePointer
	}
}
