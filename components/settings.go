package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime toggles
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()

// ViewStateData tracks whether the camera view needs saving
type ViewStateData struct {
	LastSaved       CameraData
	FramesSinceSave int
}

var ViewState = donburi.NewComponentType[ViewStateData]()
