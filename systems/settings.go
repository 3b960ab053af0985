package systems

import (
	"github.com/automoto/orthocam/components"
	cfg "github.com/automoto/orthocam/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug toggle and the home shortcut.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)

	if anyKeyJustPressed(cfg.Input.DebugKeys) {
		settings.Debug = !settings.Debug
	}
	if anyKeyJustPressed(cfg.Input.HomeKeys) {
		StartCameraHome(e)
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeded from config
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.Set(entry, &components.SettingsData{
			Debug: cfg.Debug.Enabled,
		})
	}
	return components.Settings.Get(entry)
}
