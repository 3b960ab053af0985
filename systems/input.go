package systems

import (
	"github.com/automoto/orthocam/components"
	"github.com/automoto/orthocam/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateInput returns a system that polls every source into the Input component.
// Must run BEFORE UpdateCameraController in the system order.
func NewUpdateInput(sources ...input.Source) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		in := getOrCreateInput(e)
		in.Frames = in.Frames[:0]
		for _, src := range sources {
			f, ok := src.Poll()
			if !ok {
				continue // absent device, nothing to do this frame
			}
			f.Channel = src.Channel()
			in.Frames = append(in.Frames, f)
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// anyKeyJustPressed reports whether any of keys went down this frame
func anyKeyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
