package archetypes

import (
	"github.com/automoto/orthocam/components"
	cfg "github.com/automoto/orthocam/config"
	"github.com/automoto/orthocam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		tags.MainCamera,
		components.Camera,
		components.CameraController,
		components.ViewState,
	)
	Map = newArchetype(
		components.Map,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
