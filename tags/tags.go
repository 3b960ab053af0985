package tags

import "github.com/yohamta/donburi"

var (
	MainCamera = donburi.NewTag().SetName("MainCamera")
)

// Resolv tags for culling queries
const (
	ResolvTile = "tile"
	ResolvView = "view"
)
