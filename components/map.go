package components

import (
	"github.com/automoto/orthocam/assets"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// MapData holds the loaded map and its culling space
type MapData struct {
	Map    *assets.Map
	Source string // Embedded name or file path the map was loaded from
}

var Map = donburi.NewComponentType[MapData]()

// Space is the resolv space holding one object per tile
var Space = donburi.NewComponentType[resolv.Space]()
