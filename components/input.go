package components

import (
	"github.com/automoto/orthocam/input"
	"github.com/yohamta/donburi"
)

// InputData stores this frame's samples, one per present input source
type InputData struct {
	Frames []input.Frame
}

var Input = donburi.NewComponentType[InputData]()
