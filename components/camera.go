package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Scale    math.Vec2 // View extent multiplier; smaller zooms in
}

var Camera = donburi.NewComponentType[CameraData]()
