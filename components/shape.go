package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ShapeData is the quad the material is rasterized on, in world units.
// Position is the quad center, Y up.
type ShapeData struct {
	Width    float64
	Height   float64
	Position math.Vec2
}

var Shape = donburi.NewComponentType[ShapeData]()
