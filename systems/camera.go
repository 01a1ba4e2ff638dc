package systems

import (
	"github.com/automoto/sdfzoom/components"
	cfg "github.com/automoto/sdfzoom/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// CameraMagnification converts a camera scale into screen pixels per world
// unit. The result is capped so near-zero scales stay drawable.
func CameraMagnification(scale float64) float64 {
	if scale <= 0 {
		return cfg.Render.MaxMagnification
	}
	return min(1/scale, cfg.Render.MaxMagnification)
}

// CameraGeoM maps world coordinates (Y up) to screen pixels, with the camera
// position at the screen center
func CameraGeoM(camera *components.CameraData, screenW, screenH int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-camera.Position.X, -camera.Position.Y)
	g.Scale(CameraMagnification(camera.Scale.X), -CameraMagnification(camera.Scale.Y))
	g.Translate(float64(screenW)/2, float64(screenH)/2)
	return g
}

// ShapeGeoM maps a shape's source pixels (origin top-left, Y down) to screen
// pixels through the camera
func ShapeGeoM(shape *components.ShapeData, camera *components.CameraData, screenW, screenH int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(1, -1)
	g.Translate(shape.Position.X-shape.Width/2, shape.Position.Y+shape.Height/2)
	g.Concat(CameraGeoM(camera, screenW, screenH))
	return g
}
