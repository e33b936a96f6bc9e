package scene

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewDefaultWorld creates the reference world: one white light and two
// concentric spheres, the inner one half the size of the outer
func NewDefaultWorld() *World {
	w := NewWorld()
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))

	w.AddObject(place(geometry.NewSphere(), core.Identity(4),
		phong(core.NewColor(0.8, 1.0, 0.6), 0.7, 0.2)))
	w.AddObject(place(geometry.NewSphere(), core.Scaling(0.5, 0.5, 0.5),
		material.NewMaterial()))

	return w
}

// DefaultCameraConfig frames the default world from straight in front
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:       400,
		Height:      300,
		FieldOfView: math32.Pi / 3,
		From:        core.NewPoint(0, 1.5, -5),
		To:          core.NewPoint(0, 0, 0),
		Up:          core.NewVector(0, 1, 0),
	}
}

// NewDefaultScene creates the default world with its camera
func NewDefaultScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	return NewScene("default", NewDefaultWorld(), cameraConfig)
}
