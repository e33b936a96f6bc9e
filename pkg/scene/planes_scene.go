package scene

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// NewPlanesScene creates three spheres on a floor plane in front of a back
// wall, lit by a key light and a dim fill light
func NewPlanesScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       400,
		Height:      200,
		FieldOfView: math32.Pi / 3,
		From:        core.NewPoint(0, 1.5, -5),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	w := NewWorld()
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))
	w.AddLight(lights.NewPointLight(core.NewPoint(10, 5, -10), core.NewColor(0.2, 0.2, 0.25)))

	w.AddObject(place(geometry.NewPlane(), core.Identity(4),
		phong(core.NewColor(1, 0.9, 0.9), 0.9, 0)))
	w.AddObject(place(geometry.NewPlane(),
		core.RotationX(math32.Pi/2).Translate(0, 0, 5),
		phong(core.NewColor(0.6, 0.7, 0.9), 0.8, 0)))

	w.AddObject(place(geometry.NewSphere(),
		core.Translation(-0.5, 1, 0.5),
		phong(core.NewColor(0.1, 1, 0.5), 0.7, 0.3)))
	w.AddObject(place(geometry.NewSphere(),
		core.Scaling(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5),
		phong(core.NewColor(0.5, 1, 0.1), 0.7, 0.3)))
	w.AddObject(place(geometry.NewSphere(),
		core.Scaling(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75),
		phong(core.NewColor(1, 0.8, 0.1), 0.7, 0.3)))

	return NewScene("planes", w, cameraConfig)
}
