package scene

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// NewSpheresScene creates three spheres in a corner built from flattened spheres
func NewSpheresScene(cameraOverrides ...CameraConfig) (*Scene, error) {
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

	// Floor and walls share a matte material
	wall := phong(core.NewColor(1, 0.9, 0.9), 0.9, 0)
	flat := core.Scaling(10, 0.01, 10)

	w.AddObject(place(geometry.NewSphere(), flat, wall))
	w.AddObject(place(geometry.NewSphere(),
		flat.RotateX(math32.Pi/2).RotateY(-math32.Pi/4).Translate(0, 0, 5), wall))
	w.AddObject(place(geometry.NewSphere(),
		flat.RotateX(math32.Pi/2).RotateY(math32.Pi/4).Translate(0, 0, 5), wall))

	w.AddObject(place(geometry.NewSphere(),
		core.Translation(-0.5, 1, 0.5),
		phong(core.NewColor(0.1, 1, 0.5), 0.7, 0.3)))
	w.AddObject(place(geometry.NewSphere(),
		core.Scaling(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5),
		phong(core.NewColor(0.5, 1, 0.1), 0.7, 0.3)))
	w.AddObject(place(geometry.NewSphere(),
		core.Scaling(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75),
		phong(core.NewColor(1, 0.8, 0.1), 0.7, 0.3)))

	return NewScene("spheres", w, cameraConfig)
}
