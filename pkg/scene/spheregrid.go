package scene

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// oklchToRGB converts OKLCH color values to linear RGB clamped to [0, 1]
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float32) core.Color {
	hRad := h * math32.Pi / 180

	// OKLCH to OKLAB
	a := c * math32.Cos(hRad)
	b := c * math32.Sin(hRad)

	// OKLAB to LMS, then cube
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	return core.NewColor(
		+4.0767416621*l_-3.3077115913*m_+0.2309699292*s_,
		-1.2684380046*l_+2.6097574011*m_-0.3413193965*s_,
		-0.0041960863*l_-0.7034186147*m_+1.7076147010*s_,
	).Clamp(0, 1)
}

// NewSphereGridScene creates a grid of spheres on a floor plane. Hue varies
// along x, chroma along z and shininess along the diagonal.
func NewSphereGridScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       480,
		Height:      270,
		FieldOfView: math32.Pi / 4,
		From:        core.NewPoint(4.5, 6, -9),
		To:          core.NewPoint(4.5, 0.5, 4.5),
		Up:          core.NewVector(0, 1, 0),
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	w := NewWorld()
	w.AddLight(lights.NewPointLight(core.NewPoint(-5, 15, -10), core.NewColor(0.9, 0.9, 0.85)))

	w.AddObject(place(geometry.NewPlane(), core.Identity(4),
		phong(core.NewColor(0.5, 0.5, 0.5), 0.9, 0)))

	const gridSize = 10
	const targetArea = 9.0
	spacing := float32(targetArea) / (gridSize - 1)
	radius := spacing * 0.35

	baseLightness := float32(0.65)
	minChroma := float32(0.05)
	maxChroma := float32(0.25)

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float32(i) * spacing
			z := float32(j) * spacing

			hue := float32(i) / (gridSize - 1) * 360
			chroma := minChroma + float32(j)/(gridSize-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math32.Sin(float32(i+j)*0.5)

			m := phong(oklchToRGB(lightness, chroma, hue), 0.7, 0.5)
			m.Shininess = 10 + 40*float32((i+j)%5)

			w.AddObject(place(geometry.NewSphere(),
				core.Scaling(radius, radius, radius).Translate(x, radius, z), m))
		}
	}

	return NewScene("sphere-grid", w, cameraConfig)
}
