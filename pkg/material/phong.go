package material

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Lighting evaluates the Phong reflection model (ambient + diffuse + specular)
// for one light at a surface point. eye and normal must be unit vectors.
// The result is not clamped.
func Lighting(m Material, light lights.PointLight, point core.Point, eye, normal core.Vector) core.Color {
	effectiveColor := m.Color.Hadamard(light.Intensity)
	lightVec := light.DirectionFrom(point)

	ambient := effectiveColor.Multiply(m.Ambient)

	diffuse := core.Black()
	if lightDotNormal := lightVec.Dot(normal); lightDotNormal > 0 {
		diffuse = effectiveColor.Multiply(m.Diffuse * lightDotNormal)
	}

	specular := core.Black()
	reflectVec := lightVec.Negate().Reflect(normal)
	if reflectDotEye := reflectVec.Dot(eye); reflectDotEye > 0 {
		factor := math32.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
