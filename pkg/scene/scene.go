package scene

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// Scene pairs a world with the camera that views it
type Scene struct {
	Name         string
	World        *World
	Camera       *renderer.Camera
	CameraConfig CameraConfig
}

// CameraConfig describes where a scene's camera sits and what it sees
type CameraConfig struct {
	Width       int         // Canvas width in pixels
	Height      int         // Canvas height in pixels
	FieldOfView float32     // Horizontal field of view in radians
	From        core.Point  // Eye position
	To          core.Point  // Point the camera looks at
	Up          core.Vector // Approximate up direction
}

// MergeCameraConfig returns base with every non-zero field of override applied.
// A zero field means "keep base", so an override cannot move From or To to
// the world origin or set a zero Up; set those on base instead.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.FieldOfView != 0 {
		result.FieldOfView = override.FieldOfView
	}
	if override.From != (core.Point{}) {
		result.From = override.From
	}
	if override.To != (core.Point{}) {
		result.To = override.To
	}
	if override.Up != (core.Vector{}) {
		result.Up = override.Up
	}
	return result
}

// NewCamera builds a renderer camera from the config
func (cfg CameraConfig) NewCamera() (*renderer.Camera, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("camera size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if !(cfg.FieldOfView > 0 && cfg.FieldOfView < math32.Pi) {
		return nil, fmt.Errorf("field of view must be in (0, pi), got %g", cfg.FieldOfView)
	}

	camera := renderer.NewCamera(cfg.Width, cfg.Height, cfg.FieldOfView)
	if err := camera.SetTransform(renderer.ViewTransform(cfg.From, cfg.To, cfg.Up)); err != nil {
		return nil, fmt.Errorf("camera from %v to %v: %w", cfg.From, cfg.To, err)
	}
	return camera, nil
}

// NewScene creates a scene whose camera is built from cfg. Every object in
// world must carry a valid material.
func NewScene(name string, world *World, cfg CameraConfig) (*Scene, error) {
	for i, obj := range world.Objects {
		if err := obj.Material().Validate(); err != nil {
			return nil, fmt.Errorf("scene %q: object %d: %w", name, i, err)
		}
	}
	camera, err := cfg.NewCamera()
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}
	return &Scene{
		Name:         name,
		World:        world,
		Camera:       camera,
		CameraConfig: cfg,
	}, nil
}

// placeable is a shape whose transform and material can be set
type placeable interface {
	geometry.Shape
	SetTransform(m core.Matrix) error
	SetMaterial(m material.Material)
}

// place sets a preset shape's transform and material. Presets are
// constants, so a singular transform or invalid material is a programming error.
func place[S placeable](s S, transform core.Matrix, m material.Material) S {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("scene preset: %v", err))
	}
	if err := s.SetTransform(transform); err != nil {
		panic(fmt.Sprintf("scene preset: %v", err))
	}
	s.SetMaterial(m)
	return s
}

// phong returns a default material with the given color, diffuse and specular terms
func phong(color core.Color, diffuse, specular float32) material.Material {
	m := material.NewMaterial()
	m.Color = color
	m.Diffuse = diffuse
	m.Specular = specular
	return m
}
