package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float32             `json:"point"`
	Normal       [3]float32             `json:"normal"`
	Distance     float32                `json:"distance"`
	Inside       bool                   `json:"inside"`
	Color        string                 `json:"color"` // Shaded pixel color as #rrggbb
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo flattens a Phong material into JSON-friendly properties
func extractMaterialInfo(m material.Material) map[string]interface{} {
	return map[string]interface{}{
		"color":     [3]float32{m.Color.R, m.Color.G, m.Color.B},
		"hex":       hexColor(m.Color),
		"ambient":   m.Ambient,
		"diffuse":   m.Diffuse,
		"specular":  m.Specular,
		"shininess": m.Shininess,
	}
}

// geometryType names a shape for display
func geometryType(s geometry.Shape) string {
	switch s.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Plane:
		return "plane"
	default:
		return "unknown"
	}
}

func hexColor(c core.Color) string {
	rgba := canvas.ToRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// inspectPixel casts the camera ray through pixel (x, y) and describes the first object hit
func inspectPixel(sceneObj *scene.Scene, x, y int) InspectResponse {
	ray := sceneObj.Camera.RayForPixel(x, y)
	hit, ok := sceneObj.World.Intersect(ray).Hit()
	if !ok {
		return InspectResponse{Hit: false, Color: hexColor(core.Black())}
	}

	comps := scene.PrepareComputations(hit, ray)
	return InspectResponse{
		Hit:          true,
		GeometryType: geometryType(hit.Object),
		Point:        [3]float32{comps.Point.X, comps.Point.Y, comps.Point.Z},
		Normal:       [3]float32{comps.Normal.X, comps.Normal.Y, comps.Normal.Z},
		Distance:     hit.T,
		Inside:       comps.Inside,
		Color:        hexColor(sceneObj.World.ShadeHit(comps)),
		Properties:   extractMaterialInfo(hit.Object.Material()),
	}
}

// handleInspect reports what the camera sees through one pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, sceneErrorStatus(err), err)
		return
	}

	query := r.URL.Query()
	x, err := parseIntParam(query, "x", -1, 0, sceneObj.Camera.HSize()-1)
	if err == nil && x < 0 {
		err = fmt.Errorf("x is required")
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	y, err := parseIntParam(query, "y", -1, 0, sceneObj.Camera.VSize()-1)
	if err == nil && y < 0 {
		err = fmt.Errorf("y is required")
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, x, y))
}
