package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned by Lookup for names with no registered preset
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Lookup
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // One-line summary
}

// sceneBuilder creates a preset scene with optional camera overrides
type sceneBuilder func(cameraOverrides ...CameraConfig) (*Scene, error)

type sceneEntry struct {
	description string
	build       sceneBuilder
}

var builtInScenes = map[string]sceneEntry{
	"default": {
		description: "Two concentric spheres under a single white light",
		build:       NewDefaultScene,
	},
	"spheres": {
		description: "Three spheres in a room built from flattened spheres",
		build:       NewSpheresScene,
	},
	"planes": {
		description: "Three spheres on a floor plane with key and fill lights",
		build:       NewPlanesScene,
	},
	"sphere-grid": {
		description: "10x10 grid of OKLCH-colored spheres on a floor plane",
		build:       NewSphereGridScene,
	},
}

// ListScenes returns every built-in scene sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for id, entry := range builtInScenes {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: entry.description,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})

	return scenes
}

// Lookup builds the named scene. An override's non-zero fields replace the
// preset's camera settings.
func Lookup(name string, cameraOverrides ...CameraConfig) (*Scene, error) {
	entry, ok := builtInScenes[strings.ToLower(name)]
	if !ok {
		ids := make([]string, 0, len(builtInScenes))
		for _, info := range ListScenes() {
			ids = append(ids, info.ID)
		}
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownScene, name, strings.Join(ids, ", "))
	}
	return entry.build(cameraOverrides...)
}

// titleCase converts an identifier to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
