package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"` // Short description
	create      func(width int) *Scene
}

var builtinScenes = []SceneInfo{
	{
		ID:          "default",
		DisplayName: "Default",
		Description: "One sphere resting on a ground sphere",
		create:      NewDefaultScene,
	},
	{
		ID:          "row",
		DisplayName: "Sphere Row",
		Description: "Three spheres side by side",
		create:      NewRowScene,
	},
	{
		ID:          "grid",
		DisplayName: "Sphere Grid",
		Description: "A 6x6 grid of small spheres",
		create: func(width int) *Scene {
			return NewSphereGridScene(width, DefaultSphereGridConfig())
		},
	},
	{
		ID:          "empty",
		DisplayName: "Empty",
		Description: "Sky gradient only",
		create:      NewEmptyScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Names returns the IDs of all built-in scenes in sorted order
func Names() []string {
	var names []string
	for _, info := range ListScenes() {
		names = append(names, info.ID)
	}
	return names
}

// Lookup creates the scene registered under name with the given image width.
// Names are matched case-insensitively.
func Lookup(name string, width int) (*Scene, error) {
	id := strings.ToLower(strings.TrimSpace(name))
	for _, info := range builtinScenes {
		if info.ID == id {
			return info.create(width), nil
		}
	}
	return nil, fmt.Errorf("scene: %w %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
}
