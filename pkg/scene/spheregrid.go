package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/math"
)

// SphereGridConfig describes a square grid of spheres standing on the ground
type SphereGridConfig struct {
	GridSize int     // Spheres per side
	Spacing  float64 // Distance between sphere centers
	Radius   float64 // Radius of each sphere
	Depth    float64 // Distance from the camera to the front row
}

// DefaultSphereGridConfig returns a 6x6 grid that fills the default view
func DefaultSphereGridConfig() SphereGridConfig {
	return SphereGridConfig{
		GridSize: 6,
		Spacing:  0.6,
		Radius:   0.2,
		Depth:    1.5,
	}
}

// NewSphereGridScene creates a grid of spheres receding into the distance
func NewSphereGridScene(width int, config SphereGridConfig) *Scene {
	s := newScene(width)

	// Center the grid horizontally in front of the camera
	offset := float64(config.GridSize-1) * config.Spacing / 2
	groundY := -0.5 + config.Radius

	for row := 0; row < config.GridSize; row++ {
		for col := 0; col < config.GridSize; col++ {
			center := math.NewVec3(
				float64(col)*config.Spacing-offset,
				groundY,
				-config.Depth-float64(row)*config.Spacing,
			)
			s.AddSphere(center, config.Radius)
		}
	}

	s.addGround()
	return s
}
