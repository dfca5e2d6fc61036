package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/math"
)

// addGround adds the large sphere that serves as the ground
func (s *Scene) addGround() {
	s.AddSphere(math.NewVec3(0, -100.5, -1), 100)
}

// NewDefaultScene creates a single sphere resting on a ground sphere
func NewDefaultScene(width int) *Scene {
	s := newScene(width)
	s.AddSphere(math.NewVec3(0, 0, -1), 0.5)
	s.addGround()
	return s
}

// NewRowScene creates three spheres side by side on a ground sphere
func NewRowScene(width int) *Scene {
	s := newScene(width)
	s.AddSphere(math.NewVec3(-1.1, 0, -1.5), 0.5)
	s.AddSphere(math.NewVec3(0, 0, -1.5), 0.5)
	s.AddSphere(math.NewVec3(1.1, 0, -1.5), 0.5)
	s.addGround()
	return s
}

// NewEmptyScene creates a scene with no geometry, only the sky
func NewEmptyScene(width int) *Scene {
	return newScene(width)
}
