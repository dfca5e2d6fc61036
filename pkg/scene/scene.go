package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/math"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
	World        *geometry.ShapeList // Objects in the scene
	Width        int                 // Image width
	Height       int                 // Image height
}

// DefaultWidth is the image width used when a scene is created without overrides
const DefaultWidth = 400

// newScene creates an empty scene with the default camera and the given width
func newScene(width int) *Scene {
	if width <= 0 {
		width = DefaultWidth
	}
	cameraConfig := renderer.DefaultCameraConfig()
	return &Scene{
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		World:        geometry.NewShapeList(),
		Width:        width,
		Height:       renderer.ImageHeight(width, cameraConfig.AspectRatio),
	}
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center math.Vec3, radius float64) {
	s.World.Add(geometry.NewSphere(center, radius))
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}
