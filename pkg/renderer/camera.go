package renderer

import (
	"github.com/df07/go-weekend-raytracer/pkg/math"
)

// CameraConfig describes a pinhole camera looking down -Z
type CameraConfig struct {
	Origin         math.Vec3 // Eye position
	AspectRatio    float64   // Viewport width / height
	ViewportHeight float64   // Height of the viewport in world units
	FocalLength    float64   // Distance from the eye to the viewport
}

// DefaultCameraConfig returns a 16:9 camera at the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:         math.NewVec3(0, 0, 0),
		AspectRatio:    16.0 / 9.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	}
}

// Camera generates rays for rendering
type Camera struct {
	origin          math.Vec3
	lowerLeftCorner math.Vec3
	horizontal      math.Vec3
	vertical        math.Vec3
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	viewportWidth := config.AspectRatio * config.ViewportHeight

	origin := config.Origin
	horizontal := math.NewVec3(viewportWidth, 0, 0)
	vertical := math.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(math.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for viewport coordinates (u, v) where 0 <= u,v <= 1
// and (0, 0) is the lower left corner
func (c *Camera) GetRay(u, v float64) math.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return math.NewRay(c.origin, direction)
}

// ImageHeight returns the pixel height matching width at the given aspect ratio
func ImageHeight(width int, aspectRatio float64) int {
	return max(1, int(float64(width)/aspectRatio))
}
