package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/math"
)

// HitRecord contains information about a ray-shape intersection
type HitRecord struct {
	Point     math.Vec3 // Point of intersection
	Normal    math.Vec3 // Unit normal, always facing against the incoming ray
	T         float64   // Ray parameter at the intersection
	FrontFace bool      // True if the ray hit the outside of the surface
}

// SetFaceNormal orients the normal against the incoming ray and records
// which side of the surface was hit. outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray math.Ray, outwardNormal math.Vec3) {
	h.FrontFace = math.Dot(ray.Direction, outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
