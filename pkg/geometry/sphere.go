package geometry

import (
	gomath "math"

	"github.com/df07/go-weekend-raytracer/pkg/math"
)

// Sphere represents a sphere shape. Radius is not validated; a zero or
// negative radius produces meaningless normals.
type Sphere struct {
	Center math.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center math.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray math.Ray, tMin, tMax float64) (*HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := math.Dot(oc, ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c

	// A tangent ray (discriminant == 0) counts as a miss
	if discriminant <= 0 {
		return nil, false
	}

	sqrtD := gomath.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !inOpenInterval(root, tMin, tMax) {
		root = (-halfB + sqrtD) / a
		if !inOpenInterval(root, tMin, tMax) {
			return nil, false
		}
	}

	hitRecord := &HitRecord{
		T:     root,
		Point: ray.At(root),
	}

	outwardNormal := hitRecord.Point.Subtract(s.Center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

func inOpenInterval(t, tMin, tMax float64) bool {
	return t > tMin && t < tMax
}
