package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/math"
)

// Shape interface for objects that can be hit by rays.
//
// Hit returns the nearest intersection with t strictly inside (tMin, tMax),
// or false if there is none. Implementations must not mutate shared state so
// that a scene can be queried from several goroutines at once.
type Shape interface {
	Hit(ray math.Ray, tMin, tMax float64) (*HitRecord, bool)
}
