package form2

import (
	"math"

	"github.com/soypat/sat"
)

// RotateDeg returns a copy of p with its local points rotated by degrees
// about the local origin.
func RotateDeg(p sat.Polygon, degrees float64) sat.Polygon {
	return p.Rotate(d2r(degrees))
}

func d2r(degrees float64) float64 { return degrees * math.Pi / 180. }
