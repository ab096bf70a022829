package d2

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) && scalar.EqualWithinAbs(a.Y, b.Y, tol)
}

// IsFinite returns true if neither component is NaN or infinite.
func IsFinite(a r2.Vec) bool {
	return !math.IsNaN(a.X) && !math.IsNaN(a.Y) && !math.IsInf(a.X, 0) && !math.IsInf(a.Y, 0)
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

func MulElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{
		X: a.X * b.X,
		Y: a.Y * b.Y,
	}
}

// Perp returns a rotated 90 degrees clockwise: (a.Y, -a.X).
func Perp(a r2.Vec) r2.Vec {
	return r2.Vec{X: a.Y, Y: -a.X}
}

// Rotate rotates a by angle radians about the origin.
func Rotate(a r2.Vec, angle float64) r2.Vec {
	s, c := math.Sincos(angle)
	return r2.Vec{
		X: a.X*c - a.Y*s,
		Y: a.X*s + a.Y*c,
	}
}

type Set []r2.Vec

// Bounds returns the smallest box containing every vector of the set.
// The set must not be empty.
func (a Set) Bounds() Box {
	bb := Box{Min: a[0], Max: a[0]}
	for _, v := range a[1:] {
		bb = bb.Include(v)
	}
	return bb
}

// Translate returns a new set with every vector offset by v.
func (a Set) Translate(v r2.Vec) Set {
	s := make(Set, len(a))
	for i := range a {
		s[i] = r2.Add(a[i], v)
	}
	return s
}

// Project flattens the set onto axis and returns the resulting
// interval as {X: min, Y: max}. An empty set yields {+MaxFloat64, -MaxFloat64}.
func (a Set) Project(axis r2.Vec) r2.Vec {
	min := math.MaxFloat64
	max := -math.MaxFloat64
	for _, v := range a {
		dot := r2.Dot(v, axis)
		if dot < min {
			min = dot
		}
		if dot > max {
			max = dot
		}
	}
	return r2.Vec{X: min, Y: max}
}

// Overlap returns true if 1D line segments a and b overlap.
func Overlap(a, b r2.Vec) bool {
	return a.Y >= b.X && b.Y >= a.X
}
