package sat

import (
	"github.com/soypat/sat/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a 2D vector. Vec is a value type: every method returns a new
// vector and never modifies its receiver.
type Vec struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// V returns the vector (x, y).
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func fromR2(v r2.Vec) Vec { return Vec(v) }

// R2 converts v to a gonum r2.Vec.
func (v Vec) R2() r2.Vec { return r2.Vec(v) }

// Add returns v + b.
func (v Vec) Add(b Vec) Vec { return fromR2(r2.Add(v.R2(), b.R2())) }

// Sub returns v - b.
func (v Vec) Sub(b Vec) Vec { return fromR2(r2.Sub(v.R2(), b.R2())) }

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec { return fromR2(r2.Scale(s, v.R2())) }

// ScaleXY scales each component independently.
func (v Vec) ScaleXY(sx, sy float64) Vec {
	return fromR2(d2.MulElem(v.R2(), r2.Vec{X: sx, Y: sy}))
}

// Dot returns the dot product v·b.
func (v Vec) Dot(b Vec) float64 { return r2.Dot(v.R2(), b.R2()) }

// Len2 returns the squared length of v.
func (v Vec) Len2() float64 { return r2.Norm2(v.R2()) }

// Len returns the length of v.
func (v Vec) Len() float64 { return r2.Norm(v.R2()) }

// Normalise returns the unit vector colinear to v. The zero vector is
// returned unchanged.
func (v Vec) Normalise() Vec {
	l := v.Len()
	if l > 0 {
		return Vec{X: v.X / l, Y: v.Y / l}
	}
	return v
}

// Perp returns v rotated 90 degrees clockwise, (v.Y, -v.X).
func (v Vec) Perp() Vec { return fromR2(d2.Perp(v.R2())) }

// Rotate returns v rotated counter-clockwise by angle radians about the origin.
func (v Vec) Rotate(angle float64) Vec { return fromR2(d2.Rotate(v.R2(), angle)) }

// Reverse returns -v.
func (v Vec) Reverse() Vec { return Vec{X: -v.X, Y: -v.Y} }

// Project returns the projection of v onto axis. The result is NaN when
// axis is the zero vector; see ProjectChecked.
func (v Vec) Project(axis Vec) Vec {
	amount := v.Dot(axis) / axis.Len2()
	return axis.Scale(amount)
}

// ProjectChecked is like Project but fails with ErrZeroAxis when axis has zero length.
func (v Vec) ProjectChecked(axis Vec) (Vec, error) {
	if axis.Len2() == 0 {
		return Vec{}, ErrZeroAxis
	}
	return v.Project(axis), nil
}

// ProjectUnit projects v onto axis assuming axis is of unit length.
// The result is wrong, not an error, for non-unit axes.
func (v Vec) ProjectUnit(axis Vec) Vec {
	return axis.Scale(v.Dot(axis))
}

// Reflect reflects v on axis: 2*Project(axis) - v.
func (v Vec) Reflect(axis Vec) Vec {
	return v.Project(axis).Scale(2).Sub(v)
}

// ReflectUnit is Reflect for a unit length axis.
func (v Vec) ReflectUnit(axis Vec) Vec {
	return v.ProjectUnit(axis).Scale(2).Sub(v)
}

// Equal returns true if both components of v and b differ by at most tol.
func (v Vec) Equal(b Vec, tol float64) bool {
	return d2.EqualWithin(v.R2(), b.R2(), tol)
}

// IsFinite returns false if any component is NaN or infinite.
func (v Vec) IsFinite() bool { return d2.IsFinite(v.R2()) }

// dist2 is the squared distance between a and b.
func dist2(a, b Vec) float64 {
	d := a.Sub(b)
	return d.Len2()
}
