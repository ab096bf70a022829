package d2

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// Include enlarges a 2d box to include a point.
func (a Box) Include(v r2.Vec) Box {
	return Box{MinElem(a.Min, v), MaxElem(a.Max, v)}
}

// Translate translates a 2d box.
func (a Box) Translate(v r2.Vec) Box {
	return Box{r2.Add(a.Min, v), r2.Add(a.Max, v)}
}

// Size returns the size of a 2d box.
func (a Box) Size() r2.Vec {
	return r2.Sub(a.Max, a.Min)
}

// Vertices returns the box corners wound from the minimum corner:
// bottom left, bottom right, top right, top left.
func (a Box) Vertices() Set {
	v := make([]r2.Vec, 4)
	v[0] = a.Min                          // bl
	v[1] = r2.Vec{X: a.Max.X, Y: a.Min.Y} // br
	v[2] = a.Max                          // tr
	v[3] = r2.Vec{X: a.Min.X, Y: a.Max.Y} // tl
	return v
}
