package must2

import (
	"github.com/soypat/sat"
)

// Box returns an axis aligned box with its minimum corner at pos.
func Box(pos sat.Vec, width, height float64) sat.Box {
	b := sat.Box{Position: pos, Width: width, Height: height}
	switch {
	case width < 0:
		panic("width < 0")
	case height < 0:
		panic("height < 0")
	case b.Validate() != nil:
		panic("non-finite box")
	}
	return b
}

// Rect returns the polygon of a box of the given size with its minimum corner at pos.
func Rect(pos sat.Vec, width, height float64) sat.Polygon {
	return Box(pos, width, height).ToPolygon()
}

// Circle returns a circle centered at pos.
func Circle(pos sat.Vec, radius float64) sat.Circle {
	if radius < 0 {
		panic("radius < 0")
	}
	c := sat.Circle{Pos: pos, Radius: radius}
	if c.Validate() != nil {
		panic("non-finite circle")
	}
	return c
}

// Point returns the 1x1 box polygon used to test a point against polygons.
func Point(p sat.Vec) sat.Polygon {
	if !p.IsFinite() {
		panic("non-finite point")
	}
	return sat.Box{Position: p, Width: 1, Height: 1}.ToPolygon()
}
