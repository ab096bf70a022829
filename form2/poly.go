package form2

import (
	"runtime/debug"

	"github.com/soypat/sat"
	"github.com/soypat/sat/form2/must2"
)

// Polygon returns a polygon positioned at pos with the given local vertices.
func Polygon(pos sat.Vec, vertex []sat.Vec) (p sat.Polygon, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Polygon(pos, vertex), err
}

// NewPolygon returns an empty polygon builder.
func NewPolygon() *must2.PolygonBuilder {
	return must2.NewPolygon()
}

// Build returns the polygon described by builder, positioned at pos.
func Build(builder *must2.PolygonBuilder, pos sat.Vec) (p sat.Polygon, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return builder.Polygon(pos), err
}

// Nagon return the vertices of a N sided regular polygon.
func Nagon(n int, radius float64) (v []sat.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Nagon(n, radius), err
}
