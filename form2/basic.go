package form2

import (
	"fmt"
	"runtime/debug"

	"github.com/soypat/sat"
	"github.com/soypat/sat/form2/must2"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Box returns an axis aligned box with its minimum corner at pos.
func Box(pos sat.Vec, width, height float64) (b sat.Box, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Box(pos, width, height), err
}

// Rect returns the polygon of a box with its minimum corner at pos.
func Rect(pos sat.Vec, width, height float64) (p sat.Polygon, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Rect(pos, width, height), err
}

// Circle returns a circle centered at pos.
func Circle(pos sat.Vec, radius float64) (c sat.Circle, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Circle(pos, radius), err
}

// Point returns the 1x1 box polygon used to test a point against polygons.
func Point(p sat.Vec) (poly sat.Polygon, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Point(p), err
}
