package sat

import (
	"math"

	"github.com/soypat/sat/internal/d2"
)

// AxisResult is the outcome of testing two shapes along a single axis
// on which their projections overlap.
type AxisResult struct {
	AInB bool `json:"a_in_b"`
	BInA bool `json:"b_in_a"`
	// Overlap is the non-negative penetration depth along Axis.
	Overlap float64 `json:"overlap"`
	Axis    Vec     `json:"axis"`
}

// SeparatingAxis projects the world space points of shapes A and B onto axis
// and compares the resulting intervals. It returns false if axis separates
// the shapes. axis should be of unit length.
func SeparatingAxis(aPos, bPos Vec, aPoints, bPoints []Vec, axis Vec) (AxisResult, bool) {
	ax := axis.R2()
	rangeA := worldSet(aPos, aPoints).Project(ax)
	rangeB := worldSet(bPos, bPoints).Project(ax)
	if !d2.Overlap(rangeA, rangeB) {
		return AxisResult{}, false
	}
	aMin, aMax := rangeA.X, rangeA.Y
	bMin, bMax := rangeB.X, rangeB.Y

	var res AxisResult
	var overlap float64
	if aMin < bMin {
		// A starts further left.
		if aMax < bMax {
			overlap = aMax - bMin
		} else {
			overlap = shortestWayOut(aMin, aMax, bMin, bMax)
			res.BInA = true
		}
	} else {
		if aMax > bMax {
			overlap = aMin - bMax
		} else {
			overlap = shortestWayOut(aMin, aMax, bMin, bMax)
			res.AInB = true
		}
	}
	res.Overlap = math.Abs(overlap)
	res.Axis = axis
	return res, true
}

// shortestWayOut picks the smaller of the two ways of moving the contained
// interval out of the containing one. The second option is negated.
func shortestWayOut(aMin, aMax, bMin, bMax float64) float64 {
	option1 := aMax - bMin
	option2 := bMax - aMin
	if option1 < option2 {
		return option1
	}
	return -option2
}

func worldSet(pos Vec, points []Vec) d2.Set {
	s := make(d2.Set, len(points))
	for i, v := range points {
		s[i] = pos.Add(v).R2()
	}
	return s
}
