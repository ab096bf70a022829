package satindex

import (
	"math"

	"github.com/soypat/sat/internal/d2"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r2"
)

// item is a bounding circle stored in the tree.
type item struct {
	c  r2.Vec
	r  float64
	id int
}

func (it *item) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(*item)
	switch d {
	case 0:
		return it.c.X - q.c.X
	case 1:
		return it.c.Y - q.c.Y
	}
	panic("unreachable")
}

func (it *item) Dims() int { return 2 }

// Distance returns the squared distance between circle centers.
func (it *item) Distance(c kdtree.Comparable) float64 {
	return r2.Norm2(r2.Sub(it.c, c.(*item).c))
}

type itemList struct {
	items []item
}

// Index returns the ith element of the list of points.
func (l *itemList) Index(i int) kdtree.Comparable { return &l.items[i] }

// Len returns the length of the list.
func (l *itemList) Len() int { return len(l.items) }

// Pivot partitions the list based on the dimension specified.
func (l *itemList) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: d, items: l.items}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (l *itemList) Slice(start, end int) kdtree.Interface {
	return &itemList{items: l.items[start:end]}
}

// Bounds implements the kdtree.Bounder interface.
func (l *itemList) Bounds() *kdtree.Bounding {
	bb := d2.Box{
		Min: r2.Vec{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: r2.Vec{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
	for _, it := range l.items {
		bb = bb.Include(it.c)
	}
	return &kdtree.Bounding{Min: &item{c: bb.Min}, Max: &item{c: bb.Max}}
}

type kdPlane struct {
	dim   kdtree.Dim
	items []item
}

func (p kdPlane) Less(i, j int) bool {
	return p.items[i].Compare(&p.items[j], p.dim) < 0
}

func (p kdPlane) Swap(i, j int) {
	p.items[i], p.items[j] = p.items[j], p.items[i]
}

func (p kdPlane) Len() int { return len(p.items) }

func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.items = p.items[start:end]
	return p
}
