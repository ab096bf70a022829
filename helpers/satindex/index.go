// Package satindex is a broad phase for the separating axis test. It
// stores the bounding circle of every polygon in a k-d tree so a query
// only runs the narrow phase against polygons whose circles touch.
package satindex

import (
	"math"
	"sort"

	"github.com/soypat/sat"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r2"
)

// slack widens circle distance checks so touching polygons are kept.
const slack = 1e-9

// Index is an immutable broad phase over a set of polygons. It is safe for
// concurrent queries.
type Index struct {
	polys []sat.Polygon
	// items is reordered by kdtree.New. Use item.id to index polys.
	items     []item
	tree      *kdtree.Tree
	maxRadius float64
}

// Hit is a polygon of the index colliding with a query polygon.
type Hit struct {
	Index    int          `json:"index"`
	Response sat.Response `json:"response"`
}

// PairHit is a colliding pair of indexed polygons with I < J.
type PairHit struct {
	I        int          `json:"i"`
	J        int          `json:"j"`
	Response sat.Response `json:"response"`
}

// New builds an index over polys. The polygons are copied. Polygons without
// points never collide and are not indexed.
func New(polys []sat.Polygon) *Index {
	ix := &Index{polys: make([]sat.Polygon, len(polys))}
	for i, p := range polys {
		ix.polys[i] = p.Clone()
		if len(p.Points) == 0 {
			continue
		}
		it := circleOf(p)
		it.id = i
		ix.items = append(ix.items, it)
		ix.maxRadius = math.Max(ix.maxRadius, it.r)
	}
	if len(ix.items) > 0 {
		ix.tree = kdtree.New(&itemList{items: ix.items}, true)
	}
	return ix
}

// Len returns the number of polygons the index was built with.
func (ix *Index) Len() int { return len(ix.polys) }

// Polygon returns a copy of the ith polygon.
func (ix *Index) Polygon(i int) sat.Polygon { return ix.polys[i].Clone() }

// Candidates returns the sorted indices of polygons whose bounding circle
// touches that of p. It is a superset of the polygons colliding with p.
func (ix *Index) Candidates(p sat.Polygon) []int {
	if ix.tree == nil || len(p.Points) == 0 {
		return nil
	}
	q := circleOf(p)
	reach := q.r + ix.maxRadius + slack
	keep := kdtree.NewDistKeeper(reach * reach)
	ix.tree.NearestSet(keep, &q)

	var ids []int
	for _, cd := range keep.Heap {
		if cd.Comparable == nil {
			continue // Sentinel.
		}
		it := cd.Comparable.(*item)
		lim := q.r + it.r + slack
		if cd.Dist <= lim*lim {
			ids = append(ids, it.id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Query runs t on p against every candidate and returns the collisions in
// ascending index order. The indexed polygon is passed as the first shape.
// A nil t tests with sat.DefaultConfig.
func (ix *Index) Query(t *sat.Tester, p sat.Polygon) ([]Hit, error) {
	t, err := testerOrDefault(t)
	if err != nil {
		return nil, err
	}
	var hits []Hit
	for _, id := range ix.Candidates(p) {
		r, ok, err := t.Test(ix.polys[id], p)
		if err != nil {
			return nil, err
		}
		if ok {
			hits = append(hits, Hit{Index: id, Response: r})
		}
	}
	return hits, nil
}

// Pairs returns every colliding pair of indexed polygons ordered by I then J.
func (ix *Index) Pairs(t *sat.Tester) ([]PairHit, error) {
	t, err := testerOrDefault(t)
	if err != nil {
		return nil, err
	}
	var hits []PairHit
	for i, p := range ix.polys {
		for _, j := range ix.Candidates(p) {
			if j <= i {
				continue
			}
			r, ok, err := t.Test(p, ix.polys[j])
			if err != nil {
				return nil, err
			}
			if ok {
				hits = append(hits, PairHit{I: i, J: j, Response: r})
			}
		}
	}
	return hits, nil
}

func testerOrDefault(t *sat.Tester) (*sat.Tester, error) {
	if t != nil {
		return t, nil
	}
	return sat.NewTester(sat.DefaultConfig())
}

// circleOf returns the world space bounding circle of p about its centroid.
func circleOf(p sat.Polygon) item {
	c := p.Centroid().R2()
	var r2max float64
	for _, v := range p.WorldPoints() {
		r2max = math.Max(r2max, r2.Norm2(r2.Sub(v.R2(), c)))
	}
	return item{c: c, r: math.Sqrt(r2max)}
}
