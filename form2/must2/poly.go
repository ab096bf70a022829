package must2

import (
	"math"

	"github.com/soypat/sat"
	"github.com/soypat/sat/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	sqrtHalf  = 0.7071067811865476
	tolerance = 1e-9
)

// Polygon returns a polygon positioned at pos with the given local vertices.
// A closing vertex equal to the first one is dropped since the vertex
// sequence is always treated as closed.
func Polygon(pos sat.Vec, vertex []sat.Vec) sat.Polygon {
	n := len(vertex)
	if n >= 2 && vertex[0].Equal(vertex[n-1], tolerance) {
		n--
	}
	if n < 3 {
		panic("number of vertices < 3")
	}
	p := sat.Polygon{Position: pos}.WithPoints(vertex[:n])
	if p.Validate() != nil {
		panic("non-finite vertex")
	}
	return p
}

// Nagon return the vertices of a N sided regular polygon.
func Nagon(n int, radius float64) []sat.Vec {
	if n < 3 {
		panic("n < 3")
	}
	if radius < 0 {
		panic("radius < 0")
	}
	v := make([]sat.Vec, n)
	p := r2.Vec{X: radius}
	for i := 0; i < n; i++ {
		v[i] = sat.Vec(p)
		p = d2.Rotate(p, 2*math.Pi/float64(n))
	}
	return v
}

// Polygon building code.

// PolygonBuilder stores a set of 2d polygon vertices.
type PolygonBuilder struct {
	reverse bool            // return the vertices in reverse order
	vlist   []polygonVertex // list of polygon vertices
}

// polygonVertex is a polygon vertex.
type polygonVertex struct {
	relative bool    // vertex position is relative to previous vertex
	smooth   bool    // replace the vertex with a rounded corner
	vertex   r2.Vec  // vertex coordinates
	facets   int     // number of polygon facets to create when smoothing
	radius   float64 // radius of smoothing (0 == none)
}

// Operations on Polygon Vertices

// Rel positions the polygon vertex relative to the prior vertex.
func (v *polygonVertex) Rel() *polygonVertex {
	v.relative = true
	return v
}

// Polar treats the polygon vertex values as polar coordinates (r, theta).
func (v *polygonVertex) Polar() *polygonVertex {
	s, c := math.Sincos(v.vertex.Y)
	v.vertex = r2.Vec{X: v.vertex.X * c, Y: v.vertex.X * s}
	return v
}

// Smooth marks the polygon vertex for smoothing.
func (v *polygonVertex) Smooth(radius float64, facets int) *polygonVertex {
	if radius != 0 && facets != 0 {
		v.radius = radius
		v.facets = facets
		v.smooth = true
	}
	return v
}

// Chamfer marks the polygon vertex for chamfering.
func (v *polygonVertex) Chamfer(size float64) *polygonVertex {
	// A single facet smoothing. Size is exact for 90 degree corners only.
	if size != 0 {
		v.radius = size * sqrtHalf
		v.facets = 1
		v.smooth = true
	}
	return v
}

// nextVertex returns the next vertex in the polygon.
func (p *PolygonBuilder) nextVertex(i int) *polygonVertex {
	if i == len(p.vlist)-1 {
		return &p.vlist[0]
	}
	return &p.vlist[i+1]
}

// prevVertex returns the previous vertex in the polygon.
func (p *PolygonBuilder) prevVertex(i int) *polygonVertex {
	if i == 0 {
		return &p.vlist[len(p.vlist)-1]
	}
	return &p.vlist[i-1]
}

// vertex smoothing

// Smooth the i-th vertex, return true if we smoothed it.
func (p *PolygonBuilder) smoothVertex(i int) bool {
	v := p.vlist[i]
	if !v.smooth {
		return false
	}
	vn := p.nextVertex(i)
	vp := p.prevVertex(i)
	// work out the angle
	v0 := r2.Unit(r2.Sub(vp.vertex, v.vertex))
	v1 := r2.Unit(r2.Sub(vn.vertex, v.vertex))
	theta := math.Acos(r2.Dot(v0, v1))
	// distance from vertex to circle tangent
	d1 := v.radius / math.Tan(theta/2.0)
	if d1 > r2.Norm(r2.Sub(vp.vertex, v.vertex)) || d1 > r2.Norm(r2.Sub(vn.vertex, v.vertex)) {
		// unable to smooth - radius is too large
		p.vlist[i].smooth = false
		return false
	}
	// tangent point
	p0 := r2.Add(v.vertex, r2.Scale(d1, v0))
	// distance from vertex to circle center
	dc := v.radius / math.Sin(theta/2.0)
	// center of circle
	vc := r2.Unit(r2.Add(v0, v1))
	c := r2.Add(v.vertex, r2.Scale(dc, vc))
	dtheta := sign(r2.Cross(v1, v0)) * (math.Pi - theta) / float64(v.facets)
	// radius vector
	rv := r2.Sub(p0, c)
	points := make([]polygonVertex, v.facets+1)
	for j := range points {
		points[j] = polygonVertex{vertex: r2.Add(c, rv)}
		rv = d2.Rotate(rv, dtheta)
	}
	// replace the old point with the new points
	p.vlist = append(p.vlist[:i], append(points, p.vlist[i+1:]...)...)
	return true
}

// smoothVertices smoothes the vertices of a polygon.
func (p *PolygonBuilder) smoothVertices() {
	done := false
	for !done {
		done = true
		for i := range p.vlist {
			if p.smoothVertex(i) {
				done = false
				break
			}
		}
	}
}

// relToAbs converts relative vertices to absolute vertices.
func (p *PolygonBuilder) relToAbs() {
	for i := range p.vlist {
		v := &p.vlist[i]
		if v.relative {
			if i == 0 {
				panic("first vertex can not be relative")
			}
			pv := p.prevVertex(i)
			v.vertex = r2.Add(v.vertex, pv.vertex)
			v.relative = false
		}
	}
}

// Public API for polygons

// Reverse reverses the order the vertices are returned.
func (p *PolygonBuilder) Reverse() {
	p.reverse = true
}

// NewPolygon returns an empty polygon builder.
func NewPolygon() *PolygonBuilder {
	return &PolygonBuilder{}
}

// AddVec adds a vertex to a polygon.
func (p *PolygonBuilder) AddVec(x sat.Vec) *polygonVertex {
	p.vlist = append(p.vlist, polygonVertex{vertex: x.R2()})
	return &p.vlist[len(p.vlist)-1]
}

// AddVecSet adds a set of vertices to a polygon.
func (p *PolygonBuilder) AddVecSet(x []sat.Vec) {
	for _, v := range x {
		p.AddVec(v)
	}
}

// Add an x,y vertex to a polygon.
func (p *PolygonBuilder) Add(x, y float64) *polygonVertex {
	return p.AddVec(sat.Vec{X: x, Y: y})
}

// Drop the last vertex from the list.
func (p *PolygonBuilder) Drop() {
	p.vlist = p.vlist[:len(p.vlist)-1]
}

// Vertices returns the vertices of the polygon.
func (p *PolygonBuilder) Vertices() []sat.Vec {
	if len(p.vlist) < 3 {
		panic("number of vertices < 3")
	}
	p.relToAbs()
	p.smoothVertices()
	n := len(p.vlist)
	v := make([]sat.Vec, n)
	if p.reverse {
		for i, pv := range p.vlist {
			v[n-1-i] = sat.Vec(pv.vertex)
		}
	} else {
		for i, pv := range p.vlist {
			v[i] = sat.Vec(pv.vertex)
		}
	}
	return v
}

// Polygon returns the built polygon positioned at pos.
func (p *PolygonBuilder) Polygon(pos sat.Vec) sat.Polygon {
	return Polygon(pos, p.Vertices())
}

func sign(f float64) float64 {
	if f == 0 {
		return 0
	}
	return math.Copysign(1, f)
}
