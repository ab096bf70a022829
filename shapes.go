package sat

import (
	"math"

	"github.com/soypat/sat/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon is a convex polygon. Points are in local coordinates and are
// offset by Position before any test. The point sequence is cyclic: edge i
// joins Points[i] and Points[(i+1)%n].
type Polygon struct {
	Position Vec   `json:"position" yaml:"position"`
	Points   []Vec `json:"points" yaml:"points"`
}

// Box is an axis aligned box with its minimum corner at Position.
type Box struct {
	Position Vec     `json:"position" yaml:"position"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
}

// Circle is a circle centered at Pos.
type Circle struct {
	Pos    Vec     `json:"pos" yaml:"pos"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// ToPolygon returns the box as a polygon with local corners
// (0,0), (w,0), (w,h), (0,h) in that order.
func (b Box) ToPolygon() Polygon {
	corners := d2.Box{Max: r2.Vec{X: b.Width, Y: b.Height}}.Vertices()
	return Polygon{
		Position: b.Position,
		Points:   fromSet(corners),
	}
}

// Validate checks the box has finite position and non-negative dimensions.
func (b Box) Validate() error {
	if !b.Position.IsFinite() || !isFinite(b.Width) || !isFinite(b.Height) {
		return ErrNonFinite
	}
	if b.Width < 0 || b.Height < 0 {
		return ErrNegativeDimension
	}
	return nil
}

// BoundingBox returns the box of side 2*radius centered on the circle.
// Circles do not take part in the separating axis test; callers wanting
// an approximate test may use BoundingBox().ToPolygon().
func (c Circle) BoundingBox() Box {
	corner := c.Pos.Sub(Vec{X: c.Radius, Y: c.Radius})
	return Box{Position: corner, Width: 2 * c.Radius, Height: 2 * c.Radius}
}

// Validate checks the circle has a finite center and a non-negative radius.
func (c Circle) Validate() error {
	if !c.Pos.IsFinite() || !isFinite(c.Radius) {
		return ErrNonFinite
	}
	if c.Radius < 0 {
		return ErrNegativeDimension
	}
	return nil
}

// Validate checks the polygon has at least 3 points and finite coordinates.
// Convexity and winding are not checked.
func (p Polygon) Validate() error {
	if len(p.Points) < 3 {
		return ErrTooFewPoints
	}
	if !p.Position.IsFinite() {
		return ErrNonFinite
	}
	for _, v := range p.Points {
		if !v.IsFinite() {
			return ErrNonFinite
		}
	}
	return nil
}

// Clone returns a deep copy of p.
func (p Polygon) Clone() Polygon {
	return p.WithPoints(p.Points)
}

// WithPoints returns a copy of p with its points replaced by a copy of points.
func (p Polygon) WithPoints(points []Vec) Polygon {
	var pts []Vec
	if points != nil {
		pts = make([]Vec, len(points))
		copy(pts, points)
	}
	return Polygon{Position: p.Position, Points: pts}
}

// Translate returns a copy of p moved by v.
func (p Polygon) Translate(v Vec) Polygon {
	c := p.Clone()
	c.Position = p.Position.Add(v)
	return c
}

// Rotate returns a copy of p with its local points rotated by angle
// radians about the local origin. Position is unchanged.
func (p Polygon) Rotate(angle float64) Polygon {
	pts := make([]Vec, len(p.Points))
	for i, v := range p.Points {
		pts[i] = v.Rotate(angle)
	}
	return Polygon{Position: p.Position, Points: pts}
}

// WorldPoints returns the polygon points offset by Position.
func (p Polygon) WorldPoints() []Vec {
	return fromSet(p.set().Translate(p.Position.R2()))
}

// Edges returns the edge vectors Points[(i+1)%n] - Points[i].
func (p Polygon) Edges() []Vec {
	n := len(p.Points)
	edges := make([]Vec, n)
	for i := range p.Points {
		edges[i] = p.Points[(i+1)%n].Sub(p.Points[i])
	}
	return edges
}

// Normals returns one unit normal per edge in edge order. Parallel normals
// are not merged so every edge yields a candidate separating axis.
func (p Polygon) Normals() []Vec {
	edges := p.Edges()
	for i := range edges {
		edges[i] = edges[i].Perp().Normalise()
	}
	return edges
}

// BoundingBox returns the world space axis aligned bounding box of p.
// p must have at least one point.
func (p Polygon) BoundingBox() Box {
	bb := p.set().Bounds().Translate(p.Position.R2())
	size := bb.Size()
	return Box{Position: fromR2(bb.Min), Width: size.X, Height: size.Y}
}

// Centroid returns the area weighted centroid of p in world space.
// Degenerate polygons of zero area return the mean of their points.
func (p Polygon) Centroid() Vec {
	n := len(p.Points)
	if n == 0 {
		return p.Position
	}
	var cx, cy, area float64
	for i := range p.Points {
		a, b := p.Points[i], p.Points[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
		area += cross
	}
	if area == 0 {
		var sum Vec
		for _, v := range p.Points {
			sum = sum.Add(v)
		}
		return p.Position.Add(sum.Scale(1 / float64(n)))
	}
	// area holds twice the signed area.
	return p.Position.Add(Vec{X: cx / (3 * area), Y: cy / (3 * area)})
}

func (p Polygon) set() d2.Set {
	s := make(d2.Set, len(p.Points))
	for i, v := range p.Points {
		s[i] = v.R2()
	}
	return s
}

func fromSet(s d2.Set) []Vec {
	vs := make([]Vec, len(s))
	for i, v := range s {
		vs[i] = fromR2(v)
	}
	return vs
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
