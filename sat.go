/*
Package sat implements the separating axis theorem for convex 2D polygons.

Two convex shapes are disjoint if and only if some axis exists onto which
their projections do not overlap. For polygons it is enough to try the edge
normals of both shapes. When no separating axis is found the axis of least
penetration gives the minimum translation vector that separates the shapes.

The axis is an edge normal of either shape and is not oriented from A to B,
so the vector may point into A. Orient it before pushing the shapes apart:

	a := sat.Box{Position: sat.V(0, 0), Width: 40, Height: 40}.ToPolygon()
	b := sat.Polygon{Position: sat.V(-20, 0), Points: []sat.Vec{{0, 0}, {30, 0}, {0, 30}}}
	if r, ok := sat.Test(a, b); ok {
		push := r.OverlapV
		if push.Dot(b.Centroid().Sub(a.Centroid())) < 0 {
			push = push.Reverse()
		}
		b = b.Translate(push) // b now touches a.
	}

All types are values and all functions are pure, so they may be called
concurrently without synchronization.
*/
package sat

// Response describes the collision of polygon A with polygon B.
type Response struct {
	A Polygon `json:"a"`
	B Polygon `json:"b"`
	// OverlapN is the unit axis of least penetration. Its sign follows the
	// edge it came from, not the relative position of A and B.
	OverlapN Vec `json:"overlap_n"`
	// OverlapV is OverlapN scaled by Overlap.
	OverlapV Vec     `json:"overlap_v"`
	Overlap  float64 `json:"overlap"`
	// AInB is true if A is contained in B along every axis.
	AInB bool `json:"a_in_b"`
	// BInA is true if B is contained in A along every axis.
	BInA bool `json:"b_in_a"`
}

var defaultTester = &Tester{cfg: DefaultConfig()}

// Test tests polygons a and b for collision with the default configuration.
// ok is false if the polygons do not overlap.
func Test(a, b Polygon) (r Response, ok bool) {
	return defaultTester.test(a, b)
}

// PointInPolygon tests a 1x1 box positioned at p against poly.
// ok is true if the point lies inside poly or on its boundary.
func PointInPolygon(p Vec, poly Polygon) (r Response, ok bool) {
	return defaultTester.test(unitSquare(p), poly)
}

// PointInCircle returns true if p lies inside or on the boundary of c.
func PointInCircle(p Vec, c Circle) bool {
	return dist2(p, c.Pos) <= c.Radius*c.Radius
}

// Axes returns the candidate separating axes of a and b: the normals of a
// followed by the normals of b. Its length is always len(a.Points)+len(b.Points).
func Axes(a, b Polygon) []Vec {
	return append(a.Normals(), b.Normals()...)
}

// Tester runs separating axis tests with a fixed configuration.
// A Tester is immutable and safe for concurrent use.
type Tester struct {
	cfg    Config
	tracer Tracer
}

// Option configures a Tester.
type Option func(*Tester)

// WithTracer sets a tracer receiving every axis result and response.
func WithTracer(t Tracer) Option {
	return func(tt *Tester) { tt.tracer = t }
}

// NewTester returns a Tester for cfg.
func NewTester(cfg Config, opts ...Option) (*Tester, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	t := &Tester{cfg: cfg}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Config returns the configuration of t.
func (t *Tester) Config() Config { return t.cfg }

// Test tests polygons a and b for collision. When the configuration has
// Validate set, malformed polygons yield a *ValidationError.
// A nil error with ok false means the polygons do not collide.
func (t *Tester) Test(a, b Polygon) (r Response, ok bool, err error) {
	if t.cfg.Validate {
		if err = a.Validate(); err != nil {
			return r, false, &ValidationError{Shape: "a", Err: err}
		}
		if err = b.Validate(); err != nil {
			return r, false, &ValidationError{Shape: "b", Err: err}
		}
	}
	r, ok = t.test(a, b)
	return r, ok, nil
}

// PointInPolygon is the Tester counterpart of the package level PointInPolygon.
func (t *Tester) PointInPolygon(p Vec, poly Polygon) (r Response, ok bool, err error) {
	if t.cfg.Validate && !p.IsFinite() {
		return r, false, &ValidationError{Shape: "point", Err: ErrNonFinite}
	}
	return t.Test(unitSquare(p), poly)
}

func (t *Tester) test(a, b Polygon) (Response, bool) {
	axes := Axes(a, b)
	results := make([]AxisResult, 0, len(axes))
	separated := len(axes) == 0
	// Every axis is evaluated even once a separating axis is found.
	for i, axis := range axes {
		res, ok := SeparatingAxis(a.Position, b.Position, a.Points, b.Points, axis)
		if t.tracer != nil {
			t.tracer.TraceAxis(i, axis, res, !ok)
		}
		if !ok {
			separated = true
			continue
		}
		results = append(results, res)
	}
	if separated {
		if t.tracer != nil {
			t.tracer.TraceResponse(Response{}, false)
		}
		return Response{}, false
	}

	aInB, bInA := true, true
	min := results[0]
	for i, res := range results {
		aInB = aInB && res.AInB
		bInA = bInA && res.BInA
		if i > 0 && t.cfg.less(res.Overlap, min.Overlap) {
			min = res
		}
	}
	r := Response{
		A:        a.Clone(),
		B:        b.Clone(),
		OverlapN: min.Axis,
		OverlapV: min.Axis.Scale(min.Overlap),
		Overlap:  min.Overlap,
		AInB:     aInB,
		BInA:     bInA,
	}
	if t.tracer != nil {
		t.tracer.TraceResponse(r, true)
	}
	return r, true
}

func unitSquare(p Vec) Polygon {
	return Box{Position: p, Width: 1, Height: 1}.ToPolygon()
}
