package sat

// Tracer receives diagnostic events while a Tester runs. Implementations
// must not retain or modify the polygons referenced by a Response.
type Tracer interface {
	// TraceAxis is called once per candidate axis, in evaluation order.
	// separated is true if the axis separates the shapes, in which case res is zero.
	TraceAxis(i int, axis Vec, res AxisResult, separated bool)
	// TraceResponse is called once per test with its outcome.
	TraceResponse(r Response, ok bool)
}

// TracerFuncs adapts plain functions to a Tracer. Nil fields are skipped.
type TracerFuncs struct {
	Axis     func(i int, axis Vec, res AxisResult, separated bool)
	Response func(r Response, ok bool)
}

func (t TracerFuncs) TraceAxis(i int, axis Vec, res AxisResult, separated bool) {
	if t.Axis != nil {
		t.Axis(i, axis, res, separated)
	}
}

func (t TracerFuncs) TraceResponse(r Response, ok bool) {
	if t.Response != nil {
		t.Response(r, ok)
	}
}
