package sat_test

import (
	"math"
	"testing"

	"github.com/soypat/sat"
	"github.com/stretchr/testify/require"
)

func TestBoxToPolygon(t *testing.T) {
	p := sat.Box{Position: sat.V(3, 4), Width: 20, Height: 10}.ToPolygon()
	require.Equal(t, sat.V(3, 4), p.Position)
	require.Equal(t, []sat.Vec{{0, 0}, {20, 0}, {20, 10}, {0, 10}}, p.Points)
}

func TestCircleBoundingBox(t *testing.T) {
	c := sat.Circle{Pos: sat.V(100, 100), Radius: 20}
	require.Equal(t, sat.Box{Position: sat.V(80, 80), Width: 40, Height: 40}, c.BoundingBox())
}

func TestNormals(t *testing.T) {
	normals := square().Normals()
	require.Equal(t, []sat.Vec{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}, normals)

	// Opposite edges of a box give parallel normals, both are kept.
	require.Len(t, sat.Box{Width: 1, Height: 1}.ToPolygon().Normals(), 4)

	for _, n := range triangle().Normals() {
		require.InDelta(t, 1, n.Len(), 1e-12)
	}
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, square().Validate())
	require.ErrorIs(t, sat.Polygon{Points: []sat.Vec{{0, 0}, {1, 0}}}.Validate(), sat.ErrTooFewPoints)
	require.ErrorIs(t, sat.Polygon{Points: []sat.Vec{{0, 0}, {1, math.NaN()}, {0, 1}}}.Validate(), sat.ErrNonFinite)

	require.NoError(t, sat.Box{Width: 1}.Validate())
	require.ErrorIs(t, sat.Box{Width: -1}.Validate(), sat.ErrNegativeDimension)
	require.ErrorIs(t, sat.Box{Height: math.Inf(1)}.Validate(), sat.ErrNonFinite)

	require.NoError(t, sat.Circle{Radius: 0}.Validate())
	require.ErrorIs(t, sat.Circle{Radius: -2}.Validate(), sat.ErrNegativeDimension)
	require.ErrorIs(t, sat.Circle{Pos: sat.V(math.NaN(), 0)}.Validate(), sat.ErrNonFinite)
}

func TestPolygonCopies(t *testing.T) {
	pts := []sat.Vec{{0, 0}, {1, 0}, {0, 1}}
	p := sat.Polygon{Points: pts}.WithPoints(pts)
	pts[0] = sat.V(9, 9)
	require.Equal(t, sat.V(0, 0), p.Points[0])

	moved := p.Translate(sat.V(2, 3))
	require.Equal(t, sat.V(2, 3), moved.Position)
	require.Equal(t, sat.Vec{}, p.Position)
	require.Equal(t, []sat.Vec{{2, 3}, {3, 3}, {2, 4}}, moved.WorldPoints())

	rotated := p.Rotate(math.Pi)
	require.True(t, rotated.Points[1].Equal(sat.V(-1, 0), 1e-12))
	require.Equal(t, sat.V(1, 0), p.Points[1])
}

func TestCentroid(t *testing.T) {
	c := square().Centroid()
	require.InDelta(t, 20, c.X, 1e-12)
	require.InDelta(t, 20, c.Y, 1e-12)

	tri := sat.Polygon{Points: []sat.Vec{{0, 0}, {100, 0}, {50, 99}}}
	c = tri.Centroid()
	require.InDelta(t, 50, c.X, 1e-12)
	require.InDelta(t, 33, c.Y, 1e-12)

	// World space.
	c = triangle().Centroid()
	require.InDelta(t, 40, c.X, 1e-12)
	require.InDelta(t, 10, c.Y, 1e-12)
}

func TestPolygonBoundingBox(t *testing.T) {
	require.Equal(t, sat.Box{Position: sat.V(30, 0), Width: 30, Height: 30}, triangle().BoundingBox())
}
