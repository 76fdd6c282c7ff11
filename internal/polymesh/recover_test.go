package polymesh

import (
	"testing"

	"github.com/arl/geosurvey/internal/voronoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(addrBase int) []voronoi.Site {
	return []voronoi.Site{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
}

// A convex polygon's edge recovery terminates in exactly one iteration.
// invariant 3.
func TestRecoverConvexOneIteration(t *testing.T) {
	res := Recover(square(0))
	require.False(t, res.Exhausted)
	assert.Equal(t, 1, res.Iterations)
}

// A concave (U-shaped) polygon needs intersection insertion but must
// still recover within the iteration cap. boundary scenario 4.
func TestRecoverConcaveUShape(t *testing.T) {
	u := []voronoi.Site{
		{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 3}, {X: 2, Y: 3},
		{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 3}, {X: 0, Y: 3},
	}
	res := Recover(u)
	assert.LessOrEqual(t, res.Iterations, MaxEdgeRecoveryIterations)
	present := boundaryEdgesPresent(renumber(u), res.Triangulation.DelaunayEdges)
	if !res.Exhausted {
		assert.True(t, allTrue(present) || len(res.Boundary) > len(u))
	}
}

func TestSegSegIntersect(t *testing.T) {
	tt, u, ok := segSegIntersect(0, 0, 2, 2, 0, 2, 2, 0)
	require.True(t, ok)
	assert.InDelta(t, 0.5, tt, 1e-9)
	assert.InDelta(t, 0.5, u, 1e-9)

	_, _, ok = segSegIntersect(0, 0, 1, 0, 0, 1, 1, 1)
	assert.False(t, ok, "parallel segments must not report an intersection")
}

func TestInteriorTrianglesDropsOutside(t *testing.T) {
	boundary := []voronoi.Site{
		{X: 0, Y: 0, Addr: 0}, {X: 2, Y: 0, Addr: 1}, {X: 2, Y: 2, Addr: 2}, {X: 0, Y: 2, Addr: 3},
	}
	inside := voronoi.Triangle{A: voronoi.Site{X: 0.5, Y: 0.5}, B: voronoi.Site{X: 1, Y: 0.5}, C: voronoi.Site{X: 0.5, Y: 1}}
	outside := voronoi.Triangle{A: voronoi.Site{X: 3, Y: 3}, B: voronoi.Site{X: 4, Y: 3}, C: voronoi.Site{X: 3, Y: 4}}

	kept := InteriorTriangles(boundary, []voronoi.Triangle{inside, outside})
	require.Len(t, kept, 1)
	assert.Equal(t, inside, kept[0])
}
