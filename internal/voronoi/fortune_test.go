package voronoi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sitesFromCoords(coords [][2]float64) []Site {
	sites := make([]Site, len(coords))
	for i, c := range coords {
		sites[i] = Site{X: c[0], Y: c[1], Addr: i}
	}
	return sites
}

// Every site's address appears in the Delaunay edge set, and triangle
// addresses are a subset of {0..N-1}. invariant 1.
func TestComputeEverySiteHasAnEdge(t *testing.T) {
	sites := sitesFromCoords([][2]float64{
		{0, 0}, {4, 0}, {2, 4}, {2, 2}, {6, 3}, {1, 5},
	})
	res := Compute(sites)

	seen := make(map[int]bool)
	for _, e := range res.DelaunayEdges {
		seen[e.A.Addr] = true
		seen[e.B.Addr] = true
	}
	for _, s := range sites {
		assert.True(t, seen[s.Addr], "site %d missing from Delaunay edges", s.Addr)
	}

	for _, tr := range res.Triangles {
		for _, a := range []int{tr.A.Addr, tr.B.Addr, tr.C.Addr} {
			assert.True(t, a >= 0 && a < len(sites), "triangle addr %d out of range", a)
		}
	}
}

// Voronoi edges are finite after finish. invariant 2.
func TestComputeVoronoiEdgesFinite(t *testing.T) {
	sites := sitesFromCoords([][2]float64{
		{0, 0}, {5, 1}, {2, 6}, {8, 8}, {-3, 4},
	})
	res := Compute(sites)
	require.NotEmpty(t, res.VoronoiEdges)
	for _, e := range res.VoronoiEdges {
		assert.False(t, math.IsNaN(e.A.X) || math.IsNaN(e.A.Y))
		assert.False(t, math.IsInf(e.A.X, 0) || math.IsInf(e.A.Y, 0))
		assert.False(t, math.IsNaN(e.B.X) || math.IsNaN(e.B.Y))
		assert.False(t, math.IsInf(e.B.X, 0) || math.IsInf(e.B.Y, 0))
	}
}

// Three collinear sites must not produce a circle event (infinite
// circumradius); the sweep still terminates.
func TestComputeCollinearSitesTerminates(t *testing.T) {
	sites := sitesFromCoords([][2]float64{{0, 0}, {1, 0}, {2, 0}})
	assert.NotPanics(t, func() {
		res := Compute(sites)
		assert.NotEmpty(t, res.DelaunayEdges)
	})
}

func TestComputeSingleSite(t *testing.T) {
	sites := sitesFromCoords([][2]float64{{1, 1}})
	res := Compute(sites)
	assert.Empty(t, res.DelaunayEdges)
	assert.Empty(t, res.Triangles)
}

func TestDedupe(t *testing.T) {
	in := []Site{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}, {X: 2, Y: 2}}
	out := Dedupe(in)
	require.Len(t, out, 3)
	for i, s := range out {
		assert.Equal(t, i, s.Addr)
	}
}
