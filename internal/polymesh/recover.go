package polymesh

import (
	"math"
	"sort"

	"github.com/arl/geosurvey/internal/voronoi"
)

// MaxEdgeRecoveryIterations bounds the edge-recovery loop: the number of
// passes attempting to restore a missing polygon edge by inserting its
// intersection points with crossing triangulation edges before giving up. 5 is untested
// against adversarial concave/self-intersecting input; revisit if that
// turns out too low.
const MaxEdgeRecoveryIterations = 5

// RecoverResult is the repaired triangulation plus whether every polygon
// edge was successfully recovered.
type RecoverResult struct {
	Boundary []voronoi.Site // original corners plus any inserted intersection points, in cyclic order
	Triangulation voronoi.Result
	Iterations int
	Exhausted bool // EdgeRecoveryExhausted: best-effort triangulation, not all edges recovered
}

// Recover runs the edge-recovery loop: sweep, check every boundary edge
// is present in the Delaunay edge set, and if not, insert intersection
// points on the missing edges and re-sweep, up to
// MaxEdgeRecoveryIterations times.
func Recover(corners []voronoi.Site) RecoverResult {
	boundary := renumber(corners)

	var tri voronoi.Result
	for iter := 1; iter <= MaxEdgeRecoveryIterations; iter++ {
		tri = voronoi.Compute(boundary)

		present := boundaryEdgesPresent(boundary, tri.DelaunayEdges)
		if allTrue(present) {
			return RecoverResult{Boundary: boundary, Triangulation: tri, Iterations: iter}
		}

		if iter == MaxEdgeRecoveryIterations {
			return RecoverResult{Boundary: boundary, Triangulation: tri, Iterations: iter, Exhausted: true}
		}

		boundary = insertIntersections(boundary, present, tri.DelaunayEdges)
	}
	return RecoverResult{Boundary: boundary, Triangulation: tri, Iterations: MaxEdgeRecoveryIterations, Exhausted: true}
}

func renumber(sites []voronoi.Site) []voronoi.Site {
	out := make([]voronoi.Site, len(sites))
	copy(out, sites)
	for i := range out {
		out[i].Addr = i
	}
	return out
}

func allTrue(bs []bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}
	return true
}

// boundaryEdgesPresent reports, for every consecutive pair in boundary
// (cyclically), whether the Delaunay edge set contains an edge joining
// them.
func boundaryEdgesPresent(boundary []voronoi.Site, edges []voronoi.DelaunayEdge) []bool {
	has := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		if e.A.Addr < e.B.Addr {
			has[[2]int{e.A.Addr, e.B.Addr}] = true
		} else {
			has[[2]int{e.B.Addr, e.A.Addr}] = true
		}
	}
	n := len(boundary)
	present := make([]bool, n)
	for i := 0; i < n; i++ {
		a, b := boundary[i].Addr, boundary[(i+1)%n].Addr
		if a > b {
			a, b = b, a
		}
		present[i] = has[[2]int{a, b}]
	}
	return present
}

// insertIntersections finds, for each missing boundary edge, every
// segment-segment intersection with the current Delaunay edge set (using
// a closed-form line intersection with a 1% safety band around the four
// endpoints), sorts the hits along the missing edge, and splices them
// into the boundary.
func insertIntersections(boundary []voronoi.Site, present []bool, edges []voronoi.DelaunayEdge) []voronoi.Site {
	n := len(boundary)
	type insertion struct {
		afterIdx int // insert after boundary[afterIdx] in the ORIGINAL indexing
		t float64
		pt [2]float64
	}
	var insertions []insertion

	for i := 0; i < n; i++ {
		if present[i] {
			continue
		}
		p := boundary[i]
		q := boundary[(i+1)%n]

		var hits []insertion
		for _, e := range edges {
			// Skip edges that share an endpoint with the missing edge:
			// those intersect trivially at the shared vertex, not a new
			// Steiner point.
			if sharesAddr(e, p.Addr) || sharesAddr(e, q.Addr) {
				continue
			}
			t, u, ok := segSegIntersect(p.X, p.Y, q.X, q.Y, e.A.X, e.A.Y, e.B.X, e.B.Y)
			if !ok {
				continue
			}
			const band = 0.01
			if t < band || t > 1-band || u < band || u > 1-band {
				continue
			}
			x := p.X + t*(q.X-p.X)
			y := p.Y + t*(q.Y-p.Y)
			hits = append(hits, insertion{afterIdx: i, t: t, pt: [2]float64{x, y}})
		}
		sort.Slice(hits, func(a, b int) bool { return hits[a].t < hits[b].t })
		insertions = append(insertions, hits...)
	}

	if len(insertions) == 0 {
		return boundary
	}

	byEdge := make(map[int][]insertion)
	for _, ins := range insertions {
		byEdge[ins.afterIdx] = append(byEdge[ins.afterIdx], ins)
	}

	out := make([]voronoi.Site, 0, n+len(insertions))
	for i := 0; i < n; i++ {
		out = append(out, boundary[i])
		for _, ins := range byEdge[i] {
			out = append(out, voronoi.Site{X: ins.pt[0], Y: ins.pt[1]})
		}
	}
	return renumber(out)
}

func sharesAddr(e voronoi.DelaunayEdge, addr int) bool {
	return e.A.Addr == addr || e.B.Addr == addr
}

// segSegIntersect returns the parametric intersection (t along p1-p2, u
// along p3-p4) of two line segments, or ok=false when they're parallel.
func segSegIntersect(p1x, p1y, p2x, p2y, p3x, p3y, p4x, p4y float64) (t, u float64, ok bool) {
	dx1, dy1 := p2x-p1x, p2y-p1y
	dx2, dy2 := p4x-p3x, p4y-p3y

	denom := dx1*dy2 - dy1*dx2
	if math.Abs(denom) < 1e-14 {
		return 0, 0, false
	}
	dx3, dy3 := p1x-p3x, p1y-p3y
	t = (dx2*dy3 - dy2*dx3) / denom
	u = (dx1*dy3 - dy1*dx3) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, 0, false
	}
	return t, u, true
}
