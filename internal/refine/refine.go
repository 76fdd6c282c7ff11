// Package refine implements the adaptive refiner: for
// each interior triangle of the first triangulation, it repeatedly
// re-triangulates the triangle's growing site set, splitting sub-
// triangles that are either too sleek (near-degenerate angles) or whose
// terrain varies too sharply along an edge, until a point budget or
// attempt cap is reached.
package refine

import (
	"math"

	assert "github.com/arl/assertgo"
	"github.com/arl/geosurvey/internal/polymesh"
	"github.com/arl/geosurvey/internal/surface"
	"github.com/arl/geosurvey/internal/voronoi"
)

// Settings bounds one refinement run.
type Settings struct {
	HeightDiff float64 // >= 1.0, default 1.002
	SleeknessDeg float64 // 0 < theta < 60, default 15
	MaxAttempt int // >= 1, default 10
	MaxPoints int // >= N, default 1000, shared across all triangles
}

// Result is one triangle's refinement outcome.
type Result struct {
	Sites []voronoi.Site
	Triangulation voronoi.Result
	Attempts int
	TooManyAdded bool // the sleekness pass hit its 1.5x early-exit at least once
}

// Refiner drives adaptive refinement across every interior triangle of
// one polygon session, sharing a single point budget between them.
type Refiner struct {
	Settings Settings
	Body surface.Body
	Proj polymesh.Projection
	R float64
	HeightScale float64

	totalPoints int
}

// NewRefiner builds a Refiner whose point budget already counts
// seedPoints sites (Compute passes the boundary's site count: the polygon
// corners plus any points inserted by edge recovery).
func NewRefiner(settings Settings, body surface.Body, proj polymesh.Projection, r, heightScale float64, seedPoints int) *Refiner {
	return &Refiner{Settings: settings, Body: body, Proj: proj, R: r, HeightScale: heightScale, totalPoints: seedPoints}
}

// TotalPoints is the running count of sites charged to the point budget:
// the seed count plus every refinement site added so far across every
// triangle this Refiner has processed.
func (rf *Refiner) TotalPoints() int { return rf.totalPoints }

// RefineTriangle implements the outer loop for one interior
// triangle: seed cornersFine with the triangle's three vertices, then
// alternate sleekness and terrain-mismatch passes until neither pass
// adds a point, the attempt budget is spent, or the global point budget
// is exhausted.
func (rf *Refiner) RefineTriangle(tri voronoi.Triangle) Result {
	sites := renumber([]voronoi.Site{tri.A, tri.B, tri.C})
	seen := make(map[[2]int64]bool)

	theta := rf.Settings.SleeknessDeg * math.Pi / 180
	var local voronoi.Result
	attempts := 0
	tooMany := false

	for attempts = 1; attempts <= rf.Settings.MaxAttempt; attempts++ {
		local = voronoi.Compute(sites)

		prevCount := len(sites)
		sleekAdds, exhaustedSleek := sleeknessPass(local.Triangles, theta, prevCount, seen)
		if exhaustedSleek {
			tooMany = true
		}
		sites = appendSites(sites, sleekAdds)

		terrainAdds := rf.terrainMismatchPass(local, seen)
		sites = appendSites(sites, terrainAdds)

		added := len(sleekAdds) + len(terrainAdds)
		rf.totalPoints += added
		assert.True(rf.totalPoints >= 0, "totalPoints went negative: %d", rf.totalPoints)

		if added == 0 || rf.totalPoints >= rf.Settings.MaxPoints {
			break
		}
		sites = renumber(sites)
	}

	local = voronoi.Compute(sites)
	return Result{Sites: sites, Triangulation: local, Attempts: attempts, TooManyAdded: tooMany}
}

func renumber(sites []voronoi.Site) []voronoi.Site {
	out := make([]voronoi.Site, len(sites))
	copy(out, sites)
	for i := range out {
		out[i].Addr = i
	}
	return out
}

func appendSites(sites []voronoi.Site, adds []voronoi.Site) []voronoi.Site {
	if len(adds) == 0 {
		return sites
	}
	out := append(sites, adds...)
	return renumber(out)
}

func midpointKey(x, y float64) [2]int64 {
	const scale = 1e9
	return [2]int64{int64(math.Round(x * scale)), int64(math.Round(y * scale))}
}

// sleeknessPass implements step 1: for each sub-triangle,
// test its sides against theta and insert the midpoint of the offending
// longest side, deduplicated via seen. exhausted reports the 1.5x
// early-exit.
func sleeknessPass(tris []voronoi.Triangle, theta float64, prevCount int, seen map[[2]int64]bool) (added []voronoi.Site, exhausted bool) {
	sinTheta := math.Sin(theta)
	cosTheta := math.Cos(theta)
	limit := int(1.5 * float64(prevCount))

	for _, tr := range tris {
		dA := dist(tr.B, tr.C) // side opposite A
		dB := dist(tr.C, tr.A) // side opposite B
		dC := dist(tr.A, tr.B) // side opposite C
		sides := [3]float64{dA, dB, dC}

		sleek := false
		shortest, longest := sides[0], sides[0]
		longestIdx := 0
		for i, s := range sides {
			if s < shortest {
				shortest = s
			}
			if s > longest {
				longest = s
				longestIdx = i
			}
		}
		if sinTheta > 1e-12 && shortest*(1/sinTheta) < longest {
			sleek = true
		}
		perms := [3][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}
		for _, p := range perms {
			a, b, c := sides[p[0]], sides[p[1]], sides[p[2]]
			if cosTheta > 1e-12 && a+b < c*(1/cosTheta) {
				sleek = true
			}
		}
		if !sleek {
			continue
		}

		var p1, p2 voronoi.Site
		switch longestIdx {
		case 0:
			p1, p2 = tr.B, tr.C
		case 1:
			p1, p2 = tr.C, tr.A
		default:
			p1, p2 = tr.A, tr.B
		}
		mx, my := (p1.X+p2.X)/2, (p1.Y+p2.Y)/2
		key := midpointKey(mx, my)
		if seen[key] {
			continue
		}
		seen[key] = true
		added = append(added, voronoi.Site{X: mx, Y: my})

		if len(added) > limit {
			return added, true
		}
	}
	return added, false
}

func dist(a, b voronoi.Site) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// terrainMismatchPass implements step 2: for each
// sub-Delaunay edge, sample height at the endpoints and the midpoint
// (plus trisecting and quartering points, folded into the same
// midpoint-insertion outcome as the ratio test), inserting the midpoint
// when the ratio exceeds HeightDiff.
func (rf *Refiner) terrainMismatchPass(local voronoi.Result, seen map[[2]int64]bool) []voronoi.Site {
	var added []voronoi.Site
	for _, e := range local.DelaunayEdges {
		h1, ok1 := rf.heightAt(e.A.X, e.A.Y)
		h2, ok2 := rf.heightAt(e.B.X, e.B.Y)
		if !ok1 || !ok2 {
			continue
		}

		fractions := []float64{0.5, 1.0 / 3, 2.0 / 3, 0.25, 0.75}
		mismatched := false
		var mx, my float64
		for _, f := range fractions {
			px := e.A.X + f*(e.B.X-e.A.X)
			py := e.A.Y + f*(e.B.Y-e.A.Y)
			hMid, ok := rf.heightAt(px, py)
			if !ok {
				continue
			}
			meanEnds := (h1 + h2) / 2
			hi, lo := math.Max(hMid, meanEnds), math.Min(hMid, meanEnds)
			if lo < 1e-12 {
				continue
			}
			if hi/lo > rf.Settings.HeightDiff {
				mismatched = true
				if f == 0.5 {
					mx, my = px, py
				}
			}
		}
		if !mismatched {
			continue
		}
		if mx == 0 && my == 0 {
			mx, my = (e.A.X+e.B.X)/2, (e.A.Y+e.B.Y)/2
		}
		key := midpointKey(mx, my)
		if seen[key] {
			continue
		}
		seen[key] = true
		added = append(added, voronoi.Site{X: mx, Y: my})
	}
	return added
}

func (rf *Refiner) heightAt(xp, yp float64) (float64, bool) {
	flat := surface.Lift(rf.Proj, xp, yp, rf.R)
	if !flat.IsFinite() {
		return 0, false
	}
	lng, lat := surface.FromCartesian(flat, rf.R)
	h := rf.Body.Height(lng, lat)
	if math.IsNaN(h) {
		return 0, false
	}
	return h * rf.HeightScale, true
}
