// Package voronoi implements Fortune's sweep-line algorithm over a finite
// set of planar sites, producing the Voronoi diagram's dual Delaunay
// triangulation.
package voronoi

import "sort"

// Site is a 2D point with a stable address identifying its position in
// the input order. Addr is the site's identity in the engine's edge and
// boundary bookkeeping; the struct's == also compares X and Y.
type Site struct {
	X, Y float64
	Addr int
}

// bySweepOrder orders sites the way the sweep consumes them: y descending,
// x ascending on ties. The sweep proceeds from largest y to smallest.
type bySweepOrder []Site

func (s bySweepOrder) Len() int { return len(s) }
func (s bySweepOrder) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s bySweepOrder) Less(i, j int) bool {
	if s[i].Y != s[j].Y {
		return s[i].Y > s[j].Y
	}
	return s[i].X < s[j].X
}

// Dedupe removes sites with identical (x, y) coordinates, keeping the
// first occurrence, and reassigns sequential addresses 0..n-1 in the
// resulting order. Input order (not sweep order) is preserved.
func Dedupe(pts []Site) []Site {
	seen := make(map[[2]float64]bool, len(pts))
	out := make([]Site, 0, len(pts))
	for _, p := range pts {
		key := [2]float64{p.X, p.Y}
		if seen[key] {
			continue
		}
		seen[key] = true
		p.Addr = len(out)
		out = append(out, p)
	}
	return out
}

// sortedForSweep returns a copy of sites ordered for event-queue
// consumption, without touching their addresses.
func sortedForSweep(sites []Site) []Site {
	out := make([]Site, len(sites))
	copy(out, sites)
	sort.Sort(bySweepOrder(out))
	return out
}
