package polymesh

import (
	"math"

	"github.com/arl/geosurvey/internal/voronoi"
)

// pointInPolygonEpsilon is the fuzzy band applied to near-edge cases of
// the point-in-polygon test. It is absolute in projected-plane
// coordinates rather than scaled by maxDist; see DESIGN.md.
const pointInPolygonEpsilon = 0.001

// InteriorTriangles keeps only the Delaunay triangles whose centroid
// falls inside (or within the fuzzy band of) the boundary polygon,
// discarding triangles that cover area outside the user's polygon.
func InteriorTriangles(boundary []voronoi.Site, triangles []voronoi.Triangle) []voronoi.Triangle {
	out := make([]voronoi.Triangle, 0, len(triangles))
	for _, tr := range triangles {
		cx := (tr.A.X + tr.B.X + tr.C.X) / 3
		cy := (tr.A.Y + tr.B.Y + tr.C.Y) / 3
		if pointInPolygon(cx, cy, boundary) {
			out = append(out, tr)
		}
	}
	return out
}

// pointInPolygon is the standard half-line crossing test, augmented with
// a fuzzy band: a point within pointInPolygonEpsilon of any boundary
// edge counts as interior, since it is almost certainly a triangle
// centroid straddling a recovered polygon edge rather than one genuinely
// outside.
func pointInPolygon(x, y float64, poly []voronoi.Site) bool {
	n := len(poly)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y

		if distToSegment(x, y, xi, yi, xj, yj) < pointInPolygonEpsilon {
			return true
		}

		if (yi > y) != (yj > y) {
			xCross := (xj-xi)*(y-yi)/(yj-yi) + xi
			if x < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

func distToSegment(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq < 1e-18 {
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx, cy := ax+t*dx, ay+t*dy
	return math.Hypot(px-cx, py-cy)
}
