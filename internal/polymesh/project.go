package polymesh

import (
	"fmt"
	"math"

	"github.com/arl/geosurvey/internal/voronoi"
)

// Basis is the tangent-plane projection basis at the polygon centroid:
// east/north span the plane, normal points away from the body center.
type Basis struct {
	East, North, Normal Vec3
}

// Projection is the result of projecting a polygon's 3D corners onto the
// tangent plane at their centroid.
type Projection struct {
	Sites []voronoi.Site
	Basis Basis
	Centroid Vec3
	MaxDist float64 // the 1.2x-safety-margined normalization divisor
}

// ErrPolygonTooLarge is returned when the corners span more than one
// hemisphere.
type ErrPolygonTooLarge struct{ Dist, Radius float64 }

func (e ErrPolygonTooLarge) Error() string {
	return fmt.Sprintf("polygon too large: farthest corner is %.6g from centroid, body radius is %.6g", e.Dist, e.Radius)
}

// ErrInputDegenerate is returned for fewer than 3 distinct corners.
type ErrInputDegenerate struct{ N int }

func (e ErrInputDegenerate) Error() string {
	return fmt.Sprintf("input degenerate: %d distinct corner(s), need at least 3", e.N)
}

// Project implements: compute the Euclidean centroid and its
// normalized direction n, verify all corners lie within one hemisphere of
// n, build a deterministic tangent basis, and project+normalize every
// corner into the unit disk with a 1.2x safety margin.
func Project(corners []Vec3, radius float64) (Projection, error) {
	if len(corners) < 3 {
		return Projection{}, ErrInputDegenerate{N: len(corners)}
	}

	centroid := Vec3{}
	for _, p := range corners {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float64(len(corners)))

	n := centroid.Normalize()
	if !n.IsFinite() || n.Len() < 0.5 {
		return Projection{}, ErrInputDegenerate{N: len(corners)}
	}

	d := 0.0
	for _, p := range corners {
		dist := p.Sub(centroid).Len()
		if dist > d {
			d = dist
		}
	}
	if d > radius {
		return Projection{}, ErrPolygonTooLarge{Dist: d, Radius: radius}
	}

	basis := tangentBasis(n)

	// The 1.2 factor gives a safety margin keeping all coordinates
	// strictly inside the unit disk; without it the breakpoint
	// arithmetic becomes unstable at the horizon.
	var maxDist float64
	if d < 1e-12 {
		maxDist = radius
	} else {
		denom := math.Sqrt(math.Max(radius*radius-d*d, 1e-12))
		maxDist = 1.2 * radius * d / denom
	}

	sites := make([]voronoi.Site, 0, len(corners))
	for _, p := range corners {
		flat := p.Sub(centroid)
		x := flat.Dot(basis.East) / maxDist
		y := flat.Dot(basis.North) / maxDist
		if len(sites) > 0 {
			last := sites[len(sites)-1]
			if math.Hypot(x-last.X, y-last.Y) < 1e-12 {
				continue // drop duplicate consecutive points
			}
		}
		sites = append(sites, voronoi.Site{X: x, Y: y})
	}
	// A closing duplicate (first == last) is also dropped.
	if len(sites) > 1 {
		first, last := sites[0], sites[len(sites)-1]
		if math.Hypot(first.X-last.X, first.Y-last.Y) < 1e-12 {
			sites = sites[:len(sites)-1]
		}
	}
	for i := range sites {
		sites[i].Addr = i
	}
	if len(sites) < 3 {
		return Projection{}, ErrInputDegenerate{N: len(sites)}
	}

	return Projection{Sites: sites, Basis: basis, Centroid: centroid, MaxDist: maxDist}, nil
}

// tangentBasis builds (east, north, normal) deterministically from the
// unit vector n, following: when n.y == 0 pick north =
// (0,1,0); otherwise solve n.y*yNorth = n.x^2+n.z^2 and normalize, then
// flip for the southern hemisphere so the y-axis stays consistent.
func tangentBasis(n Vec3) Basis {
	var north Vec3
	if n.Y == 0 {
		north = Vec3{0, 1, 0}
	} else {
		yNorth := (n.X*n.X + n.Z*n.Z) / n.Y
		north = Vec3{-n.X, yNorth, -n.Z}.Normalize()
		if n.Y < 0 {
			north = north.Scale(-1)
		}
	}
	east := n.Cross(north).Scale(-1).Normalize()
	return Basis{East: east, North: north, Normal: n}
}
