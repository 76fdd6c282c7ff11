// Package planefit fits a least-squares plane through a set of 3D points.
// It is shared between the polygon volume integrator (internal/surface)
// and any dip/strike consumer, rather than each computing its own copy
// of the same normal-equation solve.
package planefit

import (
	"errors"
	"math"
)

// Vec3 is a 3D cartesian vector, kept local to this package to avoid a
// dependency on any particular caller's geometry types; callers convert
// at the boundary.
type Vec3 struct{ X, Y, Z float64 }

// Plane is a least-squares planar fit z = A*x + B*y + C, expressed in
// coordinates local to Centroid.
type Plane struct {
	A, B, C float64
	Centroid Vec3
}

// ErrDegenerate is returned when the point set is too small or
// collinear/coincident, so the 3x3 normal-equation system is singular.
var ErrDegenerate = errors.New("planefit: degenerate point set")

// FitPlane solves the 3x3 normal-equation system M*(a,b,c) = v for the
// best-fit plane z = a*x + b*y + c through points, in coordinates local
// to their centroid. Rows of M accumulate
// (x^2, xy, x; xy, y^2, y; x, y, 1); v accumulates (xz, yz, z).
func FitPlane(points []Vec3) (Plane, error) {
	if len(points) < 3 {
		return Plane{}, ErrDegenerate
	}

	var centroid Vec3
	for _, p := range points {
		centroid.X += p.X
		centroid.Y += p.Y
		centroid.Z += p.Z
	}
	n := float64(len(points))
	centroid = Vec3{centroid.X / n, centroid.Y / n, centroid.Z / n}

	var sxx, sxy, sx, syy, sy, sxz, syz, sz float64
	for _, p := range points {
		x, y, z := p.X-centroid.X, p.Y-centroid.Y, p.Z-centroid.Z
		sxx += x * x
		sxy += x * y
		sx += x
		syy += y * y
		sy += y
		sxz += x * z
		syz += y * z
		sz += z
	}

	m := [3][3]float64{
		{sxx, sxy, sx},
		{sxy, syy, sy},
		{sx, sy, n},
	}
	v := [3]float64{sxz, syz, sz}

	abc, ok := solve3x3(m, v)
	if !ok {
		return Plane{}, ErrDegenerate
	}

	return Plane{A: abc[0], B: abc[1], C: abc[2], Centroid: centroid}, nil
}

// Eval returns the fitted z for a point expressed in local (x, y)
// coordinates relative to p.Centroid.
func (p Plane) Eval(x, y float64) float64 { return p.A*x + p.B*y + p.C }

// Normal returns the plane's un-normalized normal vector (-a, -b, 1) in
// the same local axes as Eval.
func (p Plane) Normal() Vec3 { return Vec3{X: -p.A, Y: -p.B, Z: 1} }

// solve3x3 solves m*x = v via Cramer's rule. No library in this corpus
// offers a small dense linear solve, and a 3x3 Cramer's-rule inline is
// simpler and no less correct than pulling in a general-purpose linear
// algebra dependency for a single fixed-size system.
func solve3x3(m [3][3]float64, v [3]float64) ([3]float64, bool) {
	det := det3(m)
	if math.Abs(det) < 1e-18 {
		return [3]float64{}, false
	}

	var out [3]float64
	for col := 0; col < 3; col++ {
		mc := m
		for row := 0; row < 3; row++ {
			mc[row][col] = v[row]
		}
		out[col] = det3(mc) / det
	}
	return out, true
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
