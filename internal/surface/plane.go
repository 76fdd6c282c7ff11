package surface

import (
	"math"

	"github.com/arl/geosurvey/planefit"
)

// ReferencePlane is the least-squares plane through the user's heighted
// corners, placed in the global cartesian frame.
type ReferencePlane struct {
	Normal Vec3 // N_plane, unit, flipped toward n
	Point Vec3 // M_plane
}

// FitReferencePlane fits the least-squares plane through corners
// (already lifted with height applied), flips its normal to agree with
// n (the polygon's outward direction), and places it at M_plane =
// centroid + N_plane*r*c.
func FitReferencePlane(corners []Vec3, n Vec3, r float64) (ReferencePlane, error) {
	pts := make([]planefit.Vec3, len(corners))
	for i, c := range corners {
		pts[i] = planefit.Vec3{X: c.X, Y: c.Y, Z: c.Z}
	}
	fit, err := planefit.FitPlane(pts)
	if err != nil {
		return ReferencePlane{}, err
	}

	pn := fit.Normal()
	normal := Vec3{X: pn.X, Y: pn.Y, Z: pn.Z}.Normalize()
	if normal.Dot(n) < 0 {
		normal = normal.Scale(-1)
	}

	centroid := Vec3{X: fit.Centroid.X, Y: fit.Centroid.Y, Z: fit.Centroid.Z}
	point := centroid.Add(normal.Scale(r * fit.C))

	return ReferencePlane{Normal: normal, Point: point}, nil
}

// heightAbove is h_rel: the oracle height at p minus the plane's
// height, projected along p's own radial direction.
func (rp ReferencePlane) heightAbove(p Vec3, h float64) float64 {
	denom := rp.Normal.Dot(p)
	if math.Abs(denom) < 1e-15 {
		return h
	}
	mLen := rp.Point.Len()
	return h - (rp.Normal.Dot(rp.Point)/denom-1)*mLen
}
