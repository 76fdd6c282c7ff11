// Package surface lifts refined plane-basis triangles back onto the
// body, queries terrain height, and accumulates surface area and signed
// volume against a least-squares reference plane.
package surface

import (
	"math"

	"github.com/arl/geosurvey/internal/polymesh"
)

// Vec3 is the cartesian vector type shared with internal/polymesh.
type Vec3 = polymesh.Vec3

// Body is the external terrain-height oracle: pure,
// synchronous, deterministic, domain lng in [-pi, pi], lat in [-pi/2, pi/2].
type Body interface {
	Height(lng, lat float64) float64
}

// ToCartesian converts a (lng, lat) position at radius r+h to cartesian
// coordinates.
func ToCartesian(lng, lat, r, h float64) Vec3 {
	rad := r + h
	cosLat := math.Cos(lat)
	return Vec3{
		X: rad * cosLat * math.Cos(lng),
		Y: rad * math.Sin(lat),
		Z: rad * cosLat * math.Sin(lng),
	}
}

// FromCartesian is ToCartesian's inverse, ignoring radius/height and
// recovering only the angular position.
func FromCartesian(p Vec3, r float64) (lng, lat float64) {
	l := p.Len()
	if l < 1e-15 {
		return 0, 0
	}
	sinLat := p.Y / l
	if sinLat > 1 {
		sinLat = 1
	} else if sinLat < -1 {
		sinLat = -1
	}
	lat = math.Asin(sinLat)
	lng = math.Atan2(p.Z, p.X)
	return lng, lat
}

// Lift computes p_flat = normalize(C + maxDist *
// (x_p*east + y_p*north)) * r.
func Lift(proj polymesh.Projection, xp, yp, r float64) Vec3 {
	flat := proj.Centroid.
		Add(proj.Basis.East.Scale(xp * proj.MaxDist)).
		Add(proj.Basis.North.Scale(yp * proj.MaxDist))
	return flat.Normalize().Scale(r)
}
