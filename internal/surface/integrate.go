package surface

import (
	"math"

	"github.com/arl/geosurvey/internal/polymesh"
)

// Vertex is a refined triangle corner after lifting, height query, and
// placement.
type Vertex struct {
	XP, YP float64 // plane-basis coordinates, pre-lift
	Flat Vec3 // p_flat: on the sphere of radius r, no height
	Surface Vec3 // p_surface: toCartesian(lng, lat, r, h)
	Lng, Lat float64
	HRel float64 // height above the reference plane
}

// Integrator lifts, queries and places plane-basis points for one
// polygon session, and accumulates area/volume across sub-triangles.
type Integrator struct {
	Body Body
	Proj polymesh.Projection
	Plane ReferencePlane
	R float64
	HeightScale float64
}

// Vertex lifts a single plane-basis point, queries the body, and places
// it in 3D. ok is false when the query failed: the caller must treat
// the contribution as zero, never NaN.
func (intg Integrator) Vertex(xp, yp float64) (v Vertex, ok bool) {
	flat := Lift(intg.Proj, xp, yp, intg.R)
	if !flat.IsFinite() {
		return Vertex{}, false
	}
	lng, lat := FromCartesian(flat, intg.R)
	h := intg.Body.Height(lng, lat)
	if math.IsNaN(h) {
		return Vertex{XP: xp, YP: yp, Flat: flat, Lng: lng, Lat: lat}, false
	}
	h *= intg.HeightScale
	surf := ToCartesian(lng, lat, intg.R, h)
	hrel := intg.Plane.heightAbove(flat, h)
	return Vertex{XP: xp, YP: yp, Flat: flat, Surface: surf, Lng: lng, Lat: lat, HRel: hrel}, true
}

// TriangleArea returns the surface area of a lifted sub-triangle:
// |(p2-p1) x (p3-p1)| / 2.
func TriangleArea(p1, p2, p3 Vec3) float64 {
	return p2.Sub(p1).Cross(p3.Sub(p1)).Len() / 2
}

const crossingSamples = 32

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// findCrossing scans 32 samples along the edge a->b for the point where
// HRel changes sign, then linearly interpolates between the two
// bracketing samples.
func (intg Integrator) findCrossing(a, b Vertex) (Vertex, bool) {
	prev := a
	for i := 1; i <= crossingSamples; i++ {
		t := float64(i) / crossingSamples
		cur, ok := intg.Vertex(a.XP+t*(b.XP-a.XP), a.YP+t*(b.YP-a.YP))
		if !ok {
			return Vertex{}, false
		}
		if sign(cur.HRel) != sign(prev.HRel) {
			denom := prev.HRel - cur.HRel
			if math.Abs(denom) < 1e-15 {
				return prev, true
			}
			f := prev.HRel / denom
			return Vertex{
				XP: prev.XP + f*(cur.XP-prev.XP),
				YP: prev.YP + f*(cur.YP-prev.YP),
				Flat: Vec3{X: prev.Flat.X + f*(cur.Flat.X-prev.Flat.X), Y: prev.Flat.Y + f*(cur.Flat.Y-prev.Flat.Y), Z: prev.Flat.Z + f*(cur.Flat.Z-prev.Flat.Z)},
				Surface: Vec3{X: prev.Surface.X + f*(cur.Surface.X-prev.Surface.X), Y: prev.Surface.Y + f*(cur.Surface.Y-prev.Surface.Y), Z: prev.Surface.Z + f*(cur.Surface.Z-prev.Surface.Z)},
				HRel: 0,
			}, true
		}
		prev = cur
	}
	return Vertex{}, false
}

// Triangle accumulates one sub-triangle's area and signed volume. ok
// is false only when a vertex query failed; the caller must then skip
// this triangle's contribution entirely.
func (intg Integrator) Triangle(v1, v2, v3 Vertex) (area, pvol, nvol float64, ok bool) {
	area = TriangleArea(v1.Surface, v2.Surface, v3.Surface)

	s1, s2, s3 := sign(v1.HRel), sign(v2.HRel), sign(v3.HRel)
	if (s1 == s2 && s2 == s3) || s1 == 0 || s2 == 0 || s3 == 0 {
		aFlat := TriangleArea(v1.Flat, v2.Flat, v3.Flat)
		vol := aFlat * (v1.HRel + v2.HRel + v3.HRel) / 3
		if vol >= 0 {
			return area, vol, 0, true
		}
		return area, 0, vol, true
	}

	type edge struct{ a, b Vertex }
	edges := [3]edge{{v1, v2}, {v2, v3}, {v3, v1}}
	var crossings []Vertex
	for _, e := range edges {
		if sign(e.a.HRel) != sign(e.b.HRel) {
			c, ok := intg.findCrossing(e.a, e.b)
			if !ok {
				return 0, 0, 0, false
			}
			crossings = append(crossings, c)
		}
	}

	if len(crossings) != 2 {
		// Pathological: fall back to the single-prism formula.
		aFlat := TriangleArea(v1.Flat, v2.Flat, v3.Flat)
		vol := aFlat * (v1.HRel + v2.HRel + v3.HRel) / 3
		if vol >= 0 {
			return area, vol, 0, true
		}
		return area, 0, vol, true
	}

	// Identify the lone outlier vertex (the one whose sign differs from
	// the other two) and split into a corner-triangle plus a quadrilateral.
	verts := [3]Vertex{v1, v2, v3}
	var outlier, same1, same2 Vertex
	outlierIdx := 0
	for i := 0; i < 3; i++ {
		other1, other2 := verts[(i+1)%3], verts[(i+2)%3]
		if sign(verts[i].HRel) != sign(other1.HRel) && sign(verts[i].HRel) != sign(other2.HRel) {
			outlier, same1, same2 = verts[i], other1, other2
			outlierIdx = i
			break
		}
	}
	// crossings follow edge order v1v2, v2v3, v3v1; xSame1 is the one on
	// the outlier-same1 edge, xSame2 the one on the same2-outlier edge.
	xSame1, xSame2 := crossings[0], crossings[1]
	if outlierIdx != 0 {
		xSame1, xSame2 = xSame2, xSame1
	}

	cornerArea := TriangleArea(outlier.Flat, xSame1.Flat, xSame2.Flat)
	quadArea := aQuad(same1.Flat, same2.Flat, xSame1.Flat, xSame2.Flat)

	cornerVol := cornerArea * math.Abs(outlier.HRel) / 3
	quadVol := quadArea * (math.Abs(same1.HRel)+math.Abs(same2.HRel))/2 * 0.5

	if outlier.HRel >= 0 {
		pvol += cornerVol
	} else {
		nvol -= cornerVol
	}
	if same1.HRel >= 0 {
		pvol += quadVol
	} else {
		nvol -= quadVol
	}

	return area, pvol, nvol, true
}

// aQuad splits the quadrilateral whose cyclic vertex order is a, c, d, b
// into two triangles via its diagonal a-d and sums their flat area.
func aQuad(a, b, c, d Vec3) float64 {
	return TriangleArea(a, c, d) + TriangleArea(a, d, b)
}
