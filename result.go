package geosurvey

import "github.com/arl/geosurvey/internal/polymesh"

// Vec3 is the cartesian vector type accepted by Compute.
type Vec3 = polymesh.Vec3

// MeshSegment is one displayable edge of the refined, surface-projected
// mesh: two endpoints in (lng, lat) radians.
type MeshSegment struct {
	A, B [2]float64
}

// BoundingBox is a lng/lat axis-aligned box covering the refined mesh.
type BoundingBox struct {
	MinLng, MinLat, MaxLng, MaxLat float64
}

// Result is everything Compute returns: area, signed positive/negative
// volume, the refined mesh's edges and bounding box, plus Diagnostics
// and Warnings instead of a single error.
type Result struct {
	Area float64
	PVol, NVol float64
	MeshSegments []MeshSegment
	BoundingBoxLngLat BoundingBox
	Diagnostics Diagnostics
	Warnings []string
}
