package geosurvey

import (
	"math"

	"github.com/arl/geosurvey/internal/polymesh"
	"github.com/arl/geosurvey/internal/refine"
	"github.com/arl/geosurvey/internal/surface"
)

// Compute is the session façade: validate input, project the polygon
// corners to the tangent plane at their centroid, repair the
// triangulation via edge recovery, filter to interior triangles, refine
// each adaptively, then accumulate surface-integrated area and signed
// volume. Nothing is thrown out of Compute: every failure mode rides
// back as a Diagnostics bit plus a human-readable warning.
func Compute(corners []Vec3, body Body, settings Settings, ctx *Context) Result {
	if len(corners) < 3 || body == nil {
		return Result{Diagnostics: InputDegenerate, Warnings: []string{"fewer than 3 corners or no body"}}
	}
	for _, c := range corners {
		if !c.IsFinite() || c.Len() < 1e-15 {
			return Result{Diagnostics: NonFinite, Warnings: []string{"a corner position is non-finite or zero-length"}}
		}
	}
	r := body.Radius()
	if err := settings.Validate(len(corners)); err != nil {
		ctx.Warningf("invalid settings: %v", err)
		return Result{Diagnostics: InputDegenerate, Warnings: []string{err.Error()}}
	}

	ctx.StartTimer(TimerProject)
	proj, err := polymesh.Project(corners, r)
	ctx.StopTimer(TimerProject)
	if err != nil {
		switch e := err.(type) {
		case polymesh.ErrPolygonTooLarge:
			ctx.Warningf("polygon too large: %v", e)
			return Result{Diagnostics: PolygonTooLarge, Warnings: []string{e.Error()}}
		default:
			ctx.Warningf("degenerate input: %v", e)
			return Result{Diagnostics: InputDegenerate, Warnings: []string{e.Error()}}
		}
	}

	ctx.StartTimer(TimerSweep)
	ctx.StartTimer(TimerRecover)
	rec := polymesh.Recover(proj.Sites)
	ctx.StopTimer(TimerRecover)
	ctx.StopTimer(TimerSweep)

	var diag Diagnostics
	var warnings []string
	if rec.Exhausted {
		diag |= EdgeRecoveryExhausted
		warnings = append(warnings, "area may be incorrect; concave or self-intersecting polygon")
		ctx.Warningf("edge recovery exhausted after %d iterations", rec.Iterations)
	}

	interior := polymesh.InteriorTriangles(rec.Boundary, rec.Triangulation.Triangles)

	heightScale := body.HeightScale()
	heightedCorners := make([]surface.Vec3, len(corners))
	for i, c := range corners {
		lng, lat := surface.FromCartesian(c, r)
		h := body.Height(lng, lat)
		if math.IsNaN(h) {
			diag |= OracleFailure
			h = 0
		}
		heightedCorners[i] = surface.ToCartesian(lng, lat, r, h*heightScale)
	}

	n := proj.Basis.Normal
	plane, err := surface.FitReferencePlane(heightedCorners, n, r)
	if err != nil {
		diag |= InputDegenerate
		warnings = append(warnings, "reference plane fit degenerate; volumes may be unreliable")
		plane = surface.ReferencePlane{Normal: n, Point: proj.Centroid}
	}

	refineSettings := refine.Settings{
		HeightDiff: settings.HeightDiff,
		SleeknessDeg: float64(settings.Sleekness),
		MaxAttempt: settings.MaxAttempt,
		MaxPoints: settings.MaxPoints,
	}
	refiner := refine.NewRefiner(refineSettings, body, proj, r, heightScale, len(rec.Boundary))
	intg := surface.Integrator{Body: body, Proj: proj, Plane: plane, R: r, HeightScale: heightScale}

	ctx.StartTimer(TimerRefine)
	var area, pvol, nvol float64
	var segments []MeshSegment
	bbox := BoundingBox{MinLng: math.Inf(1), MinLat: math.Inf(1), MaxLng: math.Inf(-1), MaxLat: math.Inf(-1)}

	for _, tri := range interior {
		rres := refiner.RefineTriangle(tri)
		ctx.StopTimer(TimerRefine)
		ctx.StartTimer(TimerIntegrate)
		for _, sub := range rres.Triangulation.Triangles {
			v1, ok1 := intg.Vertex(sub.A.X, sub.A.Y)
			v2, ok2 := intg.Vertex(sub.B.X, sub.B.Y)
			v3, ok3 := intg.Vertex(sub.C.X, sub.C.Y)
			if !ok1 || !ok2 || !ok3 {
				diag |= OracleFailure
				continue
			}
			a, pv, nv, ok := intg.Triangle(v1, v2, v3)
			if !ok {
				diag |= OracleFailure
				continue
			}
			area += a
			pvol += pv
			nvol += nv

			for _, v := range [3]surface.Vertex{v1, v2, v3} {
				bbox.MinLng = math.Min(bbox.MinLng, v.Lng)
				bbox.MaxLng = math.Max(bbox.MaxLng, v.Lng)
				bbox.MinLat = math.Min(bbox.MinLat, v.Lat)
				bbox.MaxLat = math.Max(bbox.MaxLat, v.Lat)
			}
			segments = append(segments,
				MeshSegment{A: [2]float64{v1.Lng, v1.Lat}, B: [2]float64{v2.Lng, v2.Lat}},
				MeshSegment{A: [2]float64{v2.Lng, v2.Lat}, B: [2]float64{v3.Lng, v3.Lat}},
				MeshSegment{A: [2]float64{v3.Lng, v3.Lat}, B: [2]float64{v1.Lng, v1.Lat}},
			)
		}
		ctx.StopTimer(TimerIntegrate)
		ctx.StartTimer(TimerRefine)
	}
	ctx.StopTimer(TimerRefine)

	if len(segments) == 0 {
		bbox = BoundingBox{}
	}
	if diag.Has(OracleFailure) {
		warnings = append(warnings, "terrain height oracle returned NaN for at least one query")
	}

	return Result{
		Area: area,
		PVol: pvol,
		NVol: nvol,
		MeshSegments: segments,
		BoundingBoxLngLat: bbox,
		Diagnostics: diag,
		Warnings: warnings,
	}
}
