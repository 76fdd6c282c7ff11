package surface

import (
	"math"
	"testing"

	"github.com/arl/geosurvey/internal/polymesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constBody struct{ h float64 }

func (b constBody) Height(lng, lat float64) float64 { return b.h }

type sinBody struct{}

func (sinBody) Height(lng, lat float64) float64 { return 1 + 0.5*math.Sin(100*lng) }

func TestToCartesianRoundTrip(t *testing.T) {
	lng, lat, r, h := 0.3, -0.2, 1.0, 0.0
	p := ToCartesian(lng, lat, r, h)
	gotLng, gotLat := FromCartesian(p, r)
	assert.InDelta(t, lng, gotLng, 1e-9)
	assert.InDelta(t, lat, gotLat, 1e-9)
}

func unitSquareProjection(t *testing.T) (polymesh.Projection, []Vec3) {
	t.Helper()
	r := 1.0
	toCart := func(lng, lat float64) Vec3 {
		return ToCartesian(lng, lat, r, 0)
	}
	corners := []Vec3{
		toCart(0, 0), toCart(0.1, 0), toCart(0.1, 0.1), toCart(0, 0.1),
	}
	proj, err := polymesh.Project(corners, r)
	require.NoError(t, err)
	return proj, corners
}

func TestFlatTerrainVolumeNearZero(t *testing.T) {
	proj, corners := unitSquareProjection(t)
	r := 1.0
	n := Vec3{}
	for _, c := range corners {
		n = n.Add(c)
	}
	n = n.Normalize()

	plane, err := FitReferencePlane(corners, n, r)
	require.NoError(t, err)

	intg := Integrator{Body: constBody{h: 0}, Proj: proj, Plane: plane, R: r, HeightScale: 1}

	var area, pvol, nvol float64
	s := proj.Sites
	verts := make([]Vertex, len(s))
	for i, site := range s {
		v, ok := intg.Vertex(site.X, site.Y)
		require.True(t, ok)
		verts[i] = v
	}
	// Fan-triangulate the (convex) unit square from vertex 0.
	for i := 1; i+1 < len(verts); i++ {
		a, pv, nv, ok := intg.Triangle(verts[0], verts[i], verts[i+1])
		require.True(t, ok)
		area += a
		pvol += pv
		nvol += nv
	}

	assert.InDelta(t, 0.01, area, 1e-3)
	assert.InDelta(t, 0, pvol+nvol, 1e-3*area)
}

func TestTriangleAreaRightTriangle(t *testing.T) {
	a := Vec3{X: 0, Y: 0, Z: 0}
	b := Vec3{X: 1, Y: 0, Z: 0}
	c := Vec3{X: 0, Y: 1, Z: 0}
	assert.InDelta(t, 0.5, TriangleArea(a, b, c), 1e-12)
}
