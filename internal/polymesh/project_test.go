package polymesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lngLatToCartesian(lng, lat, r float64) Vec3 {
	return Vec3{
		X: r * math.Cos(lat) * math.Cos(lng),
		Y: r * math.Sin(lat),
		Z: r * math.Cos(lat) * math.Sin(lng),
	}
}

func TestProjectUnitSquare(t *testing.T) {
	r := 1.0
	corners := []Vec3{
		lngLatToCartesian(0, 0, r),
		lngLatToCartesian(0.1, 0, r),
		lngLatToCartesian(0.1, 0.1, r),
		lngLatToCartesian(0, 0.1, r),
	}
	proj, err := Project(corners, r)
	require.NoError(t, err)
	assert.Len(t, proj.Sites, 4)
	assert.Greater(t, proj.MaxDist, 0.0)
	for _, s := range proj.Sites {
		assert.Less(t, s.X*s.X+s.Y*s.Y, 1.0, "projected site must land inside the unit disk")
	}
}

func TestProjectRejectsOversizePolygon(t *testing.T) {
	r := 1.0
	corners := []Vec3{
		lngLatToCartesian(0, 0, r),
		lngLatToCartesian(0.1, 0, r),
		lngLatToCartesian(3.0, 0, r), // far outside the hemisphere around the centroid
		lngLatToCartesian(0, 0.1, r),
	}
	_, err := Project(corners, r)
	require.Error(t, err)
	_, ok := err.(ErrPolygonTooLarge)
	assert.True(t, ok)
}

func TestProjectRejectsTooFewCorners(t *testing.T) {
	_, err := Project([]Vec3{{X: 1}, {X: 2}}, 1)
	require.Error(t, err)
}

func TestTangentBasisOrthonormal(t *testing.T) {
	for _, n := range []Vec3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
		Vec3{X: 1, Y: 1, Z: 1}.Normalize(),
		Vec3{X: 0.3, Y: 0.9, Z: 0.2}.Normalize(),
	} {
		b := tangentBasis(n)
		assert.InDelta(t, 1.0, b.East.Len(), 1e-9)
		assert.InDelta(t, 1.0, b.North.Len(), 1e-9)
		assert.InDelta(t, 0.0, b.East.Dot(b.North), 1e-9)
		assert.InDelta(t, 0.0, b.East.Dot(n), 1e-6)
	}
}
