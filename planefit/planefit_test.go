package planefit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitPlaneExact(t *testing.T) {
	// z = 2x - y + 3, sampled exactly: the fit must recover the
	// coefficients with no residual.
	pts := []Vec3{
		{X: 0, Y: 0, Z: 3},
		{X: 1, Y: 0, Z: 5},
		{X: 0, Y: 1, Z: 2},
		{X: 1, Y: 1, Z: 4},
		{X: 2, Y: 1, Z: 6},
	}
	plane, err := FitPlane(pts)
	require.NoError(t, err)

	for _, p := range pts {
		x, y := p.X-plane.Centroid.X, p.Y-plane.Centroid.Y
		z := p.Z - plane.Centroid.Z
		assert.InDelta(t, z, plane.Eval(x, y), 1e-9)
	}
}

func TestFitPlaneDegenerate(t *testing.T) {
	_, err := FitPlane([]Vec3{{X: 0}, {X: 1}})
	require.Error(t, err)

	// Collinear points make the normal-equation system singular.
	_, err = FitPlane([]Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1}, {X: 2, Y: 0, Z: 2}})
	require.Error(t, err)
}

func TestPlaneNormal(t *testing.T) {
	pts := []Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 0},
	}
	plane, err := FitPlane(pts)
	require.NoError(t, err)
	n := plane.Normal()
	assert.InDelta(t, 0, n.X, 1e-9)
	assert.InDelta(t, 0, n.Y, 1e-9)
	assert.InDelta(t, 1, n.Z, 1e-9)
}
