package refine

import (
	"math"
	"testing"

	"github.com/arl/geosurvey/internal/polymesh"
	"github.com/arl/geosurvey/internal/surface"
	"github.com/arl/geosurvey/internal/voronoi"
	"github.com/stretchr/testify/assert"
)

type flatBody struct{ h float64 }

func (b flatBody) Height(lng, lat float64) float64 { return b.h }

type sinBody struct{}

func (sinBody) Height(lng, lat float64) float64 { return 1 + 0.5*math.Sin(100*lng) }

func equilateralTriangle() voronoi.Triangle {
	return voronoi.Triangle{
		A: voronoi.Site{X: 0, Y: 0, Addr: 0},
		B: voronoi.Site{X: 1, Y: 0, Addr: 1},
		C: voronoi.Site{X: 0.5, Y: 0.8660254, Addr: 2},
	}
}

func testProjection(t *testing.T) polymesh.Projection {
	t.Helper()
	r := 1.0
	toCart := func(lng, lat float64) polymesh.Vec3 {
		return surface.ToCartesian(lng, lat, r, 0)
	}
	corners := []polymesh.Vec3{
		toCart(0, 0), toCart(0.2, 0), toCart(0.2, 0.2), toCart(0, 0.2),
	}
	proj, err := polymesh.Project(corners, r)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	return proj
}

// A flat, sleek-enough triangle under a flat terrain should terminate
// quickly with no points added.
func TestRefineFlatTerrainTerminatesQuickly(t *testing.T) {
	proj := testProjection(t)
	settings := Settings{HeightDiff: 1.002, SleeknessDeg: 15, MaxAttempt: 10, MaxPoints: 1000}
	rf := NewRefiner(settings, flatBody{h: 1}, proj, 1.0, 1.0, 3)

	res := rf.RefineTriangle(equilateralTriangle())
	assert.Len(t, res.Sites, 3)
	assert.Equal(t, 1, res.Attempts)
}

// boundary scenario 6: a sharply oscillating terrain forces
// the refiner to add many sites before the attempt budget is reached.
func TestRefineTerrainMismatchAddsManySites(t *testing.T) {
	proj := testProjection(t)
	settings := Settings{HeightDiff: 1.002, SleeknessDeg: 15, MaxAttempt: 10, MaxPoints: 1000}
	rf := NewRefiner(settings, sinBody{}, proj, 1.0, 1.0, 3)

	res := rf.RefineTriangle(equilateralTriangle())
	assert.Greater(t, len(res.Sites), 10)
}

// boundary scenario 5: a tight global point budget must stop
// refinement and still return a usable (non-empty) result.
func TestRefineRespectsPointBudget(t *testing.T) {
	proj := testProjection(t)
	settings := Settings{HeightDiff: 1.002, SleeknessDeg: 15, MaxAttempt: 3, MaxPoints: 5}
	rf := NewRefiner(settings, sinBody{}, proj, 1.0, 1.0, 3)

	res := rf.RefineTriangle(equilateralTriangle())
	assert.LessOrEqual(t, rf.TotalPoints(), settings.MaxPoints+3)
	assert.NotEmpty(t, res.Sites)
}
