package cmd

import (
	"fmt"
	"io/ioutil"
	"math"

	yaml "gopkg.in/yaml.v2"

	geosurvey "github.com/arl/geosurvey"
)

// lngLat is one corner or grid sample, in radians.
type lngLat struct {
	Lng float64 `yaml:"lng"`
	Lat float64 `yaml:"lat"`
}

// computeInput is the CLI's on-disk input format: polygon corners plus a
// minimal terrain-height description.
type computeInput struct {
	Radius float64 `yaml:"radius"`
	HeightScale float64 `yaml:"heightScale"`
	Corners []lngLat `yaml:"corners"`
	FlatHeight *float64 `yaml:"flatHeight,omitempty"`
	HeightGrid [][]float64 `yaml:"heightGrid,omitempty"` // rows = lat, cols = lng, spanning [-pi,pi]x[-pi/2,pi/2]
}

func loadComputeInput(path string) (computeInput, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return computeInput{}, err
	}
	var in computeInput
	if err := yaml.Unmarshal(buf, &in); err != nil {
		return computeInput{}, err
	}
	if in.HeightScale == 0 {
		in.HeightScale = 1
	}
	return in, nil
}

func (in computeInput) corners3D() []geosurvey.Vec3 {
	out := make([]geosurvey.Vec3, len(in.Corners))
	for i, c := range in.Corners {
		out[i] = geosurvey.Vec3{
			X: in.Radius * math.Cos(c.Lat) * math.Cos(c.Lng),
			Y: in.Radius * math.Sin(c.Lat),
			Z: in.Radius * math.Cos(c.Lat) * math.Sin(c.Lng),
		}
	}
	return out
}

// cliBody adapts computeInput to geosurvey.Body.
type cliBody struct {
	in computeInput
}

func (b cliBody) Radius() float64      { return b.in.Radius }
func (b cliBody) HeightScale() float64 { return b.in.HeightScale }

func (b cliBody) Height(lng, lat float64) float64 {
	if b.in.FlatHeight != nil {
		return *b.in.FlatHeight
	}
	grid := b.in.HeightGrid
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0
	}
	rows, cols := len(grid), len(grid[0])

	u := (lng + math.Pi) / (2 * math.Pi) * float64(cols-1)
	v := (lat + math.Pi/2) / math.Pi * float64(rows-1)
	u = clamp(u, 0, float64(cols-1))
	v = clamp(v, 0, float64(rows-1))

	c0, c1 := int(math.Floor(u)), int(math.Ceil(u))
	r0, r1 := int(math.Floor(v)), int(math.Ceil(v))
	fu, fv := u-float64(c0), v-float64(r0)

	h00, h10 := grid[r0][c0], grid[r0][c1]
	h01, h11 := grid[r1][c0], grid[r1][c1]
	h0 := h00 + fu*(h10-h00)
	h1 := h01 + fu*(h11-h01)
	return h0 + fv*(h1-h0)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func printResult(res geosurvey.Result) {
	fmt.Printf("area: %.6g\n", res.Area)
	fmt.Printf("pvol: %.6g\n", res.PVol)
	fmt.Printf("nvol: %.6g\n", res.NVol)
	fmt.Printf("mesh segs: %d\n", len(res.MeshSegments))
	fmt.Printf("bbox lng/lat [%.6g, %.6g] x [%.6g, %.6g]\n",
		res.BoundingBoxLngLat.MinLng, res.BoundingBoxLngLat.MaxLng,
		res.BoundingBoxLngLat.MinLat, res.BoundingBoxLngLat.MaxLat)
	fmt.Printf("diagnostics: %s\n", res.Diagnostics)
	for _, w := range res.Warnings {
		fmt.Println("warning:", w)
	}
}
