package geosurvey

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arl/geosurvey/tools"
)

func TestPlacementsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "placements.yml")

	want := []tools.Placement{
		{
			Kind: tools.KindFlag,
			Flag: &tools.Flag{Common: tools.Common{
					Center: tools.Handle{Lng: 0.1, Lat: 0.2},
					Color: "#ff0000",
					Text: "summit",
			}},
		},
		{
			Kind: tools.KindPolygon,
			Polygon: &tools.Polygon{Common: tools.Common{
					Handles: []tools.Handle{{Lng: 0, Lat: 0}, {Lng: 0.1, Lat: 0}, {Lng: 0.1, Lat: 0.1}},
			}},
		},
	}

	require.NoError(t, SavePlacements(path, want))
	got, err := LoadPlacements(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPlacementsUnknownKeysIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "placements.yml")
	content := "- kind: flag\n  flag:\n    center: {lng: 0, lat: 0}\n    bogusField: 42\n"
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))

	got, err := LoadPlacements(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tools.KindFlag, got[0].Kind)
}
