package geosurvey

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsValidates(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate(4))
}

func TestSettingsValidateRanges(t *testing.T) {
	s := DefaultSettings()
	s.HeightDiff = 0.9
	assert.Error(t, s.Validate(4))

	s = DefaultSettings()
	s.Sleekness = 0
	assert.Error(t, s.Validate(4))

	s = DefaultSettings()
	s.MaxPoints = 1
	assert.Error(t, s.Validate(4))
}

func TestSettingsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yml")

	want := DefaultSettings()
	want.Sleekness = 20
	require.NoError(t, SaveSettings(path, want))

	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsMissingKeysKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	require.NoError(t, ioutil.WriteFile(path, []byte("sleekness: 30\n"), 0644))

	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 30, got.Sleekness)
	assert.Equal(t, DefaultSettings().MaxPoints, got.MaxPoints)
}
