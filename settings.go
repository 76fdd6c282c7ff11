package geosurvey

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

// Settings holds every tunable of the polygon engine, round-trippable
// through YAML for the CLI's config subcommand.
type Settings struct {
	HeightDiff float64 `yaml:"heightDiff"` // >= 1.0, default 1.002
	MaxAttempt int `yaml:"maxAttempt"` // >= 1, default 10
	MaxPoints int `yaml:"maxPoints"` // >= N, default 1000
	Sleekness int `yaml:"sleekness"` // degrees, 0 < theta < 60, default 15
	NumSamples int `yaml:"numSamples"` // path/ellipse tools only
	HeightScale float64 `yaml:"heightScale"` // not read by Compute, which scales oracle heights by Body.HeightScale
}

// DefaultSettings returns the documented default tuning values.
func DefaultSettings() Settings {
	return Settings{
		HeightDiff: 1.002,
		MaxAttempt: 10,
		MaxPoints: 1000,
		Sleekness: 15,
		NumSamples: 16,
		HeightScale: 1,
	}
}

// Validate checks every field against its documented range.
// N is the polygon's corner count, the floor for MaxPoints.
func (s Settings) Validate(n int) error {
	if s.HeightDiff < 1.0 {
		return fmt.Errorf("heightDiff must be >= 1.0, got %g", s.HeightDiff)
	}
	if s.MaxAttempt < 1 {
		return fmt.Errorf("maxAttempt must be >= 1, got %d", s.MaxAttempt)
	}
	if s.MaxPoints < n {
		return fmt.Errorf("maxPoints must be >= %d corners, got %d", n, s.MaxPoints)
	}
	if s.Sleekness <= 0 || s.Sleekness >= 60 {
		return fmt.Errorf("sleekness must be in (0, 60) degrees, got %d", s.Sleekness)
	}
	return nil
}

// LoadSettings reads a YAML settings file. Unrecognized keys are ignored
// and missing keys keep DefaultSettings' values.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// SaveSettings writes s as a YAML file at path.
func SaveSettings(path string, s Settings) error {
	buf, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, buf, 0644)
}
