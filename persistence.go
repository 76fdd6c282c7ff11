package geosurvey

import (
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"

	"github.com/arl/geosurvey/tools"
)

// SavePlacements writes a list of tool placements to a YAML file.
func SavePlacements(path string, placements []tools.Placement) error {
	buf, err := yaml.Marshal(placements)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, buf, 0644)
}

// LoadPlacements reads a list of tool placements from a YAML file
// previously written by SavePlacements.
func LoadPlacements(path string) ([]tools.Placement, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var placements []tools.Placement
	if err := yaml.Unmarshal(buf, &placements); err != nil {
		return nil, err
	}
	return placements, nil
}
