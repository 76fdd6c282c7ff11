// Package tools provides the tagged-union tool-placement records: one
// variant per tool, dispatch done at the edge where a rendering
// subsystem pulls the tool list. Supplemented here purely as
// serializable placements satisfying the persistence round-trip:
// their rendering/sampling math is explicitly out of this engine's
// scope.
package tools

// Handle is one lng/lat control point of a tool placement.
type Handle struct {
	Lng float64 `yaml:"lng"`
	Lat float64 `yaml:"lat"`
}

// Common is the set of fields every tool variant shares, mirroring
// the recognized persistence keys.
type Common struct {
	Center Handle `yaml:"center"`
	Frame string `yaml:"frame,omitempty"`
	Handles []Handle `yaml:"handles,omitempty"`
	Color string `yaml:"color,omitempty"`
	ScaleDistance float64 `yaml:"scaleDistance,omitempty"`
	Text string `yaml:"text,omitempty"`
	Minimized bool `yaml:"minimized,omitempty"`
	Positions []Handle `yaml:"positions,omitempty"`
}

// Kind discriminates which tool variant a Placement holds.
type Kind string

const (
	KindFlag Kind = "flag"
	KindPath Kind = "path"
	KindEllipse Kind = "ellipse"
	KindDipStrike Kind = "dipStrike"
	KindPolygon Kind = "polygon"
)

// Flag is a single labeled point marker.
type Flag struct {
	Common `yaml:",inline"`
}

// Path is an ordered sequence of handles with a sampled height profile.
type Path struct {
	Common `yaml:",inline"`
	NumSamples int `yaml:"numSamples,omitempty"`
}

// Ellipse is an ellipse placement on the surface, stored as its center
// and handles; it has no separate radius or rotation fields.
type Ellipse struct {
	Common `yaml:",inline"`
	NumSamples int `yaml:"numSamples,omitempty"`
}

// DipStrike is a least-squares plane fit over its handles (see
// github.com/arl/geosurvey/planefit), reporting slope angle and
// orientation; not in this engine's core scope.
type DipStrike struct {
	Common `yaml:",inline"`
}

// Polygon is the polygon area/volume tool this engine serves.
type Polygon struct {
	Common `yaml:",inline"`
}

// Placement is the tagged union: exactly one of the variant fields is
// populated, selected by Kind.
type Placement struct {
	Kind Kind `yaml:"kind"`
	Flag *Flag `yaml:"flag,omitempty"`
	Path *Path `yaml:"path,omitempty"`
	Ellipse *Ellipse `yaml:"ellipse,omitempty"`
	DipStrike *DipStrike `yaml:"dipStrike,omitempty"`
	Polygon *Polygon `yaml:"polygon,omitempty"`
}
