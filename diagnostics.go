package geosurvey

import "strings"

// Diagnostics is a bitmask of non-fatal conditions encountered during
// Compute, used instead of a single error: several conditions can
// co-occur in one call, and the caller must keep going regardless.
type Diagnostics uint32

const (
	// InputDegenerate: fewer than 3 corners, or duplicate/collinear-only
	// input after projection.
	InputDegenerate Diagnostics = 1 << iota
	// PolygonTooLarge: the farthest corner exceeds the body radius from
	// the centroid.
	PolygonTooLarge
	// EdgeRecoveryExhausted: 5 iterations did not recover every polygon edge.
	EdgeRecoveryExhausted
	// NonFinite: a corner's cartesian position is NaN or zero length.
	NonFinite
	// OracleFailure: body.height returned NaN for at least one query.
	OracleFailure
)

// Has reports whether every bit in flag is set.
func (d Diagnostics) Has(flag Diagnostics) bool { return d&flag == flag }

func (d Diagnostics) String() string {
	if d == 0 {
		return "ok"
	}
	ordered := []struct {
		flag Diagnostics
		name string
	}{
		{InputDegenerate, "InputDegenerate"},
		{PolygonTooLarge, "PolygonTooLarge"},
		{EdgeRecoveryExhausted, "EdgeRecoveryExhausted"},
		{NonFinite, "NonFinite"},
		{OracleFailure, "OracleFailure"},
	}
	var names []string
	for _, o := range ordered {
		if d.Has(o.flag) {
			names = append(names, o.name)
		}
	}
	return strings.Join(names, "|")
}
