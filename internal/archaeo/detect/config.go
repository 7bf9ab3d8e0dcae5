// Package detect fits single-scan structure profiles — a plateau for
// carriage tracks, a bump for ridges/hollows — against a template
// predicted from the previous scan. Grounded on spec §4.5/§4.6 at the
// algorithm-outline level (no original_source equivalent was retrieved)
// and on the teacher's internal/lidar/ground.go for the Go idiom of a
// tunable-threshold detector struct with a status enum result.
package detect

// Config holds every tolerance a plateau or bump fit is checked against.
// It is immutable once built, mirroring internal/config/tuning.go's
// field-per-tunable convention but without its pointer/"is-set" reload
// tracking, since detection config here is never hot-reloaded from a file.
type Config struct {
	// Plateau tolerances, all in millimeters unless noted.
	ThicknessTolerance int
	SlopeTolerance     int
	SideShiftTolerance int
	MinLength           int
	MaxLength           int
	BSMaxTilt           int // max tilt of the bounding blurred segment, in milliradians
	TailMinSize         int
	WidthToleranceRatio float64 // epsilon in [1-eps, 1+eps] width-change acceptance

	// Bump tolerances.
	BumpMinWidth  int
	BumpMinHeight int
	PositionAbsTolerance int
	PositionRelTolerance float64
	AltitudeAbsTolerance int
	AltitudeRelTolerance float64
	WidthAbsTolerance    int
	WidthRelTolerance    float64
	HeightAbsTolerance   int
	HeightRelTolerance   float64
	DetectTrend          bool
	TrendMinPinch        int

	// Shared propagation tolerances (spec §4.7).
	LackTolerance int
	MinDensity    float64
	MaxShift      int
}

// DefaultConfig returns the tolerance set used when no operator override
// is supplied, matching the scale suggested by spec §8's worked examples
// (millimeter-scale profiles, single-digit tolerance bands).
func DefaultConfig() Config {
	return Config{
		ThicknessTolerance:  1,
		SlopeTolerance:      1,
		SideShiftTolerance:  2,
		MinLength:           3,
		MaxLength:           200,
		BSMaxTilt:           200,
		TailMinSize:         3,
		WidthToleranceRatio: 0.5,

		BumpMinWidth:         3,
		BumpMinHeight:        1,
		PositionAbsTolerance: 2,
		PositionRelTolerance: 0.3,
		AltitudeAbsTolerance: 1,
		AltitudeRelTolerance: 0.3,
		WidthAbsTolerance:    2,
		WidthRelTolerance:    0.5,
		HeightAbsTolerance:   1,
		HeightRelTolerance:   0.5,
		DetectTrend:          false,
		TrendMinPinch:        1,

		LackTolerance: 3,
		MinDensity:    0.5,
		MaxShift:      5,
	}
}
