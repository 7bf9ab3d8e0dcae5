package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func flatProfile(heights ...int) []ProfilePoint {
	out := make([]ProfilePoint, len(heights))
	for i, h := range heights {
		out[i] = ProfilePoint{Position: i, Height: h}
	}
	return out
}

func TestFitPlateauOnFlatProfileAccepts(t *testing.T) {
	profile := flatProfile(2, 2, 2, 2, 3, 3, 3, 3, 2, 2, 2, 2)
	tmpl := PlateauTemplate{Start: 4, End: 7, Height: 3, Width: 3}
	cfg := DefaultConfig()
	cfg.ThicknessTolerance = 0
	p := FitPlateau(profile, tmpl, cfg)
	assert.Equal(t, PlateauOK, p.Status)
	assert.Equal(t, 4, p.InternalStart)
	assert.Equal(t, 7, p.InternalEnd)
	assert.True(t, p.Accepted)
}

func TestFitPlateauEmptyProfileRejects(t *testing.T) {
	p := FitPlateau(nil, PlateauTemplate{}, DefaultConfig())
	assert.Equal(t, PlateauNotEnoughInputPts, p.Status)
	assert.False(t, p.Accepted)
}

func TestFitPlateauRejectsLargeShift(t *testing.T) {
	profile := flatProfile(2, 2, 2, 2, 3, 3, 3, 3, 2, 2, 2, 2)
	tmpl := PlateauTemplate{Start: 40, End: 43, Height: 3, Width: 3}
	cfg := DefaultConfig()
	p := FitPlateau(profile, tmpl, cfg)
	assert.Equal(t, PlateauNoBoundPos, p.Status)
}

func TestFitPlateauRejectsTooNarrowRun(t *testing.T) {
	profile := flatProfile(2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2)
	tmpl := PlateauTemplate{Start: 5, End: 7, Height: 3, Width: 2}
	cfg := DefaultConfig()
	cfg.MinLength = 5
	cfg.ThicknessTolerance = 0
	p := FitPlateau(profile, tmpl, cfg)
	assert.Equal(t, PlateauNotEnoughCnxPts, p.Status)
}
