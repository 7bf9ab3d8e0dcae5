package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitBumpOnWorkedExampleAccepts(t *testing.T) {
	profile := flatProfile(0, 0, 1, 3, 5, 3, 1, 0, 0)
	tmpl := BumpTemplate{Center: 4, Width: 5, Height: 5}
	cfg := DefaultConfig()
	b := FitBump(profile, tmpl, true, cfg)
	assert.Equal(t, BumpOK, b.Status)
	assert.Equal(t, 4, b.EstimatedCenter)
	assert.InDelta(t, 5, b.EstimatedHeight, 1)
	assert.InDelta(t, 5, b.EstimatedWidth, 1)
	assert.True(t, b.Accepted)
}

func TestFitBumpEmptyScanRejects(t *testing.T) {
	b := FitBump(nil, BumpTemplate{}, true, DefaultConfig())
	assert.Equal(t, BumpEmptyScan, b.Status)
	assert.False(t, b.Accepted)
}

func TestFitBumpTooLowRejects(t *testing.T) {
	profile := flatProfile(0, 0, 0, 1, 0, 0, 0)
	tmpl := BumpTemplate{Center: 3, Width: 2, Height: 1}
	cfg := DefaultConfig()
	cfg.BumpMinHeight = 3
	b := FitBump(profile, tmpl, true, cfg)
	assert.Equal(t, BumpTooLow, b.Status)
	assert.False(t, b.Accepted)
}

func TestFitBumpTooNarrowRejects(t *testing.T) {
	profile := flatProfile(0, 5, 0)
	tmpl := BumpTemplate{Center: 1, Width: 0, Height: 5}
	b := FitBump(profile, tmpl, true, DefaultConfig())
	assert.Equal(t, BumpTooNarrow, b.Status)
	assert.False(t, b.Accepted)
}

func TestFitBumpHollowDetectsLocalMinimum(t *testing.T) {
	profile := flatProfile(5, 5, 4, 2, 0, 2, 4, 5, 5)
	tmpl := BumpTemplate{Center: 4, Width: 5, Height: 5}
	b := FitBump(profile, tmpl, false, DefaultConfig())
	assert.Equal(t, BumpOK, b.Status)
	assert.False(t, b.Ridge)
	assert.Equal(t, 4, b.EstimatedCenter)
	assert.True(t, b.Accepted)
}

func TestFitBumpFlagsPositionDefaultWhenShifted(t *testing.T) {
	profile := flatProfile(0, 0, 1, 3, 5, 3, 1, 0, 0)
	tmpl := BumpTemplate{Center: 20, Width: 5, Height: 5}
	b := FitBump(profile, tmpl, true, DefaultConfig())
	assert.Equal(t, BumpOK, b.Status)
	assert.False(t, b.Accepted)
	assert.NotZero(t, b.Default&BumpDefaultPosition)
}
