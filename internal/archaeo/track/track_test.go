package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/archaeoscan/internal/archaeo/detect"
	"github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"
	"github.com/banshee-data/archaeoscan/internal/archaeo/scan"
)

// flatBandSource models a raised band (a carriage track) running
// perpendicular to the scan direction, centered on the scan area: points
// with X in [45,55) sit 3 units above a flat 0-height field, on every
// scan line.
type flatBandSource struct{}

func (flatBandSource) Profile(line []geom2i.Pt) []ProfilePoint {
	out := make([]ProfilePoint, len(line))
	for i, pt := range line {
		h := 0
		if pt.X >= 45 && pt.X < 55 {
			h = 3
		}
		out[i] = ProfilePoint{Position: i, Height: h}
	}
	return out
}

func TestDetectCarriageTrackFollowsRaisedBand(t *testing.T) {
	provider := scan.NewProvider(0, 0, 100, 100)
	scanner := provider.GetScanner(geom2i.Pt{X: 0, Y: 50}, geom2i.Pt{X: 99, Y: 50})
	require.NotNil(t, scanner)

	cfg := detect.DefaultConfig()
	cfg.ThicknessTolerance = 0
	cfg.LackTolerance = 1

	result := DetectCarriageTrack(scanner, flatBandSource{}, cfg)
	assert.Equal(t, ResultOK, result.Status)
	assert.True(t, result.CenterPlateau.Accepted)
	assert.NotEmpty(t, result.Left)
	assert.NotEmpty(t, result.Right)
}

func TestDetectCarriageTrackNoAvailableScanOnDegenerateArea(t *testing.T) {
	provider := scan.NewProvider(0, 0, 0, 0)
	scanner := provider.GetScanner(geom2i.Pt{X: 0, Y: 0}, geom2i.Pt{X: 10, Y: 0})
	result := DetectCarriageTrack(scanner, flatBandSource{}, detect.DefaultConfig())
	assert.Equal(t, ResultFailNoAvailableScan, result.Status)
}

// ridgeBandSource models a single ridge crossing every scan line at the
// same offset, for testing bump propagation.
type ridgeBandSource struct{}

func (ridgeBandSource) Profile(line []geom2i.Pt) []ProfilePoint {
	out := make([]ProfilePoint, len(line))
	for i, pt := range line {
		h := 0
		d := pt.X - 50
		if d < 0 {
			d = -d
		}
		if d <= 2 {
			h = 5 - d*2
		}
		out[i] = ProfilePoint{Position: i, Height: h}
	}
	return out
}

func TestDetectRidgeFollowsBump(t *testing.T) {
	provider := scan.NewProvider(0, 0, 100, 100)
	scanner := provider.GetScanner(geom2i.Pt{X: 0, Y: 50}, geom2i.Pt{X: 99, Y: 50})
	require.NotNil(t, scanner)

	cfg := detect.DefaultConfig()
	cfg.LackTolerance = 1

	result := DetectRidge(scanner, ridgeBandSource{}, true, cfg)
	assert.Equal(t, ResultOK, result.Status)
	assert.Equal(t, detect.BumpOK, result.CenterBump.Status)
}

func TestPruneTailRejectsShortRuns(t *testing.T) {
	raw := []fit[int]{{ScanIndex: 0, Accepted: true}, {ScanIndex: 1, Accepted: true}}
	assert.Nil(t, pruneTail(raw, 5))
	assert.Len(t, pruneTail(raw, 2), 2)
}

func TestPruneShiftLengthStopsAtLargeJump(t *testing.T) {
	raw := []fit[int]{
		{ScanIndex: 0, Center: 10},
		{ScanIndex: 1, Center: 11},
		{ScanIndex: 2, Center: 40},
		{ScanIndex: 3, Center: 41},
	}
	pruned := pruneShiftLength(raw, 5)
	assert.Len(t, pruned, 2)
}
