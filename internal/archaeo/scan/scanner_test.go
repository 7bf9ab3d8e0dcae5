package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"
)

func TestProviderGetScannerO7FirstScanMatchesEndpoints(t *testing.T) {
	p := NewProvider(0, 0, 100, 100)
	s := p.GetScanner(geom2i.Pt{X: 10, Y: 10}, geom2i.Pt{X: 20, Y: 15})
	first := s.First()
	require.NotEmpty(t, first)
	assert.Equal(t, geom2i.Pt{X: 10, Y: 10}, first[0])
}

func TestProviderReordersDescendingEndpoints(t *testing.T) {
	p := NewProvider(0, 0, 100, 100)
	p.GetScanner(geom2i.Pt{X: 20, Y: 15}, geom2i.Pt{X: 10, Y: 10})
	assert.True(t, p.IsLastScanReversed())
}

func TestScannerNextOnLeftAndRightShiftAwayFromCenter(t *testing.T) {
	p := NewProvider(0, 0, 100, 100)
	s := p.GetScanner(geom2i.Pt{X: 10, Y: 10}, geom2i.Pt{X: 20, Y: 15})
	first := s.First()
	left := s.NextOnLeft()
	right := s.NextOnRight()
	require.NotEmpty(t, left)
	require.NotEmpty(t, right)
	assert.NotEqual(t, first, left)
	assert.NotEqual(t, first, right)
}

func TestSkipLeftAdvancesMultipleScans(t *testing.T) {
	p := NewProvider(0, 0, 100, 100)
	s := p.GetScanner(geom2i.Pt{X: 10, Y: 10}, geom2i.Pt{X: 20, Y: 15})
	s2 := p.GetScanner(geom2i.Pt{X: 10, Y: 10}, geom2i.Pt{X: 20, Y: 15})
	single := s.NextOnLeft()
	_ = single
	single = s.NextOnLeft()
	skipped := s2.SkipLeft(2)
	assert.Equal(t, single, skipped)
}

func TestLocateCentralScanStartIsOrigin(t *testing.T) {
	p := NewProvider(0, 0, 100, 100)
	s := p.GetScanner(geom2i.Pt{X: 10, Y: 10}, geom2i.Pt{X: 20, Y: 15})
	loc := s.Locate(geom2i.Pt{X: 10, Y: 10})
	assert.Equal(t, 0, loc.X)
	assert.Equal(t, 0, loc.Y)
}

func TestOctantClassificationCoversAllFourSectors(t *testing.T) {
	cases := []struct {
		a, b int
		want Octant
	}{
		{2, 10, O8},
		{10, 2, O7},
		{10, -2, O2},
		{2, -10, O1},
	}
	for _, c := range cases {
		oct, _, _ := classify(c.a, c.b)
		assert.Equal(t, c.want, oct)
	}
}

func TestAdaptiveScannerBindToRescalesTemplate(t *testing.T) {
	p := NewProvider(0, 0, 100, 100)
	a := p.GetAdaptiveScanner(geom2i.Pt{X: 10, Y: 10}, geom2i.Pt{X: 20, Y: 12})
	first := a.First()
	require.NotEmpty(t, first)
	a.BindTo(2, 5, 40)
	rebound := a.First()
	assert.NotNil(t, rebound)
}
