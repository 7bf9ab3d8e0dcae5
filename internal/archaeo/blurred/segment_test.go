package blurred

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"
)

func TestNewSegmentSeedsSinglePoint(t *testing.T) {
	s := New(geom2i.Pt{X: 10, Y: 10})
	assert.Equal(t, 1, s.Size())
	assert.Equal(t, geom2i.Pt{X: 10, Y: 10}, s.Center())
}

func TestGrowBootstrapsHullAtThreePoints(t *testing.T) {
	s := New(geom2i.Pt{X: 5, Y: 0})
	s.Grow(geom2i.Pt{X: 0, Y: 0}, true)
	s.Grow(geom2i.Pt{X: 10, Y: 0}, false)
	require.Equal(t, 3, s.Size())
	assert.NotNil(t, s.ch)
	assert.Equal(t, geom2i.Pt{X: 0, Y: 0}, s.LastLeft())
	assert.Equal(t, geom2i.Pt{X: 10, Y: 0}, s.LastRight())
}

func TestGrowExtendsHullAndSegment(t *testing.T) {
	s := New(geom2i.Pt{X: 5, Y: 0})
	s.Grow(geom2i.Pt{X: 0, Y: 0}, true)
	s.Grow(geom2i.Pt{X: 10, Y: 0}, false)
	before := s.Segment()
	s.Grow(geom2i.Pt{X: 15, Y: 0}, false)
	assert.Equal(t, 4, s.Size())
	assert.NotEqual(t, before.Max, s.Segment().Max)
}

func TestLeftRightPointsSplitAroundSeed(t *testing.T) {
	s := New(geom2i.Pt{X: 5, Y: 0})
	s.Grow(geom2i.Pt{X: 0, Y: 0}, true)
	s.Grow(geom2i.Pt{X: 10, Y: 0}, false)
	assert.Len(t, s.LeftPoints(), 1)
	assert.Len(t, s.RightPoints(), 1)
	assert.Len(t, s.AllPoints(), 3)
}

func TestIsAntipodalRecognisesTrackedTriple(t *testing.T) {
	s := New(geom2i.Pt{X: 5, Y: 1})
	s.Grow(geom2i.Pt{X: 0, Y: 0}, true)
	s.Grow(geom2i.Pt{X: 10, Y: 0}, false)
	start, end, vertex := s.AntipodalTriple()
	assert.True(t, s.IsAntipodal(start))
	assert.True(t, s.IsAntipodal(end))
	assert.True(t, s.IsAntipodal(vertex))
	assert.False(t, s.IsAntipodal(geom2i.Pt{X: 99, Y: 99}))
}

func TestMiddleAndBoundingBoxSize(t *testing.T) {
	s := New(geom2i.Pt{X: 5, Y: 0})
	s.Grow(geom2i.Pt{X: 0, Y: 0}, true)
	s.Grow(geom2i.Pt{X: 10, Y: 2}, false)
	assert.Equal(t, geom2i.Pt{X: 5, Y: 1}, s.Middle())
	box := s.BoundingBoxSize()
	assert.Equal(t, 10, box.X)
	assert.Equal(t, 2, box.Y)
}
