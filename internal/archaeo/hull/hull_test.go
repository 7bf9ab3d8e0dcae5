package hull

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"
)

func TestNewHullStartsWithThreeVertices(t *testing.T) {
	h := New(geom2i.Pt{0, 0}, geom2i.Pt{5, 2}, geom2i.Pt{10, 0})
	assert.Len(t, h.Vertices(), 3)
}

func TestAddPointExtendsHull(t *testing.T) {
	h := New(geom2i.Pt{0, 0}, geom2i.Pt{5, 2}, geom2i.Pt{10, 0})
	added := h.AddPoint(geom2i.Pt{15, -1}, false)
	require.True(t, added)
	// (10,0) lies strictly inside the new triangle (0,0),(15,-1),(5,2), so
	// the insertion replaces it and the hull keeps three vertices.
	assert.Len(t, h.Vertices(), 3)
}

func TestAddPointInsideHullIsNoop(t *testing.T) {
	h := New(geom2i.Pt{0, 0}, geom2i.Pt{5, 5}, geom2i.Pt{10, 0})
	before := h.Vertices()
	added := h.AddPoint(geom2i.Pt{5, 1}, false)
	assert.False(t, added)
	assert.Empty(t, cmp.Diff(before, h.Vertices()))
}

func TestRestoreUndoesLastInsertExactly(t *testing.T) {
	h := New(geom2i.Pt{0, 0}, geom2i.Pt{5, 2}, geom2i.Pt{10, 0})
	before := h.Vertices()
	h.Preserve()
	h.AddPointDS(geom2i.Pt{15, -1}, false)
	require.NotEmpty(t, cmp.Diff(before, h.Vertices()))
	h.Restore()
	assert.Empty(t, cmp.Diff(before, h.Vertices()), "restore must leave the hull byte-identical to its pre-add state")
}

func TestThicknessDoesNotShrinkWhenPointLeavesLine(t *testing.T) {
	h := New(geom2i.Pt{0, 0}, geom2i.Pt{5, 1}, geom2i.Pt{10, 0})
	wide := h.Thickness()
	h.AddPoint(geom2i.Pt{5, 3}, false)
	wider := h.Thickness()
	assert.True(t, wide.Less(wider) || wide.Equal(wider))
}
