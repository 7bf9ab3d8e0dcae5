package geom2i

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineManhattanIsZeroInsideStrip(t *testing.T) {
	l := NewLineThroughPoints(Pt{0, 0}, Pt{10, 4}, Standard)
	for _, p := range []Pt{{0, 0}, {5, 2}, {10, 4}} {
		require.Equal(t, 0, l.Manhattan(p), "point %v should lie inside the standard strip", p)
		assert.True(t, l.Owns(p))
	}
}

func TestLineManhattanSignMatchesSide(t *testing.T) {
	l := NewLineThroughPoints(Pt{0, 0}, Pt{10, 0}, Thin)
	assert.Greater(t, l.Manhattan(Pt{3, 5}), 0)
	assert.Less(t, l.Manhattan(Pt{3, -5}), 0)
}

func TestLineCrossesDetectsPartialOverlap(t *testing.T) {
	l := NewLineThroughPoints(Pt{0, 0}, Pt{10, 10}, Standard)
	assert.True(t, l.Crosses(Pt{-5, 5}, Pt{5, -5}))
	assert.False(t, l.Crosses(Pt{100, 0}, Pt{100, 1}))
}

func TestCenterOfIntersectionParallelLinesIsOrigin(t *testing.T) {
	l1 := NewLineThroughPoints(Pt{0, 0}, Pt{10, 0}, Standard)
	l2 := NewLineThroughPoints(Pt{0, 5}, Pt{10, 5}, Standard)
	assert.Equal(t, Pt{0, 0}, l1.CenterOfIntersection(l2))
}

func TestGetABoundingPointLiesOnLine(t *testing.T) {
	l := NewLineThroughPoints(Pt{1, 1}, Pt{17, 5}, Standard)
	lower := l.GetABoundingPoint(false)
	upper := l.GetABoundingPoint(true)
	assert.True(t, l.Owns(lower))
	assert.Equal(t, l.A*upper.X+l.B*upper.Y, l.C+l.Nu-1)
}
