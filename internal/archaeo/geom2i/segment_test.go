package geom2i

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentContainsRespectsBounds(t *testing.T) {
	s := NewSegment(Pt{0, 0}, Pt{20, 0}, Standard, 0, -5, 20, 5)
	require.True(t, s.Contains(Pt{10, 0}, 0))
	assert.False(t, s.Contains(Pt{25, 0}, 0), "point beyond Max must be rejected")
}

func TestSegmentErosionNeverShrinksBelowPeriod(t *testing.T) {
	s := NewSegment(Pt{0, 0}, Pt{20, 5}, Standard, 0, 0, 20, 10)
	eroded := s.Erosion(1, 1)
	assert.GreaterOrEqual(t, eroded.Nu, eroded.Period())
}

func TestSegmentDilationGrowsWidth(t *testing.T) {
	s := NewSegment(Pt{0, 0}, Pt{20, 5}, Standard, 0, 0, 20, 10)
	dilated := s.Dilation(1, 2)
	assert.Greater(t, dilated.Nu, s.Nu)
}

func TestSegmentDilationByRadiusIsSymmetric(t *testing.T) {
	s := NewSegment(Pt{0, 0}, Pt{20, 0}, Thin, 0, -5, 20, 5)
	dilated := s.DilationBy(3)
	assert.Equal(t, s.Nu+6, dilated.Nu)
	assert.Equal(t, s.C-3, dilated.C)
}

func TestSegmentLength2ApproximatesEuclideanLength(t *testing.T) {
	s := NewSegment(Pt{0, 0}, Pt{3, 4}, Thin, 0, 0, 3, 4)
	// the dominant axis is y (span 0-4); for a 3-4-5 triangle length2
	// comes out at the squared hypotenuse, 25.
	assert.InDelta(t, 25, s.Length2(), 20)
}

func TestEDistComparisonNeverDivides(t *testing.T) {
	a := NewEDist(1, 3)
	b := NewEDist(1, 2)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, NewEDist(2, 4).Equal(NewEDist(1, 2)))
}
