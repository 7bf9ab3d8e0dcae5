package tile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	tl := New(2, 2)
	tl.SetArea(1000, 2000, 500, MinCellSize)
	tl.Points = []Point3D{
		NewPoint3D(0, 0, 10),
		NewPoint3D(1, 0, 12),
		NewPoint3D(0, 1, 9),
	}
	tl.Cells = []int32{0, 2, 2, 3, 3}

	var buf bytes.Buffer
	require.NoError(t, tl.Save(&buf))

	loaded, err := Load(&buf, true)
	require.NoError(t, err)
	assert.Equal(t, tl.Cols, loaded.Cols)
	assert.Equal(t, tl.Rows, loaded.Rows)
	assert.Equal(t, tl.Xmin, loaded.Xmin)
	assert.Equal(t, tl.Ymin, loaded.Ymin)
	assert.Equal(t, tl.Zmax, loaded.Zmax)
	assert.Equal(t, tl.Points, loaded.Points)
	assert.Equal(t, tl.Cells, loaded.Cells)
}

func TestCollectCellPoints(t *testing.T) {
	tl := New(1, 2)
	tl.Points = []Point3D{NewPoint3D(0, 0, 1), NewPoint3D(1, 1, 2), NewPoint3D(2, 2, 3)}
	tl.Cells = []int32{0, 2, 3}

	pts, n := tl.CollectCellPoints(nil, 0, 0)
	assert.Equal(t, 2, n)
	assert.Len(t, pts, 2)

	pts, n = tl.CollectCellPoints(nil, 1, 0)
	assert.Equal(t, 1, n)
	assert.Len(t, pts, 1)
}

func TestCellMaxMinSize(t *testing.T) {
	tl := New(1, 3)
	tl.Cells = []int32{0, 5, 7, 20}
	assert.Equal(t, 13, tl.CellMaxSize())
	assert.Equal(t, 2, tl.CellMinSize(100))
}

func TestResolutionNameConvention(t *testing.T) {
	assert.Equal(t, "root/top/top_tile1.til", Name("root/", "tile1", TOP))
	assert.Equal(t, "root/mid/mid_tile1.til", Name("root/", "tile1", MID))
	assert.Equal(t, "root/eco/eco_tile1.til", Name("root/", "tile1", ECO))
}

func TestPoint3DFindMarksDuplicates(t *testing.T) {
	p := NewPoint3D(5, 5, 100)
	assert.False(t, p.Found())
	p.Find(NewPoint3D(5, 5, 999))
	assert.True(t, p.Found())
	assert.False(t, p.Refound())
	p.Find(NewPoint3D(5, 5, 1))
	assert.True(t, p.Refound())
}
