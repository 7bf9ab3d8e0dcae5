package track

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"
	"github.com/banshee-data/archaeoscan/internal/archaeo/tile"
)

// buildFlatTile builds a size x size single-cell tile where Z = x + y,
// so a profile's heights are easy to predict.
func buildFlatTile(t *testing.T, size int) *tile.Tile {
	t.Helper()
	tl := tile.New(1, 1)
	tl.SetArea(0, 0, 100, size)
	var pts []tile.Point3D
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			pts = append(pts, tile.NewPoint3D(x, y, x+y))
		}
	}
	tl.Points = pts
	tl.Cells[0] = 0
	tl.Cells[1] = int32(len(pts))
	return tl
}

func TestTileProfileSourceLooksUpHeights(t *testing.T) {
	tl := buildFlatTile(t, 10)
	src := NewTileProfileSource(tl)

	scan := []geom2i.Pt{{X: 0, Y: 5}, {X: 1, Y: 5}, {X: 2, Y: 5}}
	profile := src.Profile(scan)

	assert.Len(t, profile, 3)
	assert.Equal(t, 5, profile[0].Height)
	assert.Equal(t, 6, profile[1].Height)
	assert.Equal(t, 7, profile[2].Height)
	assert.Equal(t, 0, profile[0].Position)
	assert.Equal(t, 2, profile[2].Position)
}

func TestTileProfileSourceSkipsOutOfBoundsPoints(t *testing.T) {
	tl := buildFlatTile(t, 10)
	src := NewTileProfileSource(tl)

	scan := []geom2i.Pt{{X: -1, Y: 5}, {X: 0, Y: 5}, {X: 50, Y: 50}}
	profile := src.Profile(scan)

	assert.Len(t, profile, 1)
	assert.Equal(t, 5, profile[0].Height)
}
