package track

import (
	"github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"
	"github.com/banshee-data/archaeoscan/internal/archaeo/tile"
)

// TileProfileSource implements ProfileSource by looking each scan point
// up in a loaded Tile's cell index, per spec §6's grid-of-cells layout.
// Position along the scan is the point's index in the scan line (the
// scanner already walks it in stroke order); Height is the Z of the
// first tile point found vertically above/below that lattice cell, or
// skipped entirely if the cell holds no point.
type TileProfileSource struct {
	Tile *tile.Tile
}

// NewTileProfileSource wraps t for use as a track.ProfileSource.
func NewTileProfileSource(t *tile.Tile) *TileProfileSource {
	return &TileProfileSource{Tile: t}
}

// Profile implements ProfileSource.
func (s *TileProfileSource) Profile(scan []geom2i.Pt) []ProfilePoint {
	out := make([]ProfilePoint, 0, len(scan))
	for i, pt := range scan {
		z, ok := s.heightAt(pt)
		if !ok {
			continue
		}
		out = append(out, ProfilePoint{Position: i, Height: z})
	}
	return out
}

// heightAt returns the Z of the tile point sitting at (pt.X, pt.Y), if
// any. Points are stored per-cell, not per-lattice-cell, so this
// collects the owning cell's points and picks the one matching pt's
// raster coordinates.
func (s *TileProfileSource) heightAt(pt geom2i.Pt) (int, bool) {
	t := s.Tile
	if t == nil || t.CellSize <= 0 {
		return 0, false
	}
	ci, cj := pt.X/t.CellSize, pt.Y/t.CellSize
	if ci < 0 || cj < 0 || ci >= t.Cols || cj >= t.Rows {
		return 0, false
	}
	var buf []tile.Point3D
	buf, _ = t.CollectCellPoints(buf, ci, cj)
	target := tile.NewPoint3D(pt.X, pt.Y, 0)
	for _, p := range buf {
		if p.Vertical(target) {
			return p.Z, true
		}
	}
	return 0, false
}
