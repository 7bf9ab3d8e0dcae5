// Package tile reads and writes the binary point-tile format a DTM is
// pre-assembled into: a grid of cells, each holding a run of 3D points,
// addressed via a prefix-sum cell index. Grounded on
// original_source/src/PointCloud/ipttile.h/.cpp.
package tile

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Resolution selects one of the three point densities a tile may be
// stored at.
type Resolution int

const (
	TOP Resolution = 1  // finest: every surveyed point.
	MID Resolution = 5  // mid: one point per 5x5 TOP-resolution block.
	ECO Resolution = 10 // coarsest: one point per 10x10 TOP-resolution block.
)

const (
	// XYZUnit is the fixed-point scale applied to source coordinates
	// (assumed to be in meters) before they're stored as integers.
	XYZUnit = 1000
	// MinCellSize is the finest cell size a tile can be subdivided to.
	MinCellSize = 100
)

func (r Resolution) dir() string {
	switch r {
	case MID:
		return "mid/"
	case ECO:
		return "eco/"
	default:
		return "top/"
	}
}

func (r Resolution) prefix() string {
	switch r {
	case MID:
		return "mid_"
	case ECO:
		return "eco_"
	default:
		return "top_"
	}
}

// Name returns the conventional on-disk path for a tile named name at
// resolution r, rooted at dir.
func Name(dir, name string, r Resolution) string {
	return dir + r.dir() + r.prefix() + name + ".til"
}

// Tile is a cell-indexed grid of 3D points: cells[j*cols+i] through
// cells[j*cols+i+1] bound the run of points belonging to cell (i,j) in
// row-major order.
type Tile struct {
	Cols, Rows int
	Xmin, Ymin int64
	Zmax       int64
	CellSize   int
	Cells      []int32
	Points     []Point3D
}

// New creates an empty tile sized rows x cols, with a zeroed cell index.
func New(rows, cols int) *Tile {
	return &Tile{Rows: rows, Cols: cols, CellSize: 1, Cells: make([]int32, rows*cols+1)}
}

// SetArea records the tile's lower-left corner, Z ceiling, and cell size.
func (t *Tile) SetArea(xmin, ymin, zmax int64, cellSize int) {
	t.Xmin, t.Ymin, t.Zmax, t.CellSize = xmin, ymin, zmax, cellSize
}

// CollectCellPoints appends cell (i,j)'s points to pts and returns how
// many were appended.
func (t *Tile) CollectCellPoints(pts []Point3D, i, j int) ([]Point3D, int) {
	start := t.Cells[j*t.Cols+i]
	end := t.Cells[j*t.Cols+i+1]
	pts = append(pts, t.Points[start:end]...)
	return pts, int(end - start)
}

// CollectSubcellPoints appends the points of the MinCellSize-sized subcell
// (i,j) — expressed in MinCellSize units — to pts, scanning the coarser
// cell that contains it. Returns how many points were appended.
func (t *Tile) CollectSubcellPoints(pts []Point3D, i, j int) ([]Point3D, int) {
	if t.CellSize == MinCellSize {
		return t.CollectCellPoints(pts, i, j)
	}
	nbsub := t.CellSize / MinCellSize
	ci, cj := i/nbsub, j/nbsub
	start := t.Cells[cj*t.Cols+ci]
	end := t.Cells[cj*t.Cols+ci+1]
	k := int(start)
	fin := int(end)
	for k < fin && t.Points[k].Y < j*MinCellSize {
		k++
	}
	for k < fin && t.Points[k].X < i*MinCellSize {
		k++
	}
	n := 0
	for k < fin && t.Points[k].X < (i+1)*MinCellSize && t.Points[k].Y < (j+1)*MinCellSize {
		pts = append(pts, t.Points[k])
		n++
		k++
	}
	return pts, n
}

// CellMaxSize returns the largest point count held by any single cell.
func (t *Tile) CellMaxSize() int {
	max := 0
	for i := 0; i < t.Rows*t.Cols; i++ {
		if sz := int(t.Cells[i+1] - t.Cells[i]); sz > max {
			max = sz
		}
	}
	return max
}

// CellMinSize returns the smallest point count held by any single cell,
// starting the search from upper.
func (t *Tile) CellMinSize(upper int) int {
	min := upper
	for i := 0; i < t.Rows*t.Cols; i++ {
		if sz := int(t.Cells[i+1] - t.Cells[i]); sz < min {
			min = sz
		}
	}
	return min
}

// Save writes the tile in the fixed binary layout: int32 cols, int32
// rows, int64 xmin, int64 ymin, int64 zmax, int32 cellSize, int32 point
// count, the cell index, then the point array. Each on-disk point is
// three int32s (x, y, z); the clone-count field Point3D carries in memory
// for dedup tracking during tile assembly is not part of the wire format.
func (t *Tile) Save(w io.Writer) error {
	hdr := []any{int32(t.Cols), int32(t.Rows), t.Xmin, t.Ymin, t.Zmax, int32(t.CellSize), int32(len(t.Points))}
	for _, v := range hdr {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("writing tile header: %w", err)
		}
	}
	if err := binary.Write(w, binary.LittleEndian, t.Cells); err != nil {
		return fmt.Errorf("writing cell index: %w", err)
	}
	for _, p := range t.Points {
		rec := [3]int32{int32(p.X), int32(p.Y), int32(p.Z)}
		if err := binary.Write(w, binary.LittleEndian, rec); err != nil {
			return fmt.Errorf("writing point record: %w", err)
		}
	}
	return nil
}

// Load reads a tile previously written by Save. If header is true, the
// cell index and point array are also loaded; otherwise only the header
// fields are populated (for a quick peek at a tile's extents).
func Load(r io.Reader, header bool) (*Tile, error) {
	t := &Tile{}
	var cols, rows, cellSize, nb int32
	fields := []any{&cols, &rows, &t.Xmin, &t.Ymin, &t.Zmax, &cellSize, &nb}
	for _, v := range fields {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("reading tile header: %w", err)
		}
	}
	t.Cols, t.Rows, t.CellSize = int(cols), int(rows), int(cellSize)
	if !header {
		return t, nil
	}
	t.Cells = make([]int32, rows*cols+1)
	if err := binary.Read(r, binary.LittleEndian, t.Cells); err != nil {
		return nil, fmt.Errorf("reading cell index: %w", err)
	}
	t.Points = make([]Point3D, nb)
	for i := range t.Points {
		var rec [3]int32
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("reading point record %d: %w", i, err)
		}
		t.Points[i] = Point3D{X: int(rec[0]), Y: int(rec[1]), Z: int(rec[2])}
	}
	return t, nil
}
