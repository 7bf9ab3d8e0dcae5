package tile

// Point3D is a 3D integer point loaded from a tile, tracking how many
// times an x/y-duplicate of it has been seen (nb) so the tile loader can
// flag and dedup clones at cell boundaries. Grounded on
// original_source/src/PointCloud/pt3i.h/.cpp.
type Point3D struct {
	X, Y, Z int
	nb      int
}

// NewPoint3D creates a point at the given coordinates.
func NewPoint3D(x, y, z int) Point3D { return Point3D{X: x, Y: y, Z: z} }

// GreaterThan orders points by X, then Y, then Z.
func (p Point3D) GreaterThan(o Point3D) bool {
	if p.X != o.X {
		return p.X > o.X
	}
	if p.Y != o.Y {
		return p.Y > o.Y
	}
	return p.Z > o.Z
}

// FurtherThan orders points by Y, then X, ignoring Z — the ordering used
// when walking a cell's points as a cross-stroke profile.
func (p Point3D) FurtherThan(o Point3D) bool {
	return p.Y > o.Y || (p.Y == o.Y && p.X > o.X)
}

// Found reports whether this point has been matched at least once by
// Find.
func (p Point3D) Found() bool { return p.nb != 0 }

// Refound reports whether this point has been matched more than once by
// Find, i.e. it is a true duplicate rather than a single match.
func (p Point3D) Refound() bool { return p.nb > 1 }

// Get returns the point's nth coordinate (0=X, 1=Y, 2=Z).
func (p Point3D) Get(n int) int {
	switch n {
	case 2:
		return p.Z
	case 1:
		return p.Y
	default:
		return p.X
	}
}

// Equals reports coordinate-wise equality.
func (p Point3D) Equals(o Point3D) bool { return p.X == o.X && p.Y == o.Y && p.Z == o.Z }

// Vertical reports whether p and o share the same X/Y, i.e. lie on the
// same vertical.
func (p Point3D) Vertical(o Point3D) bool { return p.X == o.X && p.Y == o.Y }

// Horizontal reports whether p and o lie at the same height.
func (p Point3D) Horizontal(o Point3D) bool { return p.Z == o.Z }

// Find marks p as matched if it is x/y-equivalent to o, bumping its match
// count and returning whether it matched.
func (p *Point3D) Find(o Point3D) bool {
	if p.Vertical(o) {
		p.nb++
		return true
	}
	return false
}
