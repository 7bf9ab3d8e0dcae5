package scan

import "github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"

// Provider builds directional scanners sized to a fixed scan area,
// dispatching to the right octant from either a two-point or a
// center+normal+length description of the initial scan. Grounded on
// original_source/src/DirectionalScanner/scannerprovider.cpp.
type Provider struct {
	xmin, ymin, xmax, ymax int
	lastReversed           bool
}

// NewProvider builds a provider over area [x0,x0+sizex) x [y0,y0+sizey).
func NewProvider(x0, y0, sizex, sizey int) *Provider {
	return &Provider{xmin: x0, ymin: y0, xmax: x0 + sizex, ymax: y0 + sizey}
}

// IsLastScanReversed reports whether the last GetScanner call swapped its
// input vector to enforce the provider's canonical orientation.
func (p *Provider) IsLastScanReversed() bool { return p.lastReversed }

// classify picks the octant and normal form (a,b with a>=0) for a
// direction vector, mirroring scannerprovider.cpp's cascade of signs/slope
// comparisons.
func classify(a, b int) (Octant, int, int) {
	if a < 0 || (a == 0 && b < 0) {
		a, b = -a, -b
	}
	switch {
	case b < 0 && -b > a:
		return O1, a, b
	case b < 0:
		return O2, a, b
	case b > a:
		return O8, a, b
	default:
		return O7, a, b
	}
}

// GetScanner builds a scanner whose first scan is the segment p1->p2,
// reordering the pair if necessary so p1 is below (or left-of, on ties)
// p2.
func (p *Provider) GetScanner(p1, p2 geom2i.Pt) *Scanner {
	p.lastReversed = p1.Y > p2.Y || (p1.Y == p2.Y && p1.X > p2.X)
	if p.lastReversed {
		p1, p2 = p2, p1
	}
	steps := geom2i.StepsTo(p1, p2)
	a := p2.X - p1.X
	b := p2.Y - p1.Y
	oct, na, nb := classify(a, b)
	c2 := na*p2.X + nb*p2.Y
	return NewFromEndpoints(oct, p.xmin, p.ymin, p.xmax, p.ymax, na, nb, c2, steps, p1.X, p1.Y)
}

// GetScannerFromNormal builds a scanner whose first scan is centered on
// centre with the given normal direction and length.
func (p *Provider) GetScannerFromNormal(centre geom2i.Pt, normal geom2i.Vec, length int) *Scanner {
	oct, na, nb, steps := p.normalSetup(centre, normal)
	return NewCenteredLength(oct, p.xmin, p.ymin, p.xmax, p.ymax, na, nb, steps, centre.X, centre.Y, length)
}

// GetAdaptiveScanner is GetScanner's adaptive-mode counterpart: the
// returned scanner's strip can be rebound to a new direction via BindTo.
func (p *Provider) GetAdaptiveScanner(p1, p2 geom2i.Pt) *Adaptive {
	p.lastReversed = p1.Y > p2.Y || (p1.Y == p2.Y && p1.X > p2.X)
	if p.lastReversed {
		p1, p2 = p2, p1
	}
	steps := geom2i.StepsTo(p1, p2)
	a := p2.X - p1.X
	b := p2.Y - p1.Y
	oct, na, nb := classify(a, b)
	c2 := na*p2.X + nb*p2.Y
	return NewAdaptiveFromEndpoints(oct, p.xmin, p.ymin, p.xmax, p.ymax, na, nb, c2, steps, p1.X, p1.Y)
}

func (p *Provider) normalSetup(centre geom2i.Pt, normal geom2i.Vec) (Octant, int, int, []bool) {
	end := geom2i.Pt{X: centre.X + normal.X, Y: centre.Y + normal.Y}
	steps := geom2i.StepsTo(centre, end)
	a, b := normal.X, normal.Y
	p.lastReversed = b < 0 || (b == 0 && a < 0)
	if a < 0 || (a == 0 && b < 0) {
		a, b = -a, -b
	}
	oct, na, nb := classify(a, b)
	return oct, na, nb, steps
}

// IsReversed reports whether vec would be reversed by GetScannerFromNormal
// to reach the provider's canonical orientation (y>=0, or y==0 && x>=0).
func IsReversed(vec geom2i.Vec) bool {
	return vec.Y < 0 || (vec.Y == 0 && vec.X < 0)
}
