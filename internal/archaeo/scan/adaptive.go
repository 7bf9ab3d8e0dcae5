package scan

import "github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"

// Adaptive is a directional scanner whose strip width can be rebound to a
// new support line as detection narrows in on the true bounding strip: it
// keeps a template (templA,templB,templNu) recording the strip's original
// width so BindTo can rescale it for any new line direction, rather than
// always taking a fixed-thickness strip. Grounded on
// original_source/src/DirectionalScanner/adaptivescannero8.cpp.
type Adaptive struct {
	oct Octant

	xmin, ymin, xmax, ymax int

	dla, dlb, dlc1, dlc2 int

	templA, templB, templNu int

	steps []bool
	nbs   int

	lcx, lcy int
	rcx, rcy int
	lst2, rst2 int
}

// NewAdaptiveFromEndpoints mirrors AdaptiveScannerO8's
// (...,a,b,c,nbs,steps,sx,sy) constructor: the strip's template width is
// derived from the single bounding line c and the start point.
func NewAdaptiveFromEndpoints(oct Octant, xmin, ymin, xmax, ymax int, a, b, c int, steps []bool, sx, sy int) *Adaptive {
	cxmin, cymin, cxmax, cymax := oct.boundsToCanonical(xmin, ymin, xmax, ymax)
	s := &Adaptive{
		oct: oct, xmin: cxmin, ymin: cymin, xmax: cxmax, ymax: cymax,
		dla: a, dlb: b, dlc2: c,
		dlc1: a*sx + b*sy,
		steps: steps, nbs: len(steps),
		lcx: sx, lcy: sy, rcx: sx, rcy: sy,
	}
	s.templA, s.templB = a, b
	s.templNu = s.dlc2 - s.dlc1
	return s
}

// NewAdaptiveCentered mirrors AdaptiveScannerO8's
// (...,a,b,c1,c2,nbs,steps,cx,cy) constructor.
func NewAdaptiveCentered(oct Octant, xmin, ymin, xmax, ymax int, a, b, c1, c2 int, steps []bool, cx, cy int) *Adaptive {
	cxmin, cymin, cxmax, cymax := oct.boundsToCanonical(xmin, ymin, xmax, ymax)
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	s := &Adaptive{
		oct: oct, xmin: cxmin, ymin: cymin, xmax: cxmax, ymax: cymax,
		dla: a, dlb: b, dlc1: c1, dlc2: c2,
		steps: steps, nbs: len(steps),
		lcx: cx, lcy: cy,
	}
	s.templA, s.templB = a, b
	s.templNu = s.dlc2 - s.dlc1

	st := s.nbs
	for a*s.lcx+b*s.lcy > c1 {
		st--
		if st < 0 {
			st = s.nbs - 1
		}
		if steps[st] {
			s.lcx--
		}
		s.lcy--
	}
	s.lst2, s.rst2 = st, st
	s.rcx, s.rcy = s.lcx, s.lcy
	return s
}

func (s *Adaptive) scanFrom(x, y, nst int) []geom2i.Pt {
	for (x < s.xmin || y < s.ymin) && s.dla*x+s.dlb*y <= s.dlc2 {
		if s.steps[nst] {
			x++
		}
		y++
		nst = wrap(nst+1, s.nbs)
	}
	var out []geom2i.Pt
	for s.dla*x+s.dlb*y <= s.dlc2 && x < s.xmax && y < s.ymax {
		ix, iy := s.oct.inv(x, y)
		out = append(out, geom2i.Pt{X: ix, Y: iy})
		if s.steps[nst] {
			x++
		}
		y++
		nst = wrap(nst+1, s.nbs)
	}
	return out
}

// First returns the scanner's central scan line.
func (s *Adaptive) First() []geom2i.Pt { return s.scanFrom(s.lcx, s.lcy, s.lst2) }

// NextOnLeft advances to the next scan on the left, re-walking the
// pattern until it re-crosses the dlc1 center line, then returns it.
func (s *Adaptive) NextOnLeft() []geom2i.Pt {
	s.lcx--
	for s.lcy < s.ymax-1 && s.lcx < s.xmax && s.dla*s.lcx+s.dlb*s.lcy < s.dlc1 {
		if s.steps[s.lst2] {
			s.lcx++
		}
		s.lcy++
		s.lst2 = wrap(s.lst2+1, s.nbs)
	}
	for s.lcy > s.ymin && s.lcx >= s.xmin && s.dla*s.lcx+s.dlb*s.lcy > s.dlc1 {
		s.lst2 = wrap(s.lst2-1, s.nbs)
		if s.steps[s.lst2] {
			s.lcx--
		}
		s.lcy--
	}
	return s.scanFrom(s.lcx, s.lcy, s.lst2)
}

// NextOnRight is NextOnLeft's mirror on the increasing-x side.
func (s *Adaptive) NextOnRight() []geom2i.Pt {
	s.rcx++
	for s.rcy < s.ymax-1 && s.rcx < s.xmax && s.dla*s.rcx+s.dlb*s.rcy < s.dlc1 {
		if s.steps[s.rst2] {
			s.rcx++
		}
		s.rcy++
		s.rst2 = wrap(s.rst2+1, s.nbs)
	}
	for s.rcy > s.ymin && s.rcx >= s.xmin && s.dla*s.rcx+s.dlb*s.rcy > s.dlc1 {
		s.rst2 = wrap(s.rst2-1, s.nbs)
		if s.steps[s.rst2] {
			s.rcx--
		}
		s.rcy--
	}
	return s.scanFrom(s.rcx, s.rcy, s.rst2)
}

// BindTo rescales the strip's template width to a new support line
// direction (a,b) centered on value c, keeping the template's original
// width ratio. Ported from AdaptiveScannerO8::bindTo.
func (s *Adaptive) BindTo(a, b, c int) {
	if a < 0 {
		s.dla, s.dlb, c = -a, -b, -c
	} else {
		s.dla, s.dlb = a, b
	}
	oldB := s.templB
	if oldB < 0 {
		oldB = -oldB
	}
	oldN1 := s.templA + oldB
	oldNinf := oldB
	if s.templA > oldB {
		oldNinf = s.templA
	}
	newA, newB := a, b
	if newA < 0 {
		newA = -newA
	}
	if newB < 0 {
		newB = -newB
	}
	newN1 := newA + newB
	newNinf := newB
	if newA > newB {
		newNinf = newA
	}

	var nu int
	if newN1*oldNinf > oldN1*newNinf {
		nu = (s.templNu * newN1) / oldN1
	} else {
		nu = (s.templNu * newNinf) / oldNinf
	}

	if s.dlb < 0 {
		s.dla, s.dlb, c = -s.dla, -s.dlb, -c
	}
	s.dlc1 = c - nu/2
	s.dlc2 = c + nu/2
}
