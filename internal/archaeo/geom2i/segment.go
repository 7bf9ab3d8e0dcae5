package geom2i

// Segment is a digital straight segment: a Line bounded along its dominant
// axis by [Min, Max].
type Segment struct {
	Line
	Min, Max int
}

// NewSegment builds a bounded segment of the given line type between p1 and
// p2, clipped to the work area [xmin,xmax]x[ymin,ymax] along the dominant
// axis.
func NewSegment(p1, p2 Pt, kind, xmin, ymin, xmax, ymax int) Segment {
	l := NewLineThroughPoints(p1, p2, kind)
	return boundSegment(l, xmin, ymin, xmax, ymax)
}

// NewSegmentFromAntipodal builds a bounded segment from an antipodal triple.
func NewSegmentFromAntipodal(p1, p2, p3 Pt, xmin, ymin, xmax, ymax int) Segment {
	l := NewLineFromAntipodal(p1, p2, p3)
	return boundSegment(l, xmin, ymin, xmax, ymax)
}

// NewSegmentOfWidth builds a thin-type segment of the given Euclidean-like
// integer width between p1 and p2.
func NewSegmentOfWidth(p1, p2 Pt, width int) Segment {
	l := NewLineThroughPoints(p1, p2, Thin)
	nu := width * l.Period()
	l.Nu = nu
	l.C = l.A*p1.X + l.B*p1.Y - nu/2
	s := Segment{Line: l}
	if l.A < absInt(l.B) {
		s.Min, s.Max = minMax(p1.X, p2.X)
	} else {
		s.Min, s.Max = minMax(p1.Y, p2.Y)
	}
	return s
}

// NewSegmentFromParams rebuilds a segment from its raw fields, mirroring the
// C++ private constructor used by Erosion/Dilation.
func NewSegmentFromParams(a, b, c, nu, min, max int) Segment {
	return Segment{Line: Line{A: a, B: b, C: c, Nu: nu}, Min: min, Max: max}
}

func boundSegment(l Line, xmin, ymin, xmax, ymax int) Segment {
	s := Segment{Line: l}
	if l.A < absInt(l.B) {
		s.Min, s.Max = xmin, xmax
	} else {
		s.Min, s.Max = ymin, ymax
	}
	return s
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}

// GetABoundingPoint returns a canonical bounding point of the segment,
// adjusted so it falls within [Min,Max] along the dominant axis.
func (s Segment) GetABoundingPoint(upper bool) Pt {
	extr := s.Line.GetABoundingPoint(upper)
	bb := absInt(s.B)
	dec := 0
	if s.A < bb {
		if extr.X > s.Max {
			dec = 1 + (extr.X-s.Max)/bb
		} else if extr.X < s.Min {
			dec = -1 - (s.Min-extr.X)/bb
		}
		if s.B < 0 {
			dec = -dec
		}
	} else {
		if extr.Y > s.Max {
			dec = -1 - (extr.Y-s.Max)/s.A
		} else if extr.Y < s.Min {
			dec = 1 + (s.Min-extr.Y)/s.A
		}
	}
	return Pt{extr.X - dec*s.B, extr.Y + dec*s.A}
}

// Contains reports whether p belongs to the segment, allowing an extra
// tolerance of tol naive-width strips on either side of the strip.
func (s Segment) Contains(p Pt, tol int) bool {
	pos := s.A*p.X + s.B*p.Y
	t := tol * s.Period()
	if pos < s.C-t || pos >= s.C+s.Nu+t {
		return false
	}
	if s.A < absInt(s.B) {
		return p.X >= s.Min && p.X <= s.Max
	}
	return p.Y >= s.Min && p.Y <= s.Max
}

// Length2 returns the squared length of the segment along its full span.
func (s Segment) Length2() int {
	var numin, numax, den int
	if s.A < absInt(s.B) {
		numin = s.C - s.A*s.Min
		numax = s.C - s.A*s.Max
		den = s.B
	} else {
		numin = s.C - s.B*s.Min
		numax = s.C - s.B*s.Max
		den = s.A
	}
	span := s.Max - s.Min
	return (span*span*den*den + (numax-numin)*(numax-numin) + (den*den)/2) / (den * den)
}

// Erosion shrinks the strip width by a num/den fraction of its period,
// never below one period, keeping it centered.
func (s Segment) Erosion(num, den int) Segment {
	newWidth := s.Nu
	if s.Nu > s.Period() {
		newWidth = s.Nu - (num*s.Period())/den
		if newWidth < s.Period() {
			newWidth = s.Period()
		}
	}
	return NewSegmentFromParams(s.A, s.B, s.C+(s.Nu-newWidth)/2, newWidth, s.Min, s.Max)
}

// Dilation grows the strip width by a num/den fraction of its period,
// keeping it centered.
func (s Segment) Dilation(num, den int) Segment {
	newWidth := s.Nu + (num*s.Period())/den
	return NewSegmentFromParams(s.A, s.B, s.C+(s.Nu-newWidth)/2, newWidth, s.Min, s.Max)
}

// DilationBy grows the strip by a fixed radius on both sides, returning a
// new segment (the receiver is left untouched).
func (s Segment) DilationBy(radius int) Segment {
	return NewSegmentFromParams(s.A, s.B, s.C-radius, s.Nu+2*radius, s.Min, s.Max)
}

// DilateInPlace grows the strip by a fixed radius, mutating the receiver.
func (s *Segment) DilateInPlace(radius int) {
	s.Nu += 2 * radius
	s.C -= radius
}

// SetNaive collapses the strip down to its naive (period-wide) width,
// keeping it centered.
func (s *Segment) SetNaive() {
	p := s.Period()
	s.C += (s.Nu - p) / 2
	s.Nu = p
}

// AdjustWorkArea clips a scanning work area to the segment's dominant-axis
// bound, matching DigitalStraightSegment::adjustWorkArea (the segment's max
// limit is exclusive).
func (s Segment) AdjustWorkArea(xmin, ymin, width, height int) (int, int, int, int) {
	if s.B > s.A || -s.B > s.A {
		if xmin < s.Min {
			xmin = s.Min
		}
		x2 := s.Max + 1
		if xmin+width < x2 {
			x2 = xmin + width
		}
		if xmin >= x2 {
			width = 0
		} else {
			width = x2 - xmin
		}
	} else {
		if ymin < s.Min {
			ymin = s.Min
		}
		y2 := s.Max + 1
		if ymin+height < y2 {
			y2 = ymin + height
		}
		if ymin >= y2 {
			height = 0
		} else {
			height = y2 - ymin
		}
	}
	return xmin, ymin, width, height
}
