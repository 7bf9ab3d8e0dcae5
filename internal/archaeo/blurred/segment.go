package blurred

import (
	"github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"
	"github.com/banshee-data/archaeoscan/internal/archaeo/hull"
)

// Segment is a growable set of points known to lie inside a digital
// straight line: the blurred segment the plateau/bump detectors fit a
// structure's cross-stroke profile against. It owns a bidirectional point
// list and the convex hull tracking that list's antipodal pair, so its
// enclosing DigitalStraightSegment is always available in amortized O(1)
// per added point. Grounded on
// original_source/src/BlurredSegment/blurredsegment.h.
type Segment struct {
	points *PtList
	ch     *hull.Hull
	dss    geom2i.Segment

	// last known antipodal triple, tracked for IsAntipodal/diagnostics.
	laps, lape, lapv geom2i.Pt

	scanSet             bool
	scanCenter, scanDir geom2i.Pt
}

// New creates a blurred segment seeded by a single initial point (before
// any hull exists — a real strip only forms once the list holds three
// points, the seed plus two added via Grow).
func New(initial geom2i.Pt) *Segment {
	return &Segment{points: NewPtList(initial)}
}

// Grow adds pt to the front (toFront=true) or back of the segment, folding
// it into the tracked convex hull and refreshing the enclosing digital
// straight segment. The first two points added after the seed bootstrap the
// hull (which needs three non-degenerate points to exist); after that every
// Grow is the amortized O(1) hull insertion.
func (s *Segment) Grow(pt geom2i.Pt, toFront bool) {
	if toFront {
		s.points.AddFront(pt)
	} else {
		s.points.AddBack(pt)
	}

	switch {
	case s.ch == nil && s.points.Size() == 3:
		pts := s.points.FrontToBackPoints()
		s.ch = hull.New(pts[0], pts[1], pts[2])
	case s.ch != nil:
		s.ch.AddPoint(pt, toFront)
	default:
		return
	}
	s.refreshSegment()
}

func (s *Segment) refreshSegment() {
	if s.ch == nil {
		return
	}
	es, ee, v := s.ch.AntipodalEdgeAndVertex()
	s.laps, s.lape, s.lapv = es, ee, v
	xmin, ymin, xmax, ymax := s.points.FindExtrema()
	s.dss = geom2i.NewSegmentFromAntipodal(es, ee, v, xmin, ymin, xmax, ymax)
}

// SetScan records the central scan line used to detect this segment, for
// later template propagation.
func (s *Segment) SetScan(center, dir geom2i.Pt) {
	s.scanSet = true
	s.scanCenter, s.scanDir = center, dir
}

// MinimalWidth returns the smaller of the hull's horizontal/vertical
// antipodal thicknesses (zero/undefined before the hull exists).
func (s *Segment) MinimalWidth() geom2i.EDist {
	if s.ch == nil {
		return geom2i.NewEDist(0, 1)
	}
	return s.ch.Thickness()
}

// IsThick reports whether the segment's bounding strip has non-unit width,
// i.e. its points are not all exactly colinear.
func (s *Segment) IsThick() bool { return s.dss.Nu > 1 }

// Segment returns the current enclosing digital straight segment.
func (s *Segment) Segment() geom2i.Segment { return s.dss }

// Size returns the point count.
func (s *Segment) Size() int { return s.points.Size() }

// Center returns the seed point the segment grew from.
func (s *Segment) Center() geom2i.Pt { return s.points.InitialPoint() }

// LeftPoints returns the points grown on the front side.
func (s *Segment) LeftPoints() []geom2i.Pt { return s.points.FrontPoints() }

// RightPoints returns the points grown on the back side.
func (s *Segment) RightPoints() []geom2i.Pt { return s.points.BackPoints() }

// AllPoints returns every point, ordered front to back.
func (s *Segment) AllPoints() []geom2i.Pt { return s.points.FrontToBackPoints() }

// LastLeft returns the current front-most point.
func (s *Segment) LastLeft() geom2i.Pt { return s.points.FrontPoint() }

// LastRight returns the current back-most point.
func (s *Segment) LastRight() geom2i.Pt { return s.points.BackPoint() }

// SquaredLength returns the squared Euclidean distance between the
// segment's two end points.
func (s *Segment) SquaredLength() int {
	p1, p2 := s.points.FrontPoint(), s.points.BackPoint()
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	return dx*dx + dy*dy
}

// Middle returns the midpoint between the segment's two end points.
func (s *Segment) Middle() geom2i.Pt {
	p1, p2 := s.points.FrontPoint(), s.points.BackPoint()
	return geom2i.Pt{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
}

// SupportVector returns the direction vector of the enclosing segment.
func (s *Segment) SupportVector() geom2i.Vec {
	return s.dss.SupportVector()
}

// BoundingBoxSize returns the size of the point list's bounding box.
func (s *Segment) BoundingBoxSize() geom2i.Vec {
	xmin, ymin, xmax, ymax := s.points.FindExtrema()
	return geom2i.Vec{X: xmax - xmin, Y: ymax - ymin}
}

// IsAntipodal reports whether pt is one of the three points currently
// defining the thinnest antipodal pair.
func (s *Segment) IsAntipodal(pt geom2i.Pt) bool {
	return pt == s.laps || pt == s.lape || pt == s.lapv
}

// AntipodalTriple returns the last known antipodal edge (start, end) and
// opposite vertex.
func (s *Segment) AntipodalTriple() (start, end, vertex geom2i.Pt) {
	return s.laps, s.lape, s.lapv
}
