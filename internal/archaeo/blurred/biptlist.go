// Package blurred grows a bidirectional point list on both ends as a
// stroke is scanned outward from its seed, and derives the point set's
// enclosing digital straight segment from one convex hull that tracks a
// horizontal and a vertical antipodal pair.
package blurred

import (
	"github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"
)

// PtList is a bidirectional growable list of points around one fixed
// "initial" point. Grounded on
// original_source/src/BlurredSegment/biptlist.h/.cpp.
type PtList struct {
	pts   []geom2i.Pt
	start int
}

// NewPtList creates a list seeded with a single initial point.
func NewPtList(pt geom2i.Pt) *PtList {
	return &PtList{pts: []geom2i.Pt{pt}, start: 0}
}

// Size returns the total point count.
func (l *PtList) Size() int { return len(l.pts) }

// FrontSize returns the count of points added to the front.
func (l *PtList) FrontSize() int { return l.start }

// BackSize returns the count of points added to the back.
func (l *PtList) BackSize() int { return len(l.pts) - l.start - 1 }

// InitialPoint returns the list's fixed seed point.
func (l *PtList) InitialPoint() geom2i.Pt { return l.pts[l.start] }

// FrontPoint returns the current front-most point.
func (l *PtList) FrontPoint() geom2i.Pt { return l.pts[0] }

// BackPoint returns the current back-most point.
func (l *PtList) BackPoint() geom2i.Pt { return l.pts[len(l.pts)-1] }

// AddFront grows the list on the front side.
func (l *PtList) AddFront(pt geom2i.Pt) {
	l.pts = append([]geom2i.Pt{pt}, l.pts...)
	l.start++
}

// AddBack grows the list on the back side.
func (l *PtList) AddBack(pt geom2i.Pt) {
	l.pts = append(l.pts, pt)
}

// RemoveFront drops n points from the front, always keeping at least one.
func (l *PtList) RemoveFront(n int) {
	if n >= l.FrontSize() {
		n = l.FrontSize() - 1
	}
	if n <= 0 {
		return
	}
	l.pts = l.pts[n:]
	l.start -= n
	if l.start < 0 {
		l.start = 0
	}
}

// RemoveBack drops n points from the back, always keeping at least one.
func (l *PtList) RemoveBack(n int) {
	if n >= l.BackSize() {
		n = l.BackSize() - 1
	}
	if n <= 0 {
		return
	}
	l.pts = l.pts[:len(l.pts)-n]
	if l.start >= len(l.pts) {
		l.start = len(l.pts) - 1
	}
}

// FindExtrema returns the bounding box of every point currently in the list.
func (l *PtList) FindExtrema() (xmin, ymin, xmax, ymax int) {
	xmin, ymin, xmax, ymax = l.pts[0].X, l.pts[0].Y, l.pts[0].X, l.pts[0].Y
	for _, p := range l.pts {
		if p.X < xmin {
			xmin = p.X
		}
		if p.X > xmax {
			xmax = p.X
		}
		if p.Y < ymin {
			ymin = p.Y
		}
		if p.Y > ymax {
			ymax = p.Y
		}
	}
	return
}

// FrontToBackPoints returns every point in front-to-back order.
func (l *PtList) FrontToBackPoints() []geom2i.Pt {
	out := make([]geom2i.Pt, len(l.pts))
	copy(out, l.pts)
	return out
}

// FrontPoints returns the points added on the front side, from the segment
// edge towards the initial point (excluded).
func (l *PtList) FrontPoints() []geom2i.Pt {
	out := make([]geom2i.Pt, l.start)
	copy(out, l.pts[:l.start])
	return out
}

// BackPoints returns the points added on the back side, from the initial
// point (excluded) towards the segment edge.
func (l *PtList) BackPoints() []geom2i.Pt {
	out := make([]geom2i.Pt, len(l.pts)-l.start-1)
	copy(out, l.pts[l.start+1:])
	return out
}

// HeightToEnds returns the smaller of the horizontal and vertical distance
// from pt to the line joining the list's two current end points, as an
// exact rational. The two are compared by magnitude; the returned value
// keeps its sign.
func (l *PtList) HeightToEnds(pt geom2i.Pt) geom2i.EDist {
	xh := l.xHeightToEnds(pt)
	yh := l.yHeightToEnds(pt)
	ax, ay := xh, yh
	if ax.Num < 0 {
		ax.Num = -ax.Num
	}
	if ay.Num < 0 {
		ay.Num = -ay.Num
	}
	if ax.Less(ay) {
		return xh
	}
	return yh
}

// xHeightToEnds is the signed horizontal distance from pt to the line
// through the list's front and back points, i.e. where that line crosses
// pt's Y, expressed as an exact rational (never divided).
func (l *PtList) xHeightToEnds(pt geom2i.Pt) geom2i.EDist {
	p1, p2 := l.FrontPoint(), l.BackPoint()
	dy := p2.Y - p1.Y
	if dy == 0 {
		return geom2i.NewEDist(1<<30, 1)
	}
	num := (pt.X-p1.X)*dy - (pt.Y-p1.Y)*(p2.X-p1.X)
	return geom2i.NewEDist(num, dy)
}

// yHeightToEnds is the vertical counterpart of xHeightToEnds.
func (l *PtList) yHeightToEnds(pt geom2i.Pt) geom2i.EDist {
	p1, p2 := l.FrontPoint(), l.BackPoint()
	dx := p2.X - p1.X
	if dx == 0 {
		return geom2i.NewEDist(1<<30, 1)
	}
	num := (pt.Y-p1.Y)*dx - (pt.X-p1.X)*(p2.Y-p1.Y)
	return geom2i.NewEDist(num, dx)
}
