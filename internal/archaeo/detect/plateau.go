package detect

import (
	"github.com/banshee-data/archaeoscan/internal/archaeo/blurred"
	"github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"
)

// PlateauStatus classifies the outcome of a single-scan plateau fit.
type PlateauStatus int

const (
	PlateauOK PlateauStatus = iota
	PlateauNotEnoughInputPts
	PlateauTooNarrow
	PlateauNotEnoughAltPts
	PlateauNotEnoughCnxPts
	PlateauNoBoundPos
	PlateauOptimalHeightUnderUsed
	PlateauTooLargeNarrowing
	PlateauTooLargeWidening
	PlateauNoBS
	PlateauTooLargeBSTilt
	PlateauOutOfHeightRef
)

func (s PlateauStatus) String() string {
	switch s {
	case PlateauOK:
		return "OK"
	case PlateauNotEnoughInputPts:
		return "NOT_ENOUGH_INPUT_PTS"
	case PlateauTooNarrow:
		return "TOO_NARROW"
	case PlateauNotEnoughAltPts:
		return "NOT_ENOUGH_ALT_PTS"
	case PlateauNotEnoughCnxPts:
		return "NOT_ENOUGH_CNX_PTS"
	case PlateauNoBoundPos:
		return "NO_BOUND_POS"
	case PlateauOptimalHeightUnderUsed:
		return "OPTIMAL_HEIGHT_UNDER_USED"
	case PlateauTooLargeNarrowing:
		return "TOO_LARGE_NARROWING"
	case PlateauTooLargeWidening:
		return "TOO_LARGE_WIDENING"
	case PlateauNoBS:
		return "NO_BS"
	case PlateauTooLargeBSTilt:
		return "TOO_LARGE_BS_TILT"
	case PlateauOutOfHeightRef:
		return "OUT_OF_HEIGHT_REF"
	default:
		return "UNKNOWN"
	}
}

// ProfilePoint is one sample of a 1-D height profile along a scan:
// Position is the offset along the scan, Height the elevation there.
type ProfilePoint struct {
	Position int
	Height   int
}

// PlateauTemplate is the predicted plateau a new scan's fit is compared
// against, carried forward from the previous accepted scan.
type PlateauTemplate struct {
	Start, End int
	Height     int
	Width      int
}

// Plateau is the result of fitting one scan's profile against a template,
// per spec §4.5.
type Plateau struct {
	Status PlateauStatus

	InternalStart, InternalEnd   int
	ExternalStart, ExternalEnd   int
	ReferenceStart, ReferenceEnd int
	ReferenceHeight              int
	MinHeight                    int

	EstimatedCenter    int
	EstimatedWidth     int
	EstimatedDeviation geom2i.EDist

	StartConsistent, EndConsistent, WidthConsistent bool
	Accepted                                        bool
}

// FitPlateau fits profile against template per cfg's tolerances,
// implementing spec §4.5's algorithm outline: restrict to points within
// thickness tolerance of the template's min height, require a connected
// run of minimum length, bound it with a blurred segment, and check the
// segment's tilt, shift, and width-change against the template.
func FitPlateau(profile []ProfilePoint, tmpl PlateauTemplate, cfg Config) Plateau {
	p := Plateau{
		ReferenceStart: tmpl.Start, ReferenceEnd: tmpl.End, ReferenceHeight: tmpl.Height,
	}
	if len(profile) == 0 {
		p.Status = PlateauNotEnoughInputPts
		return p
	}

	minHeight := tmpl.Height
	var run []ProfilePoint
	for _, pt := range profile {
		if abs(pt.Height-minHeight) <= cfg.ThicknessTolerance {
			run = append(run, pt)
		}
	}
	if len(run) == 0 {
		p.Status = PlateauNotEnoughAltPts
		return p
	}

	connected := nearestConnectedRun(run, (tmpl.Start+tmpl.End)/2)
	if len(connected) < 2 || connected[len(connected)-1].Position-connected[0].Position+1 < cfg.MinLength {
		p.Status = PlateauNotEnoughCnxPts
		return p
	}

	seg := boundingSegment(connected)
	if seg == nil {
		p.Status = PlateauNoBS
		return p
	}
	tilt := segmentTiltMilliradians(*seg)
	if tilt > cfg.BSMaxTilt {
		p.Status = PlateauTooLargeBSTilt
		return p
	}

	p.InternalStart, p.InternalEnd = connected[0].Position, connected[len(connected)-1].Position
	p.ExternalStart = p.InternalStart - cfg.ThicknessTolerance
	p.ExternalEnd = p.InternalEnd + cfg.ThicknessTolerance
	p.MinHeight = minHeight

	center := (p.InternalStart + p.InternalEnd) / 2
	refCenter := (tmpl.Start + tmpl.End) / 2
	if abs(center-refCenter) > cfg.SideShiftTolerance {
		p.Status = PlateauNoBoundPos
		return p
	}

	width := p.InternalEnd - p.InternalStart
	if tmpl.Width > 0 {
		ratio := float64(width) / float64(tmpl.Width)
		switch {
		case ratio < 1-cfg.WidthToleranceRatio:
			p.Status = PlateauTooLargeNarrowing
			return p
		case ratio > 1+cfg.WidthToleranceRatio:
			p.Status = PlateauTooLargeWidening
			return p
		}
	}

	p.EstimatedCenter = center
	p.EstimatedWidth = width
	p.EstimatedDeviation = deviationFromSupportVector(seg.SupportVector())
	p.StartConsistent = abs(p.InternalStart-tmpl.Start) <= cfg.SideShiftTolerance
	p.EndConsistent = abs(p.InternalEnd-tmpl.End) <= cfg.SideShiftTolerance
	p.WidthConsistent = true
	p.Status = PlateauOK
	p.Accepted = true
	return p
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// nearestConnectedRun splits pts (an already position-sorted, possibly
// gappy subset of the profile) into maximal runs of contiguous positions
// and returns the one whose center lies closest to refCenter — the run
// the previous scan's template predicts propagation into, not simply the
// longest candidate band.
func nearestConnectedRun(pts []ProfilePoint, refCenter int) []ProfilePoint {
	var runs [][]ProfilePoint
	start := 0
	for i := 1; i <= len(pts); i++ {
		if i == len(pts) || pts[i].Position != pts[i-1].Position+1 {
			runs = append(runs, pts[start:i])
			start = i
		}
	}
	best := runs[0]
	bestDist := abs(runCenter(best) - refCenter)
	for _, r := range runs[1:] {
		if d := abs(runCenter(r) - refCenter); d < bestDist {
			best, bestDist = r, d
		}
	}
	return best
}

func runCenter(r []ProfilePoint) int {
	return (r[0].Position + r[len(r)-1].Position) / 2
}

// boundingSegment fits a blurred segment to a connected profile run,
// treating (Position, Height) pairs as 2D lattice points.
func boundingSegment(run []ProfilePoint) *blurred.Segment {
	if len(run) < 1 {
		return nil
	}
	mid := run[len(run)/2]
	s := blurred.New(geom2i.Pt{X: mid.Position, Y: mid.Height})
	for i, pt := range run {
		if pt.Position == mid.Position && pt.Height == mid.Height {
			continue
		}
		s.Grow(geom2i.Pt{X: pt.Position, Y: pt.Height}, i < len(run)/2)
	}
	return s
}

// segmentTiltMilliradians approximates the blurred segment's tilt from
// its support vector, in milliradians, via the small-angle ratio dy/dx.
func segmentTiltMilliradians(s blurred.Segment) int {
	v := s.SupportVector()
	if v.X == 0 {
		return 1 << 20
	}
	return abs(v.Y * 1000 / v.X)
}

func deviationFromSupportVector(v geom2i.Vec) geom2i.EDist {
	if v.X == 0 {
		return geom2i.NewEDist(1<<30, 1)
	}
	return geom2i.NewEDist(v.Y, v.X)
}
