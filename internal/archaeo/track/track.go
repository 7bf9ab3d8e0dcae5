// Package track drives a directional scanner and a single-scan detector
// (package detect) side by side from a central stroke outward, per
// spec §4.7: propagate a template scan by scan until a side accumulates
// too many consecutive misses, then prune the accepted run for erratic
// shifts, sparse acceptance, and a thin trailing tail. Grounded on the
// teacher's internal/lidar/tracking.go (lifecycle counters, status enum,
// config-carrying tracker struct) generalized from 2-D Kalman tracking
// to 1-D scan-line template propagation.
package track

import "github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"

// Status is the top-level outcome of detecting one structure from a
// stroke, per spec §4.7.
type Status int

const (
	ResultOK Status = iota
	ResultNone
	ResultFailTooNarrowInput
	ResultFailNoAvailableScan
	ResultFailNoCentralFit
	ResultFailNoConsistentSequence
	ResultFailNoBounds
	ResultFailTooHecticPlateaux
	ResultFailTooSparsePlateaux
)

func (s Status) String() string {
	switch s {
	case ResultOK:
		return "RESULT_OK"
	case ResultNone:
		return "RESULT_NONE"
	case ResultFailTooNarrowInput:
		return "RESULT_FAIL_TOO_NARROW_INPUT"
	case ResultFailNoAvailableScan:
		return "RESULT_FAIL_NO_AVAILABLE_SCAN"
	case ResultFailNoCentralFit:
		return "RESULT_FAIL_NO_CENTRAL_PLATEAU_OR_BUMP"
	case ResultFailNoConsistentSequence:
		return "RESULT_FAIL_NO_CONSISTENT_SEQUENCE"
	case ResultFailNoBounds:
		return "RESULT_FAIL_NO_BOUNDS"
	case ResultFailTooHecticPlateaux:
		return "RESULT_FAIL_TOO_HECTIC_PLATEAUX"
	case ResultFailTooSparsePlateaux:
		return "RESULT_FAIL_TOO_SPARSE_PLATEAUX"
	default:
		return "UNKNOWN"
	}
}

// ProfileSource turns one scan line's lattice points into a 1-D height
// profile, projecting the 3-D points a tile set holds along that scan
// onto the stroke direction. Implementations own the point lookup (a
// tile.Store, a prefetched point cache, ...); track itself only drives
// the scanner and the detector.
type ProfileSource interface {
	Profile(scan []geom2i.Pt) []ProfilePoint
}

// ProfilePoint is one sample along a scan: Position is the offset along
// the scan (matching detect.ProfilePoint's field of the same name so the
// two are interchangeable at call sites), Height its elevation.
type ProfilePoint struct {
	Position int
	Height   int
}

// ProfileSourceFunc adapts a plain function to ProfileSource.
type ProfileSourceFunc func(scan []geom2i.Pt) []ProfilePoint

func (f ProfileSourceFunc) Profile(scan []geom2i.Pt) []ProfilePoint { return f(scan) }

// Scan advances one of the two scanner sides and returns the scan-line
// points, or nil once the scanner runs off the tile area.
type Scan interface {
	NextOnLeft() []geom2i.Pt
	NextOnRight() []geom2i.Pt
}

// fit is one accepted or rejected propagation step.
type fit[T any] struct {
	ScanIndex int
	Accepted  bool
	Center    int
	Template  T
}

// fitFunc tries to fit profile against the current template, returning
// whether it was accepted, the fit's estimated center, and the template
// to propagate forward (unchanged on rejection).
type fitFunc[T any] func(profile []ProfilePoint, tmpl T) (accepted bool, center int, next T)

// runSide drives one side of the scanner: advance a scan, fit it against
// the running template, and either extend the template and reset the
// miss counter or increment it — breaking once the miss counter exceeds
// lackTolerance, per spec §4.7's per-side state machine.
func runSide[T any](scanner Scan, left bool, source ProfileSource, initial T, lackTolerance int, fn fitFunc[T]) []fit[T] {
	var results []fit[T]
	tmpl := initial
	miss := 0
	for i := 0; ; i++ {
		var line []geom2i.Pt
		if left {
			line = scanner.NextOnLeft()
		} else {
			line = scanner.NextOnRight()
		}
		if len(line) == 0 {
			break
		}
		profile := source.Profile(line)
		accepted, center, next := fn(profile, tmpl)
		if accepted {
			results = append(results, fit[T]{ScanIndex: i, Accepted: true, Center: center, Template: next})
			tmpl = next
			miss = 0
			continue
		}
		miss++
		if miss > lackTolerance {
			break
		}
	}
	return results
}

// pruneShiftLength drops the tail of results once an instantaneous
// center shift exceeds maxShift, per spec §4.7's shift-length pruning
// pass (tracks only — ridges/hollows don't apply it).
func pruneShiftLength[T any](results []fit[T], maxShift int) []fit[T] {
	for i := 1; i < len(results); i++ {
		if abs(results[i].Center-results[i-1].Center) > maxShift {
			return results[:i]
		}
	}
	return results
}

// pruneDensity drops the trailing part of results once the accepted
// ratio over a trailing window of size window falls below minDensity.
func pruneDensity[T any](results []fit[T], window int, minDensity float64) []fit[T] {
	if window <= 0 || len(results) <= window {
		return results
	}
	for i := window; i <= len(results); i++ {
		accepted := 0
		for _, r := range results[i-window : i] {
			if r.Accepted {
				accepted++
			}
		}
		if float64(accepted)/float64(window) < minDensity {
			return results[:i-window]
		}
	}
	return results
}

// pruneTail rejects the entire run if its final accepted length is
// under tailMinSize, per spec §4.7's tail pruning pass.
func pruneTail[T any](results []fit[T], tailMinSize int) []fit[T] {
	if len(results) < tailMinSize {
		return nil
	}
	return results
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
