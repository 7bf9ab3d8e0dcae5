package track

import (
	"github.com/banshee-data/archaeoscan/internal/archaeo/detect"
	"github.com/banshee-data/archaeoscan/internal/archaeo/scan"
)

// densityWindow is the trailing-window size the density pruning pass
// averages over. Spec §4.7 leaves the window size an operator knob; this
// picks a small fixed window on the same scale as the tail-pruning
// minimum run size, rather than exposing yet another tunable.
const densityWindow = 5

// PlateauFit is one scan's accepted plateau fit along a carriage-track
// side that survived pruning.
type PlateauFit struct {
	ScanIndex int
	Center    int
	Plateau   detect.Plateau
}

// CarriageTrackResult is the outcome of propagating a carriage-track
// template outward from a central scan, per spec §4.7.
type CarriageTrackResult struct {
	Status        Status
	CenterPlateau detect.Plateau
	Left, Right   []PlateauFit
}

// DetectCarriageTrack scans outward from scanner's central line, fitting
// a plateau against a template seeded from the central scan and
// propagated scan by scan to either side until each side's miss counter
// exceeds cfg.LackTolerance. Grounded on spec §4.7's per-side state
// machine and pruning passes.
func DetectCarriageTrack(scanner *scan.Scanner, source ProfileSource, cfg detect.Config) CarriageTrackResult {
	central := scanner.First()
	if len(central) == 0 {
		return CarriageTrackResult{Status: ResultFailNoAvailableScan}
	}
	profile := source.Profile(central)
	if len(profile) < 2 {
		return CarriageTrackResult{Status: ResultFailTooNarrowInput}
	}

	seed := seedPlateauTemplate(profile)
	centerFit := detect.FitPlateau(toDetectProfile(profile), seed, cfg)
	if !centerFit.Accepted {
		return CarriageTrackResult{Status: ResultFailNoCentralFit, CenterPlateau: centerFit}
	}
	tmpl := plateauTemplateFrom(centerFit)

	fn := func(p []ProfilePoint, t detect.PlateauTemplate) (bool, int, detect.PlateauTemplate) {
		r := detect.FitPlateau(toDetectProfile(p), t, cfg)
		if !r.Accepted {
			return false, 0, t
		}
		return true, r.EstimatedCenter, plateauTemplateFrom(r)
	}

	leftRaw := runSide(scanner, true, source, tmpl, cfg.LackTolerance, fn)
	rightRaw := runSide(scanner, false, source, tmpl, cfg.LackTolerance, fn)

	result := CarriageTrackResult{Status: ResultOK, CenterPlateau: centerFit}
	result.Left, result.Status = pruneCarriageSide(leftRaw, cfg, result.Status)
	result.Right, result.Status = pruneCarriageSide(rightRaw, cfg, result.Status)
	if len(result.Left) == 0 && len(result.Right) == 0 {
		if result.Status == ResultOK {
			result.Status = ResultFailNoBounds
		}
	}
	return result
}

func pruneCarriageSide(raw []fit[detect.PlateauTemplate], cfg detect.Config, status Status) ([]PlateauFit, Status) {
	shifted := pruneShiftLength(raw, cfg.MaxShift)
	if len(shifted) < len(raw) && status == ResultOK {
		status = ResultFailTooHecticPlateaux
	}
	dense := pruneDensity(shifted, densityWindow, cfg.MinDensity)
	if len(dense) < len(shifted) && status == ResultOK {
		status = ResultFailTooSparsePlateaux
	}
	tailed := pruneTail(dense, cfg.TailMinSize)
	if len(tailed) == 0 && len(dense) > 0 && status == ResultOK {
		status = ResultFailNoConsistentSequence
	}
	out := make([]PlateauFit, len(tailed))
	for i, f := range tailed {
		out[i] = PlateauFit{ScanIndex: f.ScanIndex, Center: f.Center}
	}
	return out, status
}

// seedPlateauTemplate builds a first-pass template for the central scan,
// where no previously propagated template exists yet: it references the
// profile's own midpoint height (the stroke is drawn over the feature of
// interest, so its center should sit on or near the plateau) and spans
// the whole profile for the side-shift reference, leaving width
// unconstrained (Width: 0 skips the width-consistency check) since the
// track's true width isn't known before the first fit.
func seedPlateauTemplate(profile []ProfilePoint) detect.PlateauTemplate {
	mid := profile[len(profile)/2]
	start, end := profile[0].Position, profile[len(profile)-1].Position
	return detect.PlateauTemplate{Start: start, End: end, Height: mid.Height, Width: 0}
}

func plateauTemplateFrom(p detect.Plateau) detect.PlateauTemplate {
	return detect.PlateauTemplate{
		Start: p.InternalStart, End: p.InternalEnd,
		Height: p.MinHeight, Width: p.EstimatedWidth,
	}
}

func toDetectProfile(p []ProfilePoint) []detect.ProfilePoint {
	out := make([]detect.ProfilePoint, len(p))
	for i, pt := range p {
		out[i] = detect.ProfilePoint{Position: pt.Position, Height: pt.Height}
	}
	return out
}
