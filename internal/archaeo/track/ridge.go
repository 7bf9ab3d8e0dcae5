package track

import (
	"github.com/banshee-data/archaeoscan/internal/archaeo/detect"
	"github.com/banshee-data/archaeoscan/internal/archaeo/scan"
)

// BumpFit is one scan's accepted bump fit along a ridge/hollow side that
// survived pruning.
type BumpFit struct {
	ScanIndex int
	Center    int
}

// RidgeResult is the outcome of propagating a ridge (or hollow) template
// outward from a central scan, per spec §4.7. Unlike carriage tracks,
// ridges/hollows skip shift-length pruning (spec §4.7: "tracks only").
type RidgeResult struct {
	Status      Status
	CenterBump  detect.Bump
	Left, Right []BumpFit
}

// DetectRidge scans outward from scanner's central line, fitting a bump
// (ridge=true) or hollow (ridge=false) against a template seeded from
// the central scan and propagated to either side until each side's miss
// counter exceeds cfg.LackTolerance.
func DetectRidge(scanner *scan.Scanner, source ProfileSource, ridge bool, cfg detect.Config) RidgeResult {
	central := scanner.First()
	if len(central) == 0 {
		return RidgeResult{Status: ResultFailNoAvailableScan}
	}
	profile := source.Profile(central)
	if len(profile) < 2 {
		return RidgeResult{Status: ResultFailTooNarrowInput}
	}

	seed := detect.BumpTemplate{}
	centerFit := detect.FitBump(toDetectProfile(profile), seed, ridge, cfg)
	if centerFit.Status != detect.BumpOK {
		return RidgeResult{Status: ResultFailNoCentralFit, CenterBump: centerFit}
	}
	tmpl := bumpTemplateFrom(centerFit)

	fn := func(p []ProfilePoint, t detect.BumpTemplate) (bool, int, detect.BumpTemplate) {
		r := detect.FitBump(toDetectProfile(p), t, ridge, cfg)
		if r.Status != detect.BumpOK {
			return false, 0, t
		}
		return true, r.EstimatedCenter, bumpTemplateFrom(r)
	}

	leftRaw := runSide(scanner, true, source, tmpl, cfg.LackTolerance, fn)
	rightRaw := runSide(scanner, false, source, tmpl, cfg.LackTolerance, fn)

	result := RidgeResult{Status: ResultOK, CenterBump: centerFit}
	result.Left, result.Status = pruneRidgeSide(leftRaw, cfg, result.Status)
	result.Right, result.Status = pruneRidgeSide(rightRaw, cfg, result.Status)
	if len(result.Left) == 0 && len(result.Right) == 0 {
		if result.Status == ResultOK {
			result.Status = ResultFailNoBounds
		}
	}
	return result
}

// pruneRidgeSide applies density and tail pruning only — ridges/hollows
// are not subject to the shift-length pass spec §4.7 reserves for tracks.
func pruneRidgeSide(raw []fit[detect.BumpTemplate], cfg detect.Config, status Status) ([]BumpFit, Status) {
	dense := pruneDensity(raw, densityWindow, cfg.MinDensity)
	if len(dense) < len(raw) && status == ResultOK {
		status = ResultFailTooSparsePlateaux
	}
	tailed := pruneTail(dense, cfg.TailMinSize)
	if len(tailed) == 0 && len(dense) > 0 && status == ResultOK {
		status = ResultFailNoConsistentSequence
	}
	out := make([]BumpFit, len(tailed))
	for i, f := range tailed {
		out[i] = BumpFit{ScanIndex: f.ScanIndex, Center: f.Center}
	}
	return out, status
}

func bumpTemplateFrom(b detect.Bump) detect.BumpTemplate {
	return detect.BumpTemplate{
		Center: b.EstimatedCenter, MassCenter: b.EstimatedMassCenter,
		Width: b.EstimatedWidth, Height: b.EstimatedHeight,
	}
}
