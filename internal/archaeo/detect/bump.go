package detect

// BumpStatus classifies the outcome of a single-scan bump fit.
type BumpStatus int

const (
	BumpOK BumpStatus = iota
	BumpNotEnoughInputPts
	BumpHoleInInputPts
	BumpTooLow
	BumpTooNarrow
	BumpEmptyScan
	BumpNoBumpLine
	BumpLinear
	BumpAngular
)

func (s BumpStatus) String() string {
	switch s {
	case BumpOK:
		return "OK"
	case BumpNotEnoughInputPts:
		return "NOT_ENOUGH_INPUT_PTS"
	case BumpHoleInInputPts:
		return "HOLE_IN_INPUT_PTS"
	case BumpTooLow:
		return "TOO_LOW"
	case BumpTooNarrow:
		return "TOO_NARROW"
	case BumpEmptyScan:
		return "EMPTY_SCAN"
	case BumpNoBumpLine:
		return "NO_BUMP_LINE"
	case BumpLinear:
		return "LINEAR"
	case BumpAngular:
		return "ANGULAR"
	default:
		return "UNKNOWN"
	}
}

// BumpDefault is a bitmask over the soft-failed checks a bump still
// reports OK with, per spec §4.6.
type BumpDefault int

const (
	BumpDefaultPosition BumpDefault = 1 << iota
	BumpDefaultAltitude
	BumpDefaultWidth
	BumpDefaultHeight
)

// Trend is a straight baseline segment fitted on profile points outside
// the bump's current extent.
type Trend struct {
	Slope     float64
	Intercept float64
}

// BumpTemplate is the predicted bump a new scan's fit is compared
// against.
type BumpTemplate struct {
	Center     int
	MassCenter int
	Width      int
	Height     int
	StartTrend *Trend
	EndTrend   *Trend
}

// Bump is the result of fitting one scan's profile against a template,
// per spec §4.6. Ridge detection looks for a local maximum above
// baseline, hollow detection a local minimum; Ridge selects which.
type Bump struct {
	Status BumpStatus
	Ridge  bool

	Start, End int

	EstimatedCenter     int
	EstimatedMassCenter int
	EstimatedSummit     int
	EstimatedWidth      int
	EstimatedHeight     int

	StartTrend, EndTrend *Trend

	Default  BumpDefault
	Accepted bool
}

// FitBump fits profile against template for a ridge (ridge=true) or
// hollow (ridge=false), per spec §4.6: locate the extremum above
// baseline, sweep outward to where the profile crosses baseline, then
// check position/altitude/width/height against the template's tolerances.
func FitBump(profile []ProfilePoint, tmpl BumpTemplate, ridge bool, cfg Config) Bump {
	b := Bump{Ridge: ridge}
	if len(profile) == 0 {
		b.Status = BumpEmptyScan
		return b
	}

	baseline := baselineHeight(profile, tmpl, ridge)

	peakIdx := 0
	for i, pt := range profile {
		if ridge && pt.Height-baseline > profile[peakIdx].Height-baseline {
			peakIdx = i
		}
		if !ridge && pt.Height-baseline < profile[peakIdx].Height-baseline {
			peakIdx = i
		}
	}
	peak := profile[peakIdx]
	rel := peak.Height - baseline
	if !ridge {
		rel = -rel
	}
	if rel < cfg.BumpMinHeight {
		b.Status = BumpTooLow
		return b
	}

	start, end := peakIdx, peakIdx
	for start > 0 && crossesBaseline(profile[start-1].Height, baseline, ridge) {
		start--
	}
	for end < len(profile)-1 && crossesBaseline(profile[end+1].Height, baseline, ridge) {
		end++
	}
	if start == end {
		b.Status = BumpTooNarrow
		return b
	}

	b.Start, b.End = profile[start].Position, profile[end].Position
	b.EstimatedWidth = b.End - b.Start
	b.EstimatedSummit = peak.Height
	b.EstimatedHeight = abs(peak.Height - baseline)
	b.EstimatedCenter = (b.Start + b.End) / 2
	b.EstimatedMassCenter = massCenter(profile[start:end+1], baseline, ridge)

	b.checkAgainstTemplate(tmpl, cfg)
	b.Status = BumpOK
	return b
}

func (b *Bump) checkAgainstTemplate(tmpl BumpTemplate, cfg Config) {
	b.Accepted = true
	check := func(got, want, absTol int, relTol float64, bit BumpDefault) {
		diff := abs(got - want)
		tol := absTol
		if rel := int(float64(abs(want)) * relTol); rel > tol {
			tol = rel
		}
		if diff > tol {
			b.Default |= bit
			b.Accepted = false
		}
	}
	if tmpl.Center != 0 || tmpl.Width != 0 {
		check(b.EstimatedCenter, tmpl.Center, cfg.PositionAbsTolerance, cfg.PositionRelTolerance, BumpDefaultPosition)
		check(b.EstimatedHeight, tmpl.Height, cfg.AltitudeAbsTolerance, cfg.AltitudeRelTolerance, BumpDefaultAltitude)
		check(b.EstimatedWidth, tmpl.Width, cfg.WidthAbsTolerance, cfg.WidthRelTolerance, BumpDefaultWidth)
		check(b.EstimatedHeight, tmpl.Height, cfg.HeightAbsTolerance, cfg.HeightRelTolerance, BumpDefaultHeight)
	}
}

// baselineHeight estimates the ground level a bump rises from (ridge) or
// sinks below (hollow). With no trend fitted it falls back to the
// profile's own extremum on the far side of the bump from its expected
// direction: the lowest point for a ridge, the highest for a hollow.
func baselineHeight(profile []ProfilePoint, tmpl BumpTemplate, ridge bool) int {
	if tmpl.StartTrend == nil && tmpl.EndTrend == nil {
		min, max := profile[0].Height, profile[0].Height
		for _, pt := range profile {
			if pt.Height < min {
				min = pt.Height
			}
			if pt.Height > max {
				max = pt.Height
			}
		}
		if ridge {
			return min
		}
		return max
	}
	sum := 0
	for _, pt := range profile {
		sum += pt.Height
	}
	return sum / len(profile)
}

func crossesBaseline(height, baseline int, ridge bool) bool {
	if ridge {
		return height > baseline
	}
	return height < baseline
}

func massCenter(region []ProfilePoint, baseline int, ridge bool) int {
	var weighted, total int
	for _, pt := range region {
		h := pt.Height - baseline
		if !ridge {
			h = -h
		}
		if h < 0 {
			h = 0
		}
		weighted += pt.Position * h
		total += h
	}
	if total == 0 {
		return region[len(region)/2].Position
	}
	return weighted / total
}
