package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/archaeoscan/internal/archaeo/detect"
)

// RenderPlateauProfilePNG plots one scan's height profile alongside the
// plateau template's reference height and, for an accepted fit, a marker
// at its estimated center (the fitted run's bounds are not drawn), and
// saves it as a PNG. Mirrors gridplotter.go's generateRingPlot: build a
// plot.Plot, add line/marker series, save at a fixed size.
func RenderPlateauProfilePNG(path string, profile []detect.ProfilePoint, tmpl detect.PlateauTemplate, fit detect.Plateau) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Plateau profile (status=%s)", fit.Status)
	p.X.Label.Text = "position"
	p.Y.Label.Text = "height"

	pts := make(plotter.XYs, len(profile))
	for i, pt := range profile {
		pts[i] = plotter.XY{X: float64(pt.Position), Y: float64(pt.Height)}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build profile line: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add("profile", line)

	refLine, err := plotter.NewLine(plotter.XYs{
		{X: float64(tmpl.Start), Y: float64(tmpl.Height)},
		{X: float64(tmpl.End), Y: float64(tmpl.Height)},
	})
	if err != nil {
		return fmt.Errorf("build reference line: %w", err)
	}
	refLine.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(refLine)
	p.Legend.Add("template reference", refLine)

	if fit.Accepted {
		bound, err := plotter.NewScatter(plotter.XYs{
			{X: float64(fit.EstimatedCenter), Y: float64(fit.ReferenceHeight)},
		})
		if err != nil {
			return fmt.Errorf("build center marker: %w", err)
		}
		bound.GlyphStyle.Radius = vg.Points(4)
		p.Add(bound)
		p.Legend.Add("estimated center", bound)
	}

	p.Legend.Top = true
	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plateau profile plot: %w", err)
	}
	return nil
}

// RenderBumpProfilePNG plots a bump fit's profile the same way: the raw
// height profile and, for an accepted fit, the estimated summit. It takes
// no template, so no reference height line is drawn.
func RenderBumpProfilePNG(path string, profile []detect.ProfilePoint, fit detect.Bump) error {
	kind := "ridge"
	if !fit.Ridge {
		kind = "hollow"
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s profile (status=%s)", kind, fit.Status)
	p.X.Label.Text = "position"
	p.Y.Label.Text = "height"

	pts := make(plotter.XYs, len(profile))
	for i, pt := range profile {
		pts[i] = plotter.XY{X: float64(pt.Position), Y: float64(pt.Height)}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build profile line: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add("profile", line)

	if fit.Accepted {
		summit, err := plotter.NewScatter(plotter.XYs{
			{X: float64(fit.EstimatedSummit), Y: float64(fit.EstimatedHeight)},
		})
		if err != nil {
			return fmt.Errorf("build summit marker: %w", err)
		}
		summit.GlyphStyle.Radius = vg.Points(4)
		p.Add(summit)
		p.Legend.Add("estimated summit", summit)
	}

	p.Legend.Top = true
	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save bump profile plot: %w", err)
	}
	return nil
}
