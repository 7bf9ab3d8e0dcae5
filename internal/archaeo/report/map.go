// Package report renders detection results for human inspection: an
// HTML scan-index/center scatter for a propagated structure (go-echarts)
// and a PNG height-profile plot for one scan's fit against its template
// (gonum/plot). Grounded on the teacher's internal/lidar/monitor
// package, which renders its own debugging charts the same way:
// echarts_handlers.go builds go-echarts scatter/bar charts from
// in-memory state and writes the rendered HTML straight to an
// http.ResponseWriter, and gridplotter.go accumulates samples and saves
// them as gonum/plot PNGs.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/archaeoscan/internal/archaeo/track"
)

// assetsHost pins go-echarts' JS/CSS includes to the teacher's CDN
// mirror path instead of echarts.apache.org, so rendered pages load
// offline the same way the teacher's debug dashboards do.
const assetsHost = "/assets/"

// sideFit is one side fit's scan-index/center pair (every side fit in a
// result survived pruning), normalized from either a PlateauFit or a
// BumpFit so both detectors share one chart builder.
type sideFit struct {
	ScanIndex int
	Center    int
}

// RenderCarriageTrackMap renders a carriage track's centerline as a
// scatter of (signed scan index, center position): negative indices to
// the left of the stroke, positive to the right, the central fit at 0.
func RenderCarriageTrackMap(w io.Writer, title string, result track.CarriageTrackResult) error {
	left := make([]sideFit, len(result.Left))
	for i, f := range result.Left {
		left[i] = sideFit{ScanIndex: f.ScanIndex, Center: f.Center}
	}
	right := make([]sideFit, len(result.Right))
	for i, f := range result.Right {
		right[i] = sideFit{ScanIndex: f.ScanIndex, Center: f.Center}
	}
	center := sideFit{ScanIndex: 0, Center: result.CenterPlateau.EstimatedCenter}
	subtitle := fmt.Sprintf("status=%s left=%d right=%d", result.Status, len(left), len(right))
	return renderTrackScatter(w, title, subtitle, center, left, right)
}

// RenderRidgeMap renders a ridge or hollow's centerline the same way.
func RenderRidgeMap(w io.Writer, title string, result track.RidgeResult) error {
	left := make([]sideFit, len(result.Left))
	for i, f := range result.Left {
		left[i] = sideFit{ScanIndex: f.ScanIndex, Center: f.Center}
	}
	right := make([]sideFit, len(result.Right))
	for i, f := range result.Right {
		right[i] = sideFit{ScanIndex: f.ScanIndex, Center: f.Center}
	}
	center := sideFit{ScanIndex: 0, Center: result.CenterBump.EstimatedCenter}
	subtitle := fmt.Sprintf("status=%s left=%d right=%d", result.Status, len(left), len(right))
	return renderTrackScatter(w, title, subtitle, center, left, right)
}

func renderTrackScatter(w io.Writer, title, subtitle string, center sideFit, left, right []sideFit) error {
	leftData := make([]opts.ScatterData, len(left))
	for i, f := range left {
		leftData[i] = opts.ScatterData{Value: []interface{}{-f.ScanIndex, f.Center}}
	}
	rightData := make([]opts.ScatterData, len(right))
	for i, f := range right {
		rightData[i] = opts.ScatterData{Value: []interface{}{f.ScanIndex, f.Center}}
	}
	centerData := []opts.ScatterData{{Value: []interface{}{0, center.Center}}}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "900px", Height: "600px", AssetsHost: assetsHost}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "scan index (signed, left-/right+)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "center position", NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("left", leftData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}), charts.WithItemStyleOpts(opts.ItemStyle{Color: "#31688e"}))
	scatter.AddSeries("right", rightData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}), charts.WithItemStyleOpts(opts.ItemStyle{Color: "#35b779"}))
	scatter.AddSeries("center", centerData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}), charts.WithItemStyleOpts(opts.ItemStyle{Color: "#fde725"}))

	return scatter.Render(w)
}
