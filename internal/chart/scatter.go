package chart

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/huangsam/maturity/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoPoints is returned when the scatter layout has nothing to draw.
var ErrNoPoints = errors.New("no plottable indicators")

const (
	scatterMargin = 0.08
	pointRadius   = 9
	labelPts      = 8
)

// percentTicks labels fractions as whole percentages.
type percentTicks struct{}

// Ticks implements plot.Ticker.
func (percentTicks) Ticks(lo, hi float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(lo, hi)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = strconv.FormatFloat(ticks[i].Value*100, 'f', 0, 64) + "%"
		}
	}
	return ticks
}

func padRange(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span <= 0 {
		span = 1
	}
	return lo - span*scatterMargin, hi + span*scatterMargin
}

type scatterEntry struct {
	label string
	point schema.ScatterPoint
}

// scatterEntries lists one numbered entry per point in legend order. Layouts
// without an order are drawn in point order.
func scatterEntries(layout *schema.ScatterLayout) []scatterEntry {
	order := layout.Order
	if len(order) == 0 {
		order = make([]int, len(layout.Points))
		for i := range order {
			order[i] = i
		}
	}
	entries := make([]scatterEntry, 0, len(order))
	for _, idx := range order {
		if idx < 0 || idx >= len(layout.Points) {
			continue
		}
		pt := layout.Points[idx]
		entries = append(entries, scatterEntry{
			label: fmt.Sprintf("%d. %s", len(entries)+1, schema.EnglishDisplay(pt.Indicator)),
			point: pt,
		})
	}
	return entries
}

// Scatter builds the utility/gap alignment chart. Points are numbered by
// priority and listed in the legend in the same order.
func Scatter(layout *schema.ScatterLayout) (*plot.Plot, error) {
	if layout == nil || len(layout.Points) == 0 {
		return nil, ErrNoPoints
	}

	p := plot.New()
	p.Title.Text = "Strategic alignment"
	p.X.Label.Text = "Total Utility"
	p.Y.Label.Text = "Maturity Gap"
	p.Y.Tick.Marker = percentTicks{}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	xlo, xhi := padRange(layout.XMin, layout.XMax)
	ylo, yhi := padRange(layout.YMin, layout.YMax)
	p.X.Min, p.X.Max = xlo, xhi
	p.Y.Min, p.Y.Max = ylo, yhi

	dashes := []vg.Length{vg.Points(2), vg.Points(3)}
	vline, err := plotter.NewLine(plotter.XYs{{X: layout.MedianX, Y: ylo}, {X: layout.MedianX, Y: yhi}})
	if err != nil {
		return nil, err
	}
	vline.LineStyle.Dashes = dashes
	vline.LineStyle.Color = gridColor
	hline, err := plotter.NewLine(plotter.XYs{{X: xlo, Y: layout.MedianY}, {X: xhi, Y: layout.MedianY}})
	if err != nil {
		return nil, err
	}
	hline.LineStyle.Dashes = dashes
	hline.LineStyle.Color = gridColor
	p.Add(vline, hline)

	labels := plotter.XYLabels{}
	for i, e := range scatterEntries(layout) {
		s, err := plotter.NewScatter(plotter.XYs{{X: e.point.JitterX, Y: e.point.JitterY}})
		if err != nil {
			return nil, err
		}
		s.GlyphStyle = draw.GlyphStyle{
			Color:  plotutil.Color(i),
			Radius: vg.Points(pointRadius),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(s)
		p.Legend.Add(e.label, s)

		labels.XYs = append(labels.XYs, plotter.XY{X: e.point.JitterX, Y: e.point.JitterY})
		labels.Labels = append(labels.Labels, strconv.Itoa(i+1))
	}

	if len(labels.Labels) > 0 {
		l, err := plotter.NewLabels(labels)
		if err != nil {
			return nil, err
		}
		for i := range l.TextStyle {
			l.TextStyle[i].XAlign = draw.XCenter
			l.TextStyle[i].YAlign = draw.YCenter
			l.TextStyle[i].Font.Size = vg.Points(labelPts)
		}
		p.Add(l)
	}
	return p, nil
}

// Render builds the chart of the given kind from a report.
func Render(kind Kind, report *schema.Report) (*plot.Plot, error) {
	switch kind {
	case MaturityKind:
		return Maturity(report.MaturityCells)
	case GapsKind:
		return Gaps(report.GapCells)
	case ScatterKind:
		return Scatter(report.Scatter)
	}
	return nil, fmt.Errorf("unknown chart %q", kind)
}
