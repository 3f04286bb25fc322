package core

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"github.com/huangsam/maturity/schema"
)

// ErrNoPlottableData is returned when no indicator has both scatter coordinates.
var ErrNoPlottableData = errors.New("no indicators have both utility and gap values")

// Jitter radii as fractions of each axis span.
const (
	JitterFractionX = 0.012
	JitterFractionY = 0.02
	coordDecimals   = 5
)

type coordKey struct{ x, y float64 }

// LayoutScatter places every plottable indicator on the utility/gap plane.
// Indicators sharing the same coordinates (rounded to 5 decimals) are spread
// on an ellipse of radii r_x, r_y around the shared point; member i of a group
// of n sits at angle 2*pi*i/n. True coordinates are kept on each point.
func LayoutScatter(indicators []schema.IndicatorSummary) (*schema.ScatterLayout, error) {
	layout := &schema.ScatterLayout{}
	var plottable []schema.IndicatorSummary
	for _, ind := range indicators {
		if !ind.Plottable() {
			layout.Skipped = append(layout.Skipped, ind.Indicator)
			continue
		}
		plottable = append(plottable, ind)
	}
	if len(plottable) == 0 {
		return nil, ErrNoPlottableData
	}

	xs := make([]float64, len(plottable))
	ys := make([]float64, len(plottable))
	groups := make(map[coordKey][]int)
	for i, ind := range plottable {
		xs[i], ys[i] = *ind.TotalUtility, *ind.MaturityGap
		key := coordKey{roundTo(xs[i], coordDecimals), roundTo(ys[i], coordDecimals)}
		groups[key] = append(groups[key], i)
	}

	layout.XMin, layout.XMax = slices.Min(xs), slices.Max(xs)
	layout.YMin, layout.YMax = slices.Min(ys), slices.Max(ys)
	rx := JitterFractionX * span(layout.XMin, layout.XMax)
	ry := JitterFractionY * span(layout.YMin, layout.YMax)

	layout.Points = make([]schema.ScatterPoint, len(plottable))
	for _, members := range groups {
		n := len(members)
		for pos, i := range members {
			ind := plottable[i]
			p := schema.ScatterPoint{
				Indicator: ind.Indicator,
				Dimension: ind.Dimension,
				X:         xs[i],
				Y:         ys[i],
				JitterX:   xs[i],
				JitterY:   ys[i],
				GroupSize: n,
			}
			if ind.TotalImpact != nil {
				p.Impact = *ind.TotalImpact
			}
			if n > 1 {
				p.Angle = 2 * math.Pi * float64(pos) / float64(n)
				p.JitterX += rx * math.Cos(p.Angle)
				p.JitterY += ry * math.Sin(p.Angle)
			}
			layout.Points[i] = p
		}
	}

	layout.MedianX = median(xs)
	layout.MedianY = median(ys)
	layout.Order, layout.Legend = legendOrder(layout.Points)
	return layout, nil
}

// JitterRadii returns the ellipse radii used by LayoutScatter for the given layout.
func JitterRadii(layout *schema.ScatterLayout) (rx, ry float64) {
	return JitterFractionX * span(layout.XMin, layout.XMax), JitterFractionY * span(layout.YMin, layout.YMax)
}

func span(lo, hi float64) float64 {
	if s := hi - lo; s != 0 {
		return s
	}
	return 1.0
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// legendOrder orders the points by impact descending, ties by indicator and
// then input position. Points sharing an indicator keep separate entries.
func legendOrder(points []schema.ScatterPoint) (order []int, names []string) {
	order = make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(points[b].Impact, points[a].Impact); c != 0 {
			return c
		}
		return cmp.Compare(points[a].Indicator, points[b].Indicator)
	})
	names = make([]string, len(order))
	for i, idx := range order {
		names[i] = points[idx].Indicator
	}
	return order, names
}
