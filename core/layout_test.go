package core

import (
	"math"
	"testing"

	"github.com/huangsam/maturity/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summary(name string, util, gap, impact *float64) schema.IndicatorSummary {
	return schema.IndicatorSummary{Indicator: name, TotalUtility: util, MaturityGap: gap, TotalImpact: impact, Eligible: true}
}

func TestLayoutScatter_CoincidentPairSpreadsOpposite(t *testing.T) {
	indicators := []schema.IndicatorSummary{
		summary("A", floatPtr(0.50), floatPtr(0.30), floatPtr(1)),
		summary("B", floatPtr(0.500001), floatPtr(0.299999), floatPtr(2)),
	}

	layout, err := LayoutScatter(indicators)
	require.NoError(t, err)
	require.Len(t, layout.Points, 2)

	a, b := layout.Points[0], layout.Points[1]
	assert.Equal(t, 2, a.GroupSize)
	assert.InDelta(t, 0, a.Angle, 1e-12)
	assert.InDelta(t, math.Pi, b.Angle, 1e-12)

	rx, ry := JitterRadii(layout)
	assert.InDelta(t, a.X+rx, a.JitterX, 1e-9)
	assert.InDelta(t, a.Y, a.JitterY, 1e-9)
	assert.InDelta(t, b.X-rx, b.JitterX, 1e-9)
	assert.InDelta(t, b.Y, b.JitterY, 1e-9)
	assert.Greater(t, ry, 0.0)

	// True coordinates are preserved.
	assert.Equal(t, 0.50, a.X)
	assert.Equal(t, 0.299999, b.Y)
}

func TestLayoutScatter_SingletonsStayPut(t *testing.T) {
	indicators := []schema.IndicatorSummary{
		summary("A", floatPtr(0.1), floatPtr(0.2), nil),
		summary("B", floatPtr(0.4), floatPtr(0.9), nil),
	}
	layout, err := LayoutScatter(indicators)
	require.NoError(t, err)
	for _, p := range layout.Points {
		assert.Equal(t, 1, p.GroupSize)
		assert.Equal(t, p.X, p.JitterX)
		assert.Equal(t, p.Y, p.JitterY)
	}
}

func TestLayoutScatter_DisplacementBounded(t *testing.T) {
	var indicators []schema.IndicatorSummary
	for i := range 7 {
		indicators = append(indicators, summary(string(rune('A'+i)), floatPtr(0.2), floatPtr(0.4), nil))
	}
	indicators = append(indicators, summary("Z", floatPtr(0.9), floatPtr(0.1), nil))

	layout, err := LayoutScatter(indicators)
	require.NoError(t, err)
	rx, ry := JitterRadii(layout)
	bound := math.Sqrt(rx*rx + ry*ry)
	for _, p := range layout.Points {
		d := math.Hypot(p.JitterX-p.X, p.JitterY-p.Y)
		assert.LessOrEqual(t, d, bound+1e-12, p.Indicator)
	}
	assert.Equal(t, 7, layout.Points[0].GroupSize)
	assert.InDelta(t, 2*math.Pi*3/7, layout.Points[3].Angle, 1e-12)
}

func TestLayoutScatter_ZeroSpanUsesUnitSpan(t *testing.T) {
	indicators := []schema.IndicatorSummary{
		summary("A", floatPtr(0.3), floatPtr(0.3), nil),
		summary("B", floatPtr(0.3), floatPtr(0.3), nil),
	}
	layout, err := LayoutScatter(indicators)
	require.NoError(t, err)
	rx, ry := JitterRadii(layout)
	assert.InDelta(t, JitterFractionX, rx, 1e-12)
	assert.InDelta(t, JitterFractionY, ry, 1e-12)
}

func TestLayoutScatter_SkipsUnplottable(t *testing.T) {
	indicators := []schema.IndicatorSummary{
		summary("A", floatPtr(0.1), nil, nil),
		summary("B", nil, floatPtr(0.2), nil),
		summary("C", floatPtr(0.2), floatPtr(0.6), floatPtr(0.1)),
		summary("D", floatPtr(0.6), floatPtr(0.2), floatPtr(0.7)),
		summary("E", floatPtr(0.4), floatPtr(0.4), floatPtr(0.7)),
	}
	layout, err := LayoutScatter(indicators)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, layout.Skipped)
	assert.Len(t, layout.Points, 3)
	assert.InDelta(t, 0.4, layout.MedianX, 1e-12)
	assert.InDelta(t, 0.4, layout.MedianY, 1e-12)
	assert.Equal(t, []int{1, 2, 0}, layout.Order)
	assert.Equal(t, []string{"D", "E", "C"}, layout.Legend)
	assert.Equal(t, 0.2, layout.XMin)
	assert.Equal(t, 0.6, layout.YMax)
}

func TestLayoutScatter_RepeatedIndicator(t *testing.T) {
	indicators := []schema.IndicatorSummary{
		summary("A", floatPtr(0.1), floatPtr(0.2), floatPtr(0.3)),
		summary("B", floatPtr(0.5), floatPtr(0.5), floatPtr(0.9)),
		summary("A", floatPtr(0.7), floatPtr(0.4), floatPtr(0.3)),
	}
	layout, err := LayoutScatter(indicators)
	require.NoError(t, err)
	require.Len(t, layout.Points, 3)
	assert.Equal(t, []int{1, 0, 2}, layout.Order)
	assert.Equal(t, []string{"B", "A", "A"}, layout.Legend)
	assert.Equal(t, 0.7, layout.Points[layout.Order[2]].X)
}

func TestLayoutScatter_NoPlottableData(t *testing.T) {
	_, err := LayoutScatter([]schema.IndicatorSummary{summary("A", nil, nil, nil)})
	assert.ErrorIs(t, err, ErrNoPlottableData)

	_, err = LayoutScatter(nil)
	assert.ErrorIs(t, err, ErrNoPlottableData)
}

func TestMedianEven(t *testing.T) {
	assert.Equal(t, 2.5, median([]float64{4, 1, 3, 2}))
}
