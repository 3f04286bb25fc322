package chart

import (
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/huangsam/maturity/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Radial chart geometry in data units. Level L occupies radii [L-1, L].
const (
	ringInner      = 4.1
	ringOuter      = 5.5
	indicatorR     = 4.5
	dimensionR     = 5.0
	legendSpace    = 2.4
	arcSteps       = 12
	indicatorWrap  = 13
	dimensionWrap  = 30
	numberWrap     = 20
	numberInset    = 0.2
	levelCount     = schema.LevelsPerIndicator
	indicatorPts   = 7
	dimensionPts   = 9
	numberPts      = 5
	cellLinePts    = 0.5
	ringLinePts    = 1.5
	gridLinePts    = 0.5
	thumbnailLines = 0.5
)

// cell is one level of one indicator.
type cell struct {
	fill   color.Color
	number string
}

// sector is one indicator slice of the radial chart.
type sector struct {
	indicator string
	dimension string
	cells     [levelCount]*cell
}

// buildSectors orders the indicators by their lowest question number and
// takes the first question of every level as the cell of that level.
func buildSectors(questions []schema.QuestionRecord, fill func(schema.QuestionRecord) color.Color) []sector {
	sorted := slices.Clone(questions)
	slices.SortStableFunc(sorted, func(a, b schema.QuestionRecord) int {
		return schema.CompareNumbers(a.Number, b.Number)
	})

	var sectors []sector
	index := make(map[string]int)
	for _, q := range sorted {
		i, ok := index[q.Indicator]
		if !ok {
			i = len(sectors)
			index[q.Indicator] = i
			sectors = append(sectors, sector{indicator: q.Indicator, dimension: q.Dimension})
		}
		if !q.Level.Valid() || sectors[i].cells[q.Level-1] != nil {
			continue
		}
		sectors[i].cells[q.Level-1] = &cell{fill: fill(q), number: q.Number}
	}
	return sectors
}

// dimensionSegment is a run of adjacent sectors sharing a dimension.
type dimensionSegment struct {
	dimension string
	start     int
	count     int
}

func dimensionSegments(sectors []sector) []dimensionSegment {
	var segs []dimensionSegment
	for i, s := range sectors {
		if n := len(segs); n > 0 && segs[n-1].dimension == s.dimension {
			segs[n-1].count++
			continue
		}
		segs = append(segs, dimensionSegment{dimension: s.dimension, start: i, count: 1})
	}
	return segs
}

// tangentRotation returns the text rotation that follows the circle at
// clockwise angle theta while staying upright.
func tangentRotation(theta float64) float64 {
	rot := math.Remainder(-theta, 2*math.Pi)
	if rot > math.Pi/2 {
		rot -= math.Pi
	} else if rot < -math.Pi/2 {
		rot += math.Pi
	}
	return rot
}

// radial draws sectors clockwise from north.
type radial struct {
	sectors []sector
}

var _ plot.Plotter = &radial{}    // Compile-time check
var _ plot.DataRanger = &radial{} // Compile-time check

// DataRange keeps the chart square with room for the legend below it.
func (r *radial) DataRange() (xmin, xmax, ymin, ymax float64) {
	half := ringOuter + legendSpace/2
	return -half, half, -ringOuter - legendSpace, ringOuter
}

// Plot implements plot.Plotter.
func (r *radial) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	at := func(theta, radius float64) vg.Point {
		return vg.Point{X: trX(radius * math.Sin(theta)), Y: trY(radius * math.Cos(theta))}
	}
	wedge := func(t0, t1, r0, r1 float64) []vg.Point {
		pts := make([]vg.Point, 0, 2*(arcSteps+1))
		for i := 0; i <= arcSteps; i++ {
			pts = append(pts, at(t0+(t1-t0)*float64(i)/arcSteps, r1))
		}
		for i := arcSteps; i >= 0; i-- {
			pts = append(pts, at(t0+(t1-t0)*float64(i)/arcSteps, r0))
		}
		return pts
	}
	closed := func(pts []vg.Point) []vg.Point { return append(pts, pts[0]) }

	n := len(r.sectors)
	width := 2 * math.Pi / float64(n)

	cellLine := draw.LineStyle{Color: outlineColor, Width: vg.Points(cellLinePts)}
	ringLine := draw.LineStyle{Color: color.White, Width: vg.Points(ringLinePts)}
	gridLine := draw.LineStyle{Color: gridColor, Width: vg.Points(gridLinePts), Dashes: []vg.Length{vg.Points(2), vg.Points(2)}}

	base := plt.Title.TextStyle
	base.Color = color.Black
	base.XAlign = draw.XCenter
	base.YAlign = draw.YCenter
	labelStyle := base
	labelStyle.Font.Size = vg.Points(indicatorPts)
	dimStyle := base
	dimStyle.Font.Size = vg.Points(dimensionPts)
	numberStyle := base
	numberStyle.Font.Size = vg.Points(numberPts)

	for _, seg := range dimensionSegments(r.sectors) {
		t0 := float64(seg.start) * width
		t1 := t0 + float64(seg.count)*width
		pts := wedge(t0, t1, ringInner, ringOuter)
		c.FillPolygon(DimensionColor(seg.dimension), pts)
		c.StrokeLines(ringLine, closed(pts))

		mid := (t0 + t1) / 2
		dimStyle.Rotation = tangentRotation(mid)
		c.FillText(dimStyle, at(mid, dimensionR), wrapLabel(seg.dimension, dimensionWrap))
	}

	for i, s := range r.sectors {
		t0 := float64(i) * width
		t1 := t0 + width
		c.StrokeLines(gridLine, []vg.Point{at(t0, 0), at(t0, ringInner)})

		for level := 0; level < levelCount; level++ {
			pts := wedge(t0, t1, float64(level), float64(level+1))
			fill := color.Color(color.White)
			if s.cells[level] != nil {
				fill = s.cells[level].fill
			}
			c.FillPolygon(fill, pts)
			c.StrokeLines(cellLine, closed(pts))
			if s.cells[level] != nil {
				c.FillText(numberStyle, at(t0+width/2, float64(level+1)-numberInset), wrapLabel(s.cells[level].number, numberWrap))
			}
		}

		mid := t0 + width/2
		labelStyle.Rotation = tangentRotation(mid)
		c.FillText(labelStyle, at(mid, indicatorR), wrapLabel(s.indicator, indicatorWrap))
	}
}

func wrapLabel(s string, width int) string {
	return strings.Join(schema.WrapText(schema.EnglishDisplay(s), width), "\n")
}

// swatch is a filled legend thumbnail.
type swatch struct {
	fill color.Color
}

// Thumbnail implements plot.Thumbnailer.
func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.fill, pts)
	c.StrokeLines(draw.LineStyle{Color: outlineColor, Width: vg.Points(thumbnailLines)}, append(pts, pts[0]))
}

type legendEntry struct {
	label string
	fill  color.Color
}

func newRadialPlot(title string, sectors []sector, legend []legendEntry) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.Add(&radial{sectors: sectors})
	p.Legend.Top = false
	p.Legend.Left = true
	for _, e := range legend {
		p.Legend.Add(e.label, swatch{fill: e.fill})
	}
	return p
}

// Maturity builds the radial chart of current responses.
func Maturity(questions []schema.QuestionRecord) (*plot.Plot, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	sectors := buildSectors(questions, func(q schema.QuestionRecord) color.Color {
		return ResponseColor(q.Response)
	})

	legend := []legendEntry{}
	for _, r := range []schema.Response{schema.NotImplemented, schema.Partially, schema.Broadly, schema.Fully} {
		legend = append(legend, legendEntry{schema.EnglishDisplay(r.Label()), ResponseColor(r)})
	}
	for _, r := range []schema.Response{schema.NotRelevant, schema.DontKnow} {
		if slices.ContainsFunc(questions, func(q schema.QuestionRecord) bool { return q.Response == r }) {
			legend = append(legend, legendEntry{schema.EnglishDisplay(r.Label()), ResponseColor(r)})
		}
	}
	return newRadialPlot("Maturity level", sectors, legend), nil
}

// Gaps builds the radial chart of action buckets.
func Gaps(questions []schema.QuestionRecord) (*plot.Plot, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	sectors := buildSectors(questions, func(q schema.QuestionRecord) color.Color {
		return BucketColor(q.Bucket, q.Hidden)
	})

	legend := make([]legendEntry, 0, len(schema.AllBuckets))
	for _, b := range schema.AllBuckets {
		legend = append(legend, legendEntry{schema.EnglishDisplay(b.Label()), BucketColor(b, false)})
	}
	return newRadialPlot("Action category", sectors, legend), nil
}
