// Package chart renders the maturity charts as PNG images with gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Kind identifies one of the rendered charts.
type Kind string

// All charts supported.
const (
	MaturityKind Kind = "maturity"
	GapsKind     Kind = "gaps"
	ScatterKind  Kind = "scatter"
)

// AllKinds lists the charts in render order.
var AllKinds = []Kind{MaturityKind, GapsKind, ScatterKind}

// ErrNoQuestions is returned when a radial chart has no question to draw.
var ErrNoQuestions = errors.New("no questions to chart")

// FileName returns the file name a chart is saved under.
func (k Kind) FileName() string {
	switch k {
	case MaturityKind:
		return "maturity_results.png"
	case GapsKind:
		return "gap_analysis.png"
	default:
		return "alignment_scatter.png"
	}
}

// ParseKind returns the chart kind named s.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSuffix(s, ".png")))
	switch k {
	case MaturityKind, GapsKind, ScatterKind:
		return k, nil
	}
	return "", fmt.Errorf("unknown chart %q. must be maturity, gaps, scatter", s)
}

// Size is the physical size of a rendered chart.
type Size struct {
	Width  vg.Length
	Height vg.Length
}

// SizeInches builds a Size from whole inches.
func SizeInches(width, height int) Size {
	return Size{Width: vg.Length(width) * vg.Inch, Height: vg.Length(height) * vg.Inch}
}

// WritePNG renders p as PNG to w.
func WritePNG(w io.Writer, p *plot.Plot, size Size) error {
	wt, err := p.WriterTo(size.Width, size.Height, "png")
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// SavePNG renders p as PNG to path.
func SavePNG(path string, p *plot.Plot, size Size) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, p, size); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// hexColor parses "#rrggbb". Malformed input yields black.
func hexColor(s string) color.Color {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || len(strings.TrimPrefix(s, "#")) != 6 {
		return color.Black
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
