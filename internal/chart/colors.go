package chart

import (
	"image/color"

	"github.com/huangsam/maturity/schema"
)

// grayScale darkens response cells; Fully implemented is the darkest.
const grayScale = 0.8

var responseGray = map[schema.Response]float64{
	schema.Partially: 0.3,
	schema.Broadly:   0.7,
	schema.Fully:     1.0,
}

var (
	dontKnowColor    = hexColor("#FFF064")
	notRelevantColor = hexColor("#d9c7a1")
	defaultDimColor  = hexColor("#139e8b")
	gridColor        = color.Gray{Y: 0x80}
	outlineColor     = color.Black
)

var bucketColors = map[schema.ActionBucket]color.Color{
	schema.Limited:     hexColor("#E4DFEC"),
	schema.Significant: hexColor("#AE9CC4"),
	schema.Extensive:   hexColor("#745995"),
}

var dimensionColors = map[string]color.Color{
	"management & organisation": hexColor("#edf8f6"),
	"people & culture":          hexColor("#edf8f6"),
	"information technology":    hexColor("#7fcac0"),
	"process management":        hexColor("#7fcac0"),
	"quality management":        hexColor("#7fcac0"),
	"logistics":                 hexColor("#7fcac0"),
	"external integration":      hexColor("#7fcac0"),
	"engineering":               hexColor("#7fcac0"),
}

// ResponseColor returns the fill of a maturity cell.
func ResponseColor(r schema.Response) color.Color {
	switch r {
	case schema.DontKnow:
		return dontKnowColor
	case schema.NotRelevant:
		return notRelevantColor
	}
	g, ok := responseGray[r]
	if !ok {
		return color.White
	}
	return color.Gray{Y: uint8((1 - g*grayScale) * 255)}
}

// BucketColor returns the fill of a gap cell. Hidden cells are white.
func BucketColor(b schema.ActionBucket, hidden bool) color.Color {
	if c, ok := bucketColors[b]; ok && !hidden {
		return c
	}
	return color.White
}

// DimensionColor returns the ring colour of a dimension.
func DimensionColor(dimension string) color.Color {
	if c, ok := dimensionColors[schema.EnglishPart(dimension)]; ok {
		return c
	}
	return defaultDimColor
}
