package plotter

import (
	"fmt"
	"strings"

	"github.com/kelly-tou/scum-code/errs"
)

// Style selects how a data series is drawn.
type Style int

const (
	// StyleLines connects the points with line segments.
	StyleLines Style = iota
	// StylePoints draws a glyph at each point.
	StylePoints
	// StyleLinesPoints draws both line segments and glyphs.
	StyleLinesPoints
)

// styleNames maps Style to their string representations.
var styleNames = map[Style]string{
	StyleLines:       "lines",
	StylePoints:      "points",
	StyleLinesPoints: "linespoints",
}

// String returns the string representation of the style.
func (s Style) String() string {
	if name, exists := styleNames[s]; exists {
		return name
	}

	return "unknown"
}

// styleFromString maps string names to Style.
var styleFromString = map[string]Style{
	"lines":       StyleLines,
	"points":      StylePoints,
	"linespoints": StyleLinesPoints,
}

// StyleFromString returns the Style for a given string name.
//
// Returns errs.ErrUnknownStyle for unknown names.
func StyleFromString(name string) (Style, error) {
	if style, exists := styleFromString[strings.ToLower(name)]; exists {
		return style, nil
	}

	return Style(-1), fmt.Errorf("%w: %s (supported: lines, points, linespoints)", errs.ErrUnknownStyle, name)
}
