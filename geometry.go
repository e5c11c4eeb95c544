package gridpaper

import (
	"fmt"
	"math"
)

// DefaultMajorInterval is the number of cells between major lines.
const DefaultMajorInterval = 5

// MaxLinesPerAxis bounds the number of lines on either axis.
const MaxLinesPerAxis = 10000

// spanTolerance absorbs float drift when a printable span is an exact
// multiple of the spacing, so the far-margin line is not lost.
const spanTolerance = 1e-9

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Grid holds the line positions of a sheet of grid paper.
//
// Coordinates are in points with the origin at the top-left corner of the
// page and y growing downwards. Vertical holds x-positions of vertical lines
// from left to right, Horizontal holds y-positions of horizontal lines from
// top to bottom. Vertical lines run from Bounds.MinY to Bounds.MaxY and
// horizontal lines from Bounds.MinX to Bounds.MaxX.
type Grid struct {
	Paper         PaperSize
	Margins       Margins
	Spacing       float64
	MajorInterval int
	Vertical      []float64
	Horizontal    []float64
	Bounds        Rect
}

// Printable returns the page area inside the margins.
func (g Grid) Printable() Rect {
	return printableArea(g.Paper, g.Margins)
}

// ComputeGrid lays out a uniform grid with cell size spacing inside the
// margins of paper.
//
// Each axis starts at its near margin and steps by spacing while the
// position stays at or before the far margin, so a span that is an exact
// multiple of spacing gets a line on both margins. A spacing larger than
// the printable span yields a single line at the near margin. A spacing
// that would need MaxLinesPerAxis lines or more on an axis is rejected.
func ComputeGrid(paper PaperSize, margins Margins, spacing float64) (Grid, error) {
	if paper.Width <= 0 || paper.Height <= 0 {
		return Grid{}, fmt.Errorf("%w: paper size %q has no area", ErrConfig, paper.Name)
	}
	if err := validateSpacing(spacing); err != nil {
		return Grid{}, err
	}
	if err := margins.Validate(paper); err != nil {
		return Grid{}, err
	}
	area := printableArea(paper, margins)
	longest := math.Max(area.Width(), area.Height())
	if longest/spacing >= MaxLinesPerAxis {
		return Grid{}, fmt.Errorf("%w: spacing %g needs too many lines (limit %d per axis)",
			ErrConfig, spacing, MaxLinesPerAxis)
	}
	return Grid{
		Paper:         paper,
		Margins:       margins,
		Spacing:       spacing,
		MajorInterval: DefaultMajorInterval,
		Vertical:      linePositions(area.MinX, area.Width(), spacing, spaceCount(area.Width(), spacing)),
		Horizontal:    linePositions(area.MinY, area.Height(), spacing, spaceCount(area.Height(), spacing)),
		Bounds:        area,
	}, nil
}

// IsMajor reports whether the i-th line of an axis, counted from the left
// or top, is a major line.
func (g Grid) IsMajor(i int) bool {
	if g.MajorInterval <= 1 {
		return true
	}
	return i%g.MajorInterval == 0
}

// Lines returns the grid as drawable segments, vertical lines first.
func (g Grid) Lines() []Line {
	lines := make([]Line, 0, len(g.Vertical)+len(g.Horizontal))
	for i, x := range g.Vertical {
		lines = append(lines, Line{
			Kind: g.kindOf(i),
			X1:   x,
			Y1:   g.Bounds.MinY,
			X2:   x,
			Y2:   g.Bounds.MaxY,
		})
	}
	for i, y := range g.Horizontal {
		lines = append(lines, Line{
			Kind: g.kindOf(i),
			X1:   g.Bounds.MinX,
			Y1:   y,
			X2:   g.Bounds.MaxX,
			Y2:   y,
		})
	}
	return lines
}

func (g Grid) kindOf(i int) LineKind {
	if g.IsMajor(i) {
		return LineMajor
	}
	return LineMinor
}

func validateSpacing(spacing float64) error {
	if math.IsNaN(spacing) || math.IsInf(spacing, 0) {
		return fmt.Errorf("%w: spacing is not a finite number", ErrConfig)
	}
	if spacing <= 0 {
		return fmt.Errorf("%w: spacing %g must be positive", ErrConfig, spacing)
	}
	return nil
}

func printableArea(paper PaperSize, m Margins) Rect {
	return Rect{
		MinX: m.Left,
		MinY: m.Top,
		MaxX: paper.Width - m.Right,
		MaxY: paper.Height - m.Bottom,
	}
}

// spaceCount returns how many whole cells of size step fit in span.
func spaceCount(span, step float64) int {
	q := span / step
	n := math.Floor(q)
	if q-n > 1-spanTolerance {
		n++
	}
	return int(n)
}

// linePositions returns n+1 positions start, start+step, ... clamped to
// start+span.
func linePositions(start, span, step float64, n int) []float64 {
	end := start + span
	out := make([]float64, n+1)
	for i := range out {
		out[i] = math.Min(start+float64(i)*step, end)
	}
	return out
}
