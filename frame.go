package gridpaper

// Frame returns the border lines around the grid.
//
// The left and right borders run the full page height and the top border
// the full page width, which leaves a header band above the grid. The
// bottom border closes the grid. With dividers > 1 the header band is split
// into that many equal columns.
func (g Grid) Frame(dividers int) []Line {
	b := g.Bounds
	lines := []Line{
		{Kind: LineFrame, X1: b.MinX, Y1: 0, X2: b.MinX, Y2: g.Paper.Height},
		{Kind: LineFrame, X1: b.MaxX, Y1: 0, X2: b.MaxX, Y2: g.Paper.Height},
		{Kind: LineFrame, X1: 0, Y1: b.MinY, X2: g.Paper.Width, Y2: b.MinY},
		{Kind: LineFrame, X1: b.MinX, Y1: b.MaxY, X2: b.MaxX, Y2: b.MaxY},
	}
	if dividers <= 1 {
		return lines
	}
	column := b.Width() / float64(dividers)
	for k := 1; k < dividers; k++ {
		x := b.MinX + float64(k)*column
		lines = append(lines, Line{Kind: LineFrame, X1: x, Y1: 0, X2: x, Y2: b.MinY})
	}
	return lines
}
