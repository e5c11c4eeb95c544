// Package gridpaper computes the geometry of printable grid paper.
//
// A Grid is a pure function of a paper size, margins and a line spacing. It
// is computed once and handed to a renderer such as package
// pkt.systems/gridpaper/pdf, which draws it onto a single page.
//
// Core properties:
//   - Every line lies inside the margins, on a uniform spacing
//   - The far-margin line is included when the span divides evenly
//   - Arrangement can snap, stretch and centre the grid for engineering paper
//   - Invalid input fails with ErrConfig, never with a partial grid
//
// Example:
//
//	paper, err := gridpaper.PaperSizeByName("A4")
//	if err != nil {
//		log.Fatal(err)
//	}
//	grid, err := gridpaper.ComputeGrid(paper, gridpaper.DefaultMargins(), 15)
//	if err != nil {
//		log.Fatal(err)
//	}
//	grid = gridpaper.Arrange(grid, gridpaper.Arrangement{SnapToMajor: true, Center: true})
//	for _, line := range grid.Lines() {
//		fmt.Println(line.Kind, line.X1, line.Y1, line.X2, line.Y2)
//	}
package gridpaper
