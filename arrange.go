package gridpaper

import "math"

// Arrangement adjusts a computed grid the way engineering paper is usually
// laid out. The zero value leaves the grid untouched.
type Arrangement struct {
	// MajorInterval overrides the grid's major line interval when > 0. Zero
	// keeps the grid's interval.
	MajorInterval int
	// SnapToMajor floors the cell count of each axis to a multiple of
	// MajorInterval so both outer lines are major lines.
	SnapToMajor bool
	// Stretch grows the spacing until the grid reaches the far margin on
	// the tighter axis. Cells stay square.
	Stretch bool
	// Center splits the leftover space on each axis evenly between both
	// margins.
	Center bool
}

func (a Arrangement) reshapes() bool {
	return a.SnapToMajor || a.Stretch || a.Center
}

// Arrange applies opts to g and returns the adjusted grid. Positions stay
// inside the printable area and spacing stays uniform. When any reshaping
// option is set, Bounds shrink to the outermost lines so no segment runs
// past the grid. An axis with a single line is left as computed.
func Arrange(g Grid, opts Arrangement) Grid {
	out := g
	if opts.MajorInterval > 0 {
		out.MajorInterval = opts.MajorInterval
	}
	if !opts.reshapes() || len(g.Vertical) == 0 || len(g.Horizontal) == 0 {
		return out
	}
	area := g.Printable()
	nv := len(g.Vertical) - 1
	nh := len(g.Horizontal) - 1
	if opts.SnapToMajor && out.MajorInterval > 1 {
		nv = snapDown(nv, out.MajorInterval)
		nh = snapDown(nh, out.MajorInterval)
	}

	spacing := g.Spacing
	if opts.Stretch {
		stretched := math.Inf(1)
		if nv > 0 {
			stretched = math.Min(stretched, area.Width()/float64(nv))
		}
		if nh > 0 {
			stretched = math.Min(stretched, area.Height()/float64(nh))
		}
		if !math.IsInf(stretched, 1) {
			spacing = stretched
		}
	}
	out.Spacing = spacing

	if nv > 0 {
		start, end := placeAxis(area.MinX, area.MaxX, nv, spacing, opts.Center)
		out.Vertical = linePositions(start, end-start, spacing, nv)
		out.Bounds.MinX, out.Bounds.MaxX = start, end
	}
	if nh > 0 {
		start, end := placeAxis(area.MinY, area.MaxY, nh, spacing, opts.Center)
		out.Horizontal = linePositions(start, end-start, spacing, nh)
		out.Bounds.MinY, out.Bounds.MaxY = start, end
	}
	return out
}

// placeAxis returns the first and last line position for n cells of size
// spacing between lo and hi.
func placeAxis(lo, hi float64, n int, spacing float64, center bool) (float64, float64) {
	extent := math.Min(float64(n)*spacing, hi-lo)
	start := lo
	if center {
		start += (hi - lo - extent) / 2
	}
	return start, math.Min(start+extent, hi)
}

func snapDown(n, interval int) int {
	snapped := (n / interval) * interval
	if snapped == 0 {
		return n
	}
	return snapped
}
