package gridpaper

// LineKind classifies a segment for styling.
type LineKind uint8

const (
	// LineMinor is a regular grid line.
	LineMinor LineKind = iota
	// LineMajor is every MajorInterval-th grid line.
	LineMajor
	// LineFrame is a border or header divider line.
	LineFrame
)

func (k LineKind) String() string {
	switch k {
	case LineMinor:
		return "minor"
	case LineMajor:
		return "major"
	case LineFrame:
		return "frame"
	default:
		return "unknown"
	}
}

// Line is a straight segment from (X1, Y1) to (X2, Y2) in page coordinates.
type Line struct {
	Kind   LineKind
	X1, Y1 float64
	X2, Y2 float64
}
