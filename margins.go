package gridpaper

import (
	"fmt"
	"math"
)

// Margins are the distances in points from each page edge to the printable
// area.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// DefaultMargins returns the stock margins: 30pt top and bottom, 40pt left
// for hole punches and 20pt right.
func DefaultMargins() Margins {
	return Margins{Top: 30, Bottom: 30, Left: 40, Right: 20}
}

// UniformMargins returns margins of v on every side.
func UniformMargins(v float64) Margins {
	return Margins{Top: v, Bottom: v, Left: v, Right: v}
}

// Validate checks that the margins leave a printable area of positive size
// on paper.
func (m Margins) Validate(paper PaperSize) error {
	sides := [...]struct {
		name  string
		value float64
	}{
		{"top", m.Top},
		{"bottom", m.Bottom},
		{"left", m.Left},
		{"right", m.Right},
	}
	for _, side := range sides {
		if math.IsNaN(side.value) || math.IsInf(side.value, 0) {
			return fmt.Errorf("%w: %s margin is not a finite number", ErrConfig, side.name)
		}
		if side.value < 0 {
			return fmt.Errorf("%w: %s margin %g is negative", ErrConfig, side.name, side.value)
		}
	}
	if m.Left+m.Right >= paper.Width {
		return fmt.Errorf("%w: left+right margins %gpt leave no printable width on %s (%gpt)",
			ErrConfig, m.Left+m.Right, paper.Name, paper.Width)
	}
	if m.Top+m.Bottom >= paper.Height {
		return fmt.Errorf("%w: top+bottom margins %gpt leave no printable height on %s (%gpt)",
			ErrConfig, m.Top+m.Bottom, paper.Name, paper.Height)
	}
	return nil
}
