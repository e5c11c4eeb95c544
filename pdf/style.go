package pdf

import (
	"fmt"
	"math"

	"pkt.systems/gridpaper"
)

type lineStyle struct {
	r, g, b int
	width   float64
}

var (
	majorRGB = [3]int{0, 100, 0}
	minorRGB = [3]int{144, 238, 144}
	frameRGB = [3]int{0, 100, 0}
	paperRGB = [3]int{250, 243, 189}
)

func styleFor(kind gridpaper.LineKind, cfg Config) lineStyle {
	switch kind {
	case gridpaper.LineMajor:
		return newLineStyle(majorRGB, cfg.MajorLineWidth)
	case gridpaper.LineFrame:
		return newLineStyle(frameRGB, cfg.BorderLineWidth)
	default:
		return newLineStyle(minorRGB, cfg.MinorLineWidth)
	}
}

func newLineStyle(rgb [3]int, width float64) lineStyle {
	return lineStyle{r: rgb[0], g: rgb[1], b: rgb[2], width: width}
}

func validateLineWidths(cfg Config) error {
	widths := [...]struct {
		name  string
		value float64
	}{
		{"major", cfg.MajorLineWidth},
		{"minor", cfg.MinorLineWidth},
		{"border", cfg.BorderLineWidth},
	}
	for _, w := range widths {
		if math.IsNaN(w.value) || math.IsInf(w.value, 0) || w.value <= 0 {
			return fmt.Errorf("%w: %s line width %g must be a positive number", gridpaper.ErrConfig, w.name, w.value)
		}
	}
	return nil
}
