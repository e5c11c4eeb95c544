package pdf

import (
	"time"

	"pkt.systems/gridpaper"
)

// Config holds PDF rendering settings. MajorInterval must be at least 1; an
// interval of 1 draws every line as a major line.
type Config struct {
	PaperSize       string
	Margins         gridpaper.Margins
	Spacing         float64
	MajorInterval   int
	SnapToMajor     bool
	Stretch         bool
	Center          bool
	Border          bool
	HeaderDividers  int
	Background      bool
	Layers          bool
	OpenLayerPane   bool
	MajorLineWidth  float64
	MinorLineWidth  float64
	BorderLineWidth float64
	Title           string
	Creator         string
	CreationDate    time.Time
	Compress        bool
}

// DefaultConfig returns a baseline configuration: a plain Letter grid on a
// 15pt spacing inside the default margins.
func DefaultConfig() Config {
	return Config{
		PaperSize:       gridpaper.DefaultPaperSize().Name,
		Margins:         gridpaper.DefaultMargins(),
		Spacing:         15,
		MajorInterval:   gridpaper.DefaultMajorInterval,
		HeaderDividers:  3,
		MajorLineWidth:  0.5,
		MinorLineWidth:  0.2,
		BorderLineWidth: 1.5,
		Title:           "Grid paper",
		Creator:         "gridpaper",
		Compress:        true,
	}
}

// Engineering switches on the layout of classic engineering paper: a grid
// snapped to major lines, stretched and centred, with a border, header
// dividers and a tinted background.
func (c Config) Engineering() Config {
	c.SnapToMajor = true
	c.Stretch = true
	c.Center = true
	c.Border = true
	c.Background = true
	return c
}

func (c Config) arrangement() gridpaper.Arrangement {
	return gridpaper.Arrangement{
		MajorInterval: c.MajorInterval,
		SnapToMajor:   c.SnapToMajor,
		Stretch:       c.Stretch,
		Center:        c.Center,
	}
}
