package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
	"pkt.systems/gridpaper"
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Writer io.Writer
	Config Config
	// Logger receives debug output about the computed grid. Nil disables
	// logging.
	Logger *zap.Logger
}

// Layout resolves the paper size in cfg and returns the arranged grid the
// renderer would draw.
func Layout(cfg Config) (gridpaper.Grid, error) {
	paper, err := gridpaper.PaperSizeByName(cfg.PaperSize)
	if err != nil {
		return gridpaper.Grid{}, err
	}
	if cfg.MajorInterval < 1 {
		return gridpaper.Grid{}, fmt.Errorf("%w: major interval %d must be at least 1", gridpaper.ErrConfig, cfg.MajorInterval)
	}
	if cfg.HeaderDividers < 0 {
		return gridpaper.Grid{}, fmt.Errorf("%w: header dividers %d is negative", gridpaper.ErrConfig, cfg.HeaderDividers)
	}
	if err := validateLineWidths(cfg); err != nil {
		return gridpaper.Grid{}, err
	}
	grid, err := gridpaper.ComputeGrid(paper, cfg.Margins, cfg.Spacing)
	if err != nil {
		return gridpaper.Grid{}, err
	}
	return gridpaper.Arrange(grid, cfg.arrangement()), nil
}

// Render draws the grid described by req.Config and writes the PDF to
// req.Writer.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	doc, err := build(req.Config, loggerOrNop(req.Logger))
	if err != nil {
		return err
	}
	if err := doc.Output(req.Writer); err != nil {
		return fmt.Errorf("%w: pdf render: output: %w", gridpaper.ErrIO, err)
	}
	return nil
}

// WriteFile renders cfg and stores the PDF at path, creating parent
// directories as needed. The document is rendered in memory first, so
// invalid settings leave the file system untouched. A failed write removes
// the partial file.
func WriteFile(path string, cfg Config, logger *zap.Logger) (err error) {
	var buf bytes.Buffer
	if err := Render(RenderRequest{Writer: &buf, Config: cfg, Logger: logger}); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create output directory: %w", gridpaper.ErrIO, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create output: %w", gridpaper.ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close output: %w", gridpaper.ErrIO, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	if _, err := buf.WriteTo(f); err != nil {
		return fmt.Errorf("%w: write output: %w", gridpaper.ErrIO, err)
	}
	return nil
}

type pdfLayers struct {
	enabled    bool
	background int
	minor      int
	major      int
	frame      int
}

func (l pdfLayers) idFor(kind gridpaper.LineKind) int {
	switch kind {
	case gridpaper.LineMajor:
		return l.major
	case gridpaper.LineFrame:
		return l.frame
	default:
		return l.minor
	}
}

func build(cfg Config, logger *zap.Logger) (*gofpdf.Fpdf, error) {
	grid, err := Layout(cfg)
	if err != nil {
		return nil, fmt.Errorf("pdf render: %w", err)
	}
	logger.Debug("grid computed",
		zap.String("paper", grid.Paper.Name),
		zap.Float64("width", grid.Paper.Width),
		zap.Float64("height", grid.Paper.Height),
		zap.Float64("margin_top", grid.Margins.Top),
		zap.Float64("margin_bottom", grid.Margins.Bottom),
		zap.Float64("margin_left", grid.Margins.Left),
		zap.Float64("margin_right", grid.Margins.Right),
		zap.Float64("spacing", grid.Spacing),
		zap.Int("vertical_lines", len(grid.Vertical)),
		zap.Int("horizontal_lines", len(grid.Horizontal)),
	)
	if grid.Spacing != cfg.Spacing {
		logger.Debug("adjusted grid spacing", zap.Float64("requested", cfg.Spacing), zap.Float64("spacing", grid.Spacing))
	}

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: grid.Paper.Width, Ht: grid.Paper.Height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCompression(cfg.Compress)
	if cfg.Title != "" {
		doc.SetTitle(cfg.Title, true)
	}
	if cfg.Creator != "" {
		doc.SetCreator(cfg.Creator, true)
	}
	if !cfg.CreationDate.IsZero() {
		doc.SetCreationDate(cfg.CreationDate)
	}

	layers := pdfLayers{}
	if cfg.Layers {
		layers.enabled = true
		if cfg.Background {
			layers.background = doc.AddLayer("background", true)
		}
		layers.minor = doc.AddLayer("minor", true)
		layers.major = doc.AddLayer("major", true)
		if cfg.Border {
			layers.frame = doc.AddLayer("frame", true)
		}
		if cfg.OpenLayerPane {
			doc.OpenLayerPane()
		}
	}

	doc.AddPage()
	if cfg.Background {
		drawBackground(doc, grid.Paper, layers)
	}

	lines := grid.Lines()
	if cfg.Border {
		lines = append(lines, grid.Frame(cfg.HeaderDividers)...)
	}
	for _, kind := range []gridpaper.LineKind{gridpaper.LineMinor, gridpaper.LineMajor, gridpaper.LineFrame} {
		drawLines(doc, lines, kind, styleFor(kind, cfg), layers)
	}

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("%w: pdf render: %w", gridpaper.ErrIO, err)
	}
	return doc, nil
}

func drawBackground(doc *gofpdf.Fpdf, paper gridpaper.PaperSize, layers pdfLayers) {
	if layers.enabled {
		doc.BeginLayer(layers.background)
		defer doc.EndLayer()
	}
	doc.SetFillColor(paperRGB[0], paperRGB[1], paperRGB[2])
	doc.Rect(0, 0, paper.Width, paper.Height, "F")
}

func drawLines(doc *gofpdf.Fpdf, lines []gridpaper.Line, kind gridpaper.LineKind, style lineStyle, layers pdfLayers) {
	begun := false
	for _, l := range lines {
		if l.Kind != kind {
			continue
		}
		if !begun {
			if layers.enabled {
				doc.BeginLayer(layers.idFor(kind))
			}
			doc.SetDrawColor(style.r, style.g, style.b)
			doc.SetLineWidth(style.width)
			begun = true
		}
		doc.Line(l.X1, l.Y1, l.X2, l.Y2)
	}
	if begun && layers.enabled {
		doc.EndLayer()
	}
}

func loggerOrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
