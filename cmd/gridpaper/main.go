package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"
	"pkt.systems/gridpaper"
	"pkt.systems/gridpaper/internal/logging"
	"pkt.systems/gridpaper/pdf"
	"pkt.systems/version"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2

	defaultWidth = 80
)

const description = "Writes a single-page PDF of grid paper for use as a background " +
	"template in note-taking apps. Positions are in points (1/72 inch). Settings are " +
	"read from flags, then GRIDPAPER_* environment variables (dashes become " +
	"underscores), then the file given with --config."

func init() {
	version.SetDefaultModule("pkt.systems/gridpaper")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := newFlagSet(pdf.DefaultConfig(), stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	opts, err := loadOptions(flags)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}
	if opts.listPaperSizes {
		printPaperSizes(stdout)
		return exitOK
	}
	if flags.NArg() != 1 {
		fmt.Fprintf(stderr, "expected exactly one output path, got %d\n\n", flags.NArg())
		flags.Usage()
		return exitUsage
	}

	outPath := strings.TrimSpace(flags.Arg(0))
	if outPath == "-" && strings.EqualFold(opts.logFile, "stdout") {
		fmt.Fprintln(stderr, "cannot log to stdout while writing the PDF to stdout")
		return exitUsage
	}

	logCfg := logging.DefaultConfig()
	logCfg.Format = opts.logFormat
	logCfg.Writer = stderr
	if opts.logFile != "" && !strings.EqualFold(opts.logFile, "stderr") {
		logCfg.Output = opts.logFile
		logCfg.Writer = nil
	}
	if opts.verbose {
		logCfg.Level = "debug"
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return exitFailed
	}
	defer func() { _ = logger.Sync() }()

	if outPath == "-" {
		if isTerminal(stdout) {
			fmt.Fprintln(stderr, "refusing to write PDF to terminal; give an output path")
			return exitUsage
		}
		err = pdf.Render(pdf.RenderRequest{Writer: stdout, Config: opts.pdf, Logger: logger})
	} else {
		outPath = normalizePath(outPath)
		err = pdf.WriteFile(outPath, opts.pdf, logger)
	}
	if err != nil {
		fmt.Fprintf(stderr, "gridpaper: %v\n", err)
		if errors.Is(err, gridpaper.ErrConfig) {
			return exitUsage
		}
		return exitFailed
	}
	logger.Info("wrote grid paper",
		zap.String("path", outPath),
		zap.String("paper", opts.pdf.PaperSize),
	)
	return exitOK
}

func newFlagSet(defaults pdf.Config, stderr io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet("gridpaper", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringP("paper-size", "p", defaults.PaperSize, "Paper size: "+strings.Join(gridpaper.AvailablePaperSizes(), "|"))
	flags.Float64P("margin", "m", 0, "Margin in points for all four sides")
	flags.Float64("margin-top", defaults.Margins.Top, "Top margin in points (overrides --margin)")
	flags.Float64("margin-bottom", defaults.Margins.Bottom, "Bottom margin in points (overrides --margin)")
	flags.Float64("margin-left", defaults.Margins.Left, "Left margin in points (overrides --margin)")
	flags.Float64("margin-right", defaults.Margins.Right, "Right margin in points (overrides --margin)")
	flags.Float64P("spacing", "s", defaults.Spacing, "Grid spacing in points")
	flags.Int("major-interval", defaults.MajorInterval, "Draw every Nth line as a major line")
	flags.Float64("major-line-width", defaults.MajorLineWidth, "Major line width in points")
	flags.Float64("minor-line-width", defaults.MinorLineWidth, "Minor line width in points")
	flags.Float64("border-line-width", defaults.BorderLineWidth, "Border line width in points")
	flags.Bool("snap", false, "Trim the grid to a whole number of major cells")
	flags.Bool("stretch", false, "Stretch the spacing so the grid fills the printable area")
	flags.Bool("center", false, "Center the grid inside the margins")
	flags.Bool("border", false, "Draw a border and a divided header band")
	flags.Int("header-dividers", defaults.HeaderDividers, "Number of header columns when --border is set")
	flags.Bool("background", false, "Tint the page with the paper colour")
	flags.BoolP("engineering", "e", false, "Engineering paper: --snap --stretch --center --border --background")
	flags.Bool("layers", false, "Put background, minor, major and border lines on separate PDF layers")
	flags.Bool("open-layer-pane", false, "Ask the PDF viewer to open the layer pane")
	flags.String("title", defaults.Title, "PDF document title")
	flags.StringP("config", "c", "", "Config file (yaml, toml or json) with the same keys as the flags")
	flags.BoolP("verbose", "v", false, "Log grid geometry at debug level")
	flags.String("log-format", "console", "Log format: console|json")
	flags.String("log-file", "", "Log destination: stdout, stderr or a file path (default stderr)")
	flags.Bool("list-paper-sizes", false, "List supported paper sizes")
	flags.SortFlags = false

	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: gridpaper [flags] <output.pdf>\n\n")
		fmt.Fprintln(stderr, wordwrap.String(description, terminalWidth(stderr, defaultWidth)))
		fmt.Fprintln(stderr, "\nUse - as the output path to write the PDF to stdout.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	return flags
}

func creator() string {
	return fmt.Sprint("gridpaper ", version.Current())
}

func printPaperSizes(w io.Writer) {
	for _, name := range gridpaper.AvailablePaperSizes() {
		size, err := gridpaper.PaperSizeByName(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%-8s %g x %g pt\n", size.Name, size.Width, size.Height)
	}
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				return width
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if width, err := strconv.Atoi(value); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
