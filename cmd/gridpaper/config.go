package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"pkt.systems/gridpaper"
	"pkt.systems/gridpaper/pdf"
)

const envPrefix = "GRIDPAPER"

type options struct {
	pdf            pdf.Config
	verbose        bool
	logFormat      string
	logFile        string
	listPaperSizes bool
}

// loadOptions resolves settings with the precedence flag > environment >
// config file > flag default.
func loadOptions(flags *pflag.FlagSet) (options, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return options{}, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := strings.TrimSpace(v.GetString("config")); path != "" {
		v.SetConfigFile(normalizePath(path))
		if err := v.ReadInConfig(); err != nil {
			return options{}, fmt.Errorf("%w: read config %s: %w", gridpaper.ErrConfig, path, err)
		}
	}

	cfg := pdf.DefaultConfig()
	cfg.PaperSize = v.GetString("paper-size")
	cfg.Margins = resolveMargins(v, cfg.Margins)
	cfg.Spacing = v.GetFloat64("spacing")
	cfg.MajorInterval = v.GetInt("major-interval")
	cfg.MajorLineWidth = v.GetFloat64("major-line-width")
	cfg.MinorLineWidth = v.GetFloat64("minor-line-width")
	cfg.BorderLineWidth = v.GetFloat64("border-line-width")
	cfg.SnapToMajor = v.GetBool("snap")
	cfg.Stretch = v.GetBool("stretch")
	cfg.Center = v.GetBool("center")
	cfg.Border = v.GetBool("border")
	cfg.HeaderDividers = v.GetInt("header-dividers")
	cfg.Background = v.GetBool("background")
	cfg.Layers = v.GetBool("layers")
	cfg.OpenLayerPane = v.GetBool("open-layer-pane")
	cfg.Title = v.GetString("title")
	cfg.Creator = creator()
	if v.GetBool("engineering") {
		cfg = cfg.Engineering()
	}
	created, err := sourceDateEpoch()
	if err != nil {
		return options{}, err
	}
	cfg.CreationDate = created

	logFormat := strings.ToLower(strings.TrimSpace(v.GetString("log-format")))
	switch logFormat {
	case "", "console":
		logFormat = "console"
	case "json":
	default:
		return options{}, fmt.Errorf("%w: log format %q (expected console|json)", gridpaper.ErrConfig, logFormat)
	}
	logFile := strings.TrimSpace(v.GetString("log-file"))
	if logFile != "" && !strings.EqualFold(logFile, "stdout") && !strings.EqualFold(logFile, "stderr") {
		logFile = normalizePath(logFile)
	}

	return options{
		pdf:            cfg,
		verbose:        v.GetBool("verbose"),
		logFormat:      logFormat,
		logFile:        logFile,
		listPaperSizes: v.GetBool("list-paper-sizes"),
	}, nil
}

// resolveMargins starts from base, applies --margin to every side and then
// the per-side settings that were given explicitly.
func resolveMargins(v *viper.Viper, base gridpaper.Margins) gridpaper.Margins {
	m := base
	if v.IsSet("margin") {
		m = gridpaper.UniformMargins(v.GetFloat64("margin"))
	}
	if v.IsSet("margin-top") {
		m.Top = v.GetFloat64("margin-top")
	}
	if v.IsSet("margin-bottom") {
		m.Bottom = v.GetFloat64("margin-bottom")
	}
	if v.IsSet("margin-left") {
		m.Left = v.GetFloat64("margin-left")
	}
	if v.IsSet("margin-right") {
		m.Right = v.GetFloat64("margin-right")
	}
	return m
}

// sourceDateEpoch honours SOURCE_DATE_EPOCH so repeated runs produce the
// same bytes.
func sourceDateEpoch() (time.Time, error) {
	raw := strings.TrimSpace(os.Getenv("SOURCE_DATE_EPOCH"))
	if raw == "" {
		return time.Time{}, nil
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: SOURCE_DATE_EPOCH %q: %w", gridpaper.ErrConfig, raw, err)
	}
	return time.Unix(secs, 0).UTC(), nil
}
