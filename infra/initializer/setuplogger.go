package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/pocketpilot/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type levelStyle struct {
	level log.Level
	key   string
	icon  string
	color lipgloss.AdaptiveColor
}

var levelStyles = []levelStyle{
	{log.ErrorLevel, "error", "✖", lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF6B6B"}},
	{log.WarnLevel, "warn", "!", lipgloss.AdaptiveColor{Light: "#C17C00", Dark: "#F4B942"}},
	{log.InfoLevel, "info", "•", lipgloss.AdaptiveColor{Light: "#0B8457", Dark: "#2EC4B6"}},
	{log.DebugLevel, "debug", "·", lipgloss.AdaptiveColor{Light: "#5E4B8B", Dark: "#9D8DF1"}},
}

var formatters = map[string]log.Formatter{
	"json":   log.JSONFormatter,
	"text":   log.TextFormatter,
	"logfmt": log.LogfmtFormatter,
}

func setupLogger(cfg *config.Log) *slog.Logger {
	return newLogger(os.Stdout, cfg)
}

// newLogger builds the charmbracelet handler behind slog and installs it as
// the default logger.
func newLogger(w io.Writer, cfg *config.Log) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{Format: "text", TimeFormat: "2006-01-02 15:04:05"}
	}

	styles := log.DefaultStyles()
	muted := lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#8D99AE"}
	for _, ls := range levelStyles {
		styles.Levels[ls.level] = lipgloss.NewStyle().
			SetString(ls.icon + " " + ls.key).
			Bold(true).
			Padding(0, 1).
			Foreground(ls.color)
		styles.Keys[ls.key] = lipgloss.NewStyle().Foreground(ls.color)
		styles.Values[ls.key] = lipgloss.NewStyle().Bold(true)
	}
	for _, k := range []string{"userID", "context", "prefix", "caller"} {
		styles.Keys[k] = lipgloss.NewStyle().Foreground(muted)
	}

	formatter, ok := formatters[cfg.Format]
	if !ok {
		formatter = log.TextFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)
	return slogger
}
