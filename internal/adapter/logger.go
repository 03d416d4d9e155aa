package adapter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// LogTimeFormat is RFC 3339 in UTC with microseconds.
const LogTimeFormat = "2006-01-02T15:04:05.000000Z07:00"

// NewLogger creates the session logger writing to w. Colours are only
// emitted when w is a terminal.
func NewLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      LogTimeFormat,
		Level:           log.InfoLevel,
	})

	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	styles := log.DefaultStyles()
	styles.Timestamp = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))

	for level, style := range styles.Levels {
		styles.Levels[level] = style.
			SetString("[ " + strings.ToUpper(level.String()) + " ]").
			Foreground(lipgloss.Color("3")).
			MaxWidth(0)
	}

	logger.SetStyles(styles)

	return logger
}

// OpenLogger creates a logger appending to path, or writing to fallback
// when path is empty. The returned closer must be called once logging is
// finished.
func OpenLogger(path string, fallback io.Writer, debug bool) (*log.Logger, io.Closer, error) {
	if path == "" {
		return NewLogger(fallback, debug), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewLogger(f, debug), f, nil
}
