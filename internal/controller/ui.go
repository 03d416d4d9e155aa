// Package controller provides the operator facing side of a qualification
// run: prompts for manual steps and the final report.
package controller

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/flashqual/internal/model"
)

// ErrPromptAborted is returned when the operator declines a prompt.
var ErrPromptAborted = errors.New("operator aborted")

// UI talks to the operator. Implementations can use different output
// methods (simple text, TUI).
type UI interface {
	// Confirm shows message and blocks until the operator confirms. A non
	// nil error means the operator aborted.
	Confirm(message string) error
	// Report renders the results of a run.
	Report(meta m.ReportMetadata, outcomes []m.Outcome) error
	// DisplayLayout prints a rendered layout file.
	DisplayLayout(size int64, layout string)
}

// NewUI creates the UI for cmd. A terminal gets the interactive prompt and a
// coloured report.
func NewUI(cmd *cobra.Command, format m.OutputFormat, useTTY bool) (UI, error) {
	if useTTY {
		reporter, err := NewReporter(cmd.OutOrStdout(), format, WithColor(true))
		if err != nil {
			return nil, err
		}

		return NewTUI(cmd.InOrStdin(), cmd.OutOrStdout(), reporter), nil
	}

	reporter, err := NewReporter(cmd.OutOrStdout(), format)
	if err != nil {
		return nil, err
	}

	return NewSimpleUI(cmd, reporter), nil
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
