package controller

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/flashqual/internal/model"
)

// SimpleUI implements UI with line based prompts on the command streams.
type SimpleUI struct {
	cmd      *cobra.Command
	reporter Reporter
	in       *bufio.Reader
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, reporter Reporter) *SimpleUI {
	return &SimpleUI{cmd: cmd, reporter: reporter, in: bufio.NewReader(cmd.InOrStdin())}
}

// Confirm prints message and waits for a line. End of input aborts.
func (s *SimpleUI) Confirm(message string) error {
	s.printf("%s ", message)

	if _, err := s.in.ReadString('\n'); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: no operator input", ErrPromptAborted)
		}

		return fmt.Errorf("failed to read operator input: %w", err)
	}

	return nil
}

// Report delegates to the configured reporter.
func (s *SimpleUI) Report(meta m.ReportMetadata, outcomes []m.Outcome) error {
	return s.reporter.Report(meta, outcomes)
}

// DisplayLayout prints the layout as is.
func (s *SimpleUI) DisplayLayout(size int64, layout string) {
	s.printf("# layout for a %#x byte chip\n%s", size, layout)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
