package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/flashqual/internal/model"
)

// TUI implements UI using Bubble Tea for interactive prompts.
type TUI struct {
	input    io.Reader
	output   io.Writer
	reporter Reporter
	opts     []tea.ProgramOption
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer, reporter Reporter, opts ...tea.ProgramOption) *TUI {
	return &TUI{input: input, output: output, reporter: reporter, opts: opts}
}

// Confirm shows message with a spinner. Any key confirms; esc and ctrl+c
// abort.
func (t *TUI) Confirm(message string) error {
	opts := append([]tea.ProgramOption{tea.WithInput(t.input), tea.WithOutput(t.output)}, t.opts...)
	p := tea.NewProgram(newPromptModel(message), opts...)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}

	if pm, ok := final.(promptModel); ok && pm.aborted {
		return ErrPromptAborted
	}

	return nil
}

// Report delegates to the configured reporter.
func (t *TUI) Report(meta m.ReportMetadata, outcomes []m.Outcome) error {
	return t.reporter.Report(meta, outcomes)
}

// DisplayLayout prints the layout below a styled heading.
func (t *TUI) DisplayLayout(size int64, layout string) {
	heading := lipgloss.NewRenderer(t.output).NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	_, _ = fmt.Fprintf(t.output, "%s\n%s", heading.Render(fmt.Sprintf("# layout for a %#x byte chip", size)), layout)
}
