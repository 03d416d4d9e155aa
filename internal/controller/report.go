package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/flashqual/internal/model"
)

// Reporter renders qualification results.
type Reporter interface {
	Report(meta m.ReportMetadata, outcomes []m.Outcome) error
}

// ReporterOption configures a reporter.
type ReporterOption func(*reporterConfig)

type reporterConfig struct {
	color bool
}

// WithColor enables ANSI styling of the pretty report.
func WithColor(enabled bool) ReporterOption {
	return func(c *reporterConfig) {
		c.color = enabled
	}
}

// NewReporter returns the reporter for format writing to out.
func NewReporter(out io.Writer, format m.OutputFormat, opts ...ReporterOption) (Reporter, error) {
	cfg := &reporterConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch format {
	case m.FormatPretty:
		return NewPrettyReporter(out, cfg.color), nil
	case m.FormatJSON:
		return NewJSONReporter(out), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// PrettyReporter prints a banner, the run metadata and a results table.
type PrettyReporter struct {
	out   io.Writer
	color bool

	bold lipgloss.Style
	pass lipgloss.Style
	fail lipgloss.Style
}

// NewPrettyReporter creates a PrettyReporter. Styles are only applied when
// color is true.
func NewPrettyReporter(out io.Writer, color bool) *PrettyReporter {
	r := lipgloss.NewRenderer(out)

	return &PrettyReporter{
		out:   out,
		color: color,
		bold:  r.NewStyle().Bold(true),
		pass:  r.NewStyle().Foreground(lipgloss.Color("10")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Report writes the human readable report.
func (p *PrettyReporter) Report(meta m.ReportMetadata, outcomes []m.Outcome) error {
	var b bytes.Buffer

	b.WriteString("\n")
	b.WriteString("  =============================\n")
	b.WriteString("  =====  AVL qual RESULTS  ====\n")
	b.WriteString("  =============================\n\n")
	b.WriteString("  %---------------------------%\n")
	fmt.Fprintf(&b, "   os release: %s\n", meta.OSRelease)
	fmt.Fprintf(&b, "   cros release: %s\n", meta.CrosRelease)
	fmt.Fprintf(&b, "   chip name: %s\n", meta.ChipName)
	fmt.Fprintf(&b, "   system info: \n%s\n", meta.SystemInfo)
	fmt.Fprintf(&b, "   bios info: \n%s\n", meta.BIOSInfo)
	b.WriteString("  %---------------------------%\n\n")

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Test", "Result"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	passed := 0

	for _, o := range outcomes {
		result := o.Conclusion.String()

		if o.Conclusion == m.Pass {
			passed++
			result = p.style(p.pass, result)
		} else {
			result = p.style(p.fail, result)
		}

		table.Append([]string{p.style(p.bold, " <+> "+o.Name+" test:"), result})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(outcomes)), fmt.Sprintf("%d passed", passed)})
	table.Render()

	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(&b, "\n - %s failure details:\n%v\n", o.Name, o.Err)
		}
	}

	b.WriteString("\n")

	_, err := p.out.Write(b.Bytes())

	return err
}

func (p *PrettyReporter) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}

	return s.Render(text)
}

// JSONReporter prints a machine readable report.
type JSONReporter struct {
	out io.Writer
}

// NewJSONReporter creates a JSONReporter.
func NewJSONReporter(out io.Writer) *JSONReporter {
	return &JSONReporter{out: out}
}

type jsonTest struct {
	Pass  bool    `json:"pass"`
	Error *string `json:"error"`
}

type jsonMetadata struct {
	OSRelease  string `json:"os_release"`
	ChipName   string `json:"chip_name"`
	SystemInfo string `json:"system_info"`
	BIOSInfo   string `json:"bios_info"`
}

type jsonReport struct {
	Pass     bool                `json:"pass"`
	Metadata jsonMetadata        `json:"metadata"`
	Tests    map[string]jsonTest `json:"tests"`
}

// Report writes the JSON report. Test names must be unique.
func (j *JSONReporter) Report(meta m.ReportMetadata, outcomes []m.Outcome) error {
	report := jsonReport{
		Pass: true,
		Metadata: jsonMetadata{
			OSRelease:  meta.OSRelease,
			ChipName:   meta.ChipName,
			SystemInfo: meta.SystemInfo,
			BIOSInfo:   meta.BIOSInfo,
		},
		Tests: make(map[string]jsonTest, len(outcomes)),
	}

	for _, o := range outcomes {
		if _, dup := report.Tests[o.Name]; dup {
			return fmt.Errorf("found multiple tests named %q", o.Name)
		}

		t := jsonTest{Pass: o.Conclusion == m.Pass}
		if o.Err != nil {
			msg := o.Err.Error()
			t.Error = &msg
		}

		report.Pass = report.Pass && t.Pass
		report.Tests[o.Name] = t
	}

	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return nil
}
