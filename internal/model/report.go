package model

import (
	"fmt"
	"strings"
)

// Conclusion is the reconciled result of a test case.
type Conclusion int

// Available Conclusion values.
const (
	Pass Conclusion = iota
	Fail
	UnexpectedPass
	UnexpectedFail
)

func (c Conclusion) String() string {
	switch c {
	case Pass:
		return "Pass"
	case Fail:
		return "Fail"
	case UnexpectedPass:
		return "UnexpectedPass"
	case UnexpectedFail:
		return "UnexpectedFail"
	default:
		return fmt.Sprintf("Conclusion(%d)", int(c))
	}
}

// ParseConclusion is the inverse of Conclusion.String.
func ParseConclusion(s string) (Conclusion, error) {
	for _, c := range []Conclusion{Pass, Fail, UnexpectedPass, UnexpectedFail} {
		if c.String() == s {
			return c, nil
		}
	}

	return Pass, fmt.Errorf("unknown conclusion %q", s)
}

// Outcome is the record produced for each executed test case.
type Outcome struct {
	Name       string
	Conclusion Conclusion
	Err        error // failure details, only kept for unexpected failures
}

// ReportMetadata describes the machine and chip a run was performed on.
type ReportMetadata struct {
	ChipName    string
	OSRelease   string
	CrosRelease string
	SystemInfo  string
	BIOSInfo    string
}

// OutputFormat selects how results are rendered.
type OutputFormat string

// Available output formats.
const (
	FormatPretty OutputFormat = "pretty"
	FormatJSON   OutputFormat = "json"
)

// ParseOutputFormat converts a case-insensitive format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch {
	case strings.EqualFold(s, string(FormatPretty)):
		return FormatPretty, nil
	case strings.EqualFold(s, string(FormatJSON)):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want pretty or json)", s)
	}
}
