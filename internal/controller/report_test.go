package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/flashqual/internal/model"
)

func sampleMetadata() m.ReportMetadata {
	return m.ReportMetadata{
		ChipName:    `vendor="SST" name="SST25VF032B"`,
		OSRelease:   "6.6.0",
		CrosRelease: "<Unknown or not a ChromeOS release>",
		SystemInfo:  "Manufacturer: Google",
		BIOSInfo:    "Vendor: coreboot",
	}
}

func sampleOutcomes() []m.Outcome {
	return []m.Outcome{
		{Name: "Get_device_name", Conclusion: m.Pass},
		{Name: "Lock_top_quad", Conclusion: m.UnexpectedFail, Err: errors.New("section didn't lock")},
	}
}

func TestNewReporter_SelectsFormat(t *testing.T) {
	var buf bytes.Buffer

	pretty, err := NewReporter(&buf, m.FormatPretty)
	require.NoError(t, err)
	assert.IsType(t, &PrettyReporter{}, pretty)

	jsonReporter, err := NewReporter(&buf, m.FormatJSON)
	require.NoError(t, err)
	assert.IsType(t, &JSONReporter{}, jsonReporter)

	_, err = NewReporter(&buf, m.OutputFormat("xml"))
	assert.Error(t, err)
}

func TestPrettyReporter_Report(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrettyReporter(&buf, false).Report(sampleMetadata(), sampleOutcomes()))

	output := buf.String()
	for _, want := range []string{
		"=====  AVL qual RESULTS  ====",
		"os release: 6.6.0",
		`chip name: vendor="SST" name="SST25VF032B"`,
		"Manufacturer: Google",
		"Vendor: coreboot",
		"<+> Get_device_name test:",
		"<+> Lock_top_quad test:",
		"UnexpectedFail",
		"Total 2",
		"1 passed",
		"- Lock_top_quad failure details:",
		"section didn't lock",
	} {
		assert.Contains(t, output, want)
	}

	assert.NotContains(t, output, "Get_device_name failure details")
	assert.NotContains(t, output, "\x1b[", "colour disabled output must be plain")
}

func TestJSONReporter_Report(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewJSONReporter(&buf).Report(sampleMetadata(), sampleOutcomes()))

	var got struct {
		Pass     bool              `json:"pass"`
		Metadata map[string]string `json:"metadata"`
		Tests    map[string]struct {
			Pass  bool    `json:"pass"`
			Error *string `json:"error"`
		} `json:"tests"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.False(t, got.Pass)
	assert.Equal(t, "6.6.0", got.Metadata["os_release"])
	assert.Equal(t, "Vendor: coreboot", got.Metadata["bios_info"])
	assert.NotContains(t, got.Metadata, "cros_release")

	require.Len(t, got.Tests, 2)
	assert.True(t, got.Tests["Get_device_name"].Pass)
	assert.Nil(t, got.Tests["Get_device_name"].Error)
	assert.False(t, got.Tests["Lock_top_quad"].Pass)
	require.NotNil(t, got.Tests["Lock_top_quad"].Error)
	assert.Equal(t, "section didn't lock", *got.Tests["Lock_top_quad"].Error)

	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \""), "report is indented")
}

func TestJSONReporter_AllPass(t *testing.T) {
	var buf bytes.Buffer

	outcomes := []m.Outcome{{Name: "a", Conclusion: m.Pass}, {Name: "b", Conclusion: m.Pass}}
	require.NoError(t, NewJSONReporter(&buf).Report(sampleMetadata(), outcomes))
	assert.Contains(t, buf.String(), `"pass": true`)
}

func TestJSONReporter_DuplicateNames(t *testing.T) {
	var buf bytes.Buffer

	outcomes := []m.Outcome{{Name: "a", Conclusion: m.Pass}, {Name: "a", Conclusion: m.Pass}}
	err := NewJSONReporter(&buf).Report(sampleMetadata(), outcomes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `found multiple tests named "a"`)
	assert.Empty(t, buf.String())
}
