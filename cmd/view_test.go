package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/flashqual/internal/adapter"
	adaptermocks "github.com/mouse-blink/flashqual/internal/adapter/mocks"
	"github.com/mouse-blink/flashqual/internal/controller"
	controllermocks "github.com/mouse-blink/flashqual/internal/controller/mocks"
	m "github.com/mouse-blink/flashqual/internal/model"
)

func withReportStore(t *testing.T, store adapter.ReportStore) {
	t.Helper()

	original := reportStore
	reportStore = store

	t.Cleanup(func() { reportStore = original })
}

func withUI(t *testing.T, ui controller.UI) {
	t.Helper()

	original := newUI
	newUI = func(*cobra.Command, m.OutputFormat, bool) (controller.UI, error) { return ui, nil }

	t.Cleanup(func() { newUI = original })
}

func storedReports() []adapter.StoredReport {
	return []adapter.StoredReport{
		{
			Path:     "/tmp/flashqual_reports/old.yaml",
			Target:   m.TargetHost,
			Finished: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Metadata: m.ReportMetadata{ChipName: "old chip"},
			Outcomes: []m.Outcome{{Name: "Get_device_name", Conclusion: m.Pass}},
		},
		{
			Path:     "/tmp/flashqual_reports/new.yaml",
			Target:   m.TargetSim,
			Finished: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			Metadata: m.ReportMetadata{ChipName: "new chip"},
			Outcomes: []m.Outcome{{Name: "Lock_top_quad", Conclusion: m.UnexpectedFail, Err: errors.New("did not lock")}},
		},
	}
}

func TestViewCmd_ShowsLatestReport(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	store.EXPECT().LoadReports(m.Path("/work")).Return(storedReports(), nil)
	withReportStore(t, store)

	cmd, out, _ := newTestRootCmd(t, nil)
	cmd.SetArgs([]string{"view", "--workdir", "/work"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "new chip")
	assert.Contains(t, out.String(), "did not lock")
	assert.NotContains(t, out.String(), "old chip")
}

func TestViewCmd_AllReports(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	store.EXPECT().LoadReports(m.Path("/work")).Return(storedReports(), nil)
	withReportStore(t, store)

	cmd, out, _ := newTestRootCmd(t, nil)
	cmd.SetArgs([]string{"view", "--all", "--workdir", "/work", "-f", "json"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), `"chip_name": "old chip"`)
	assert.Contains(t, out.String(), `"chip_name": "new chip"`)
	assert.NotContains(t, out.String(), "# /tmp", "json output carries no headings")
}

func TestViewCmd_NoReports(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	store.EXPECT().LoadReports(m.Path("/work")).Return(nil, nil)
	withReportStore(t, store)

	cmd, _, _ := newTestRootCmd(t, nil)
	cmd.SetArgs([]string{"view", "--workdir", "/work"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no reports found")
}

func TestViewCmd_AllReportsOldestFirst(t *testing.T) {
	reports := storedReports()

	store := adaptermocks.NewMockReportStore(t)
	store.EXPECT().LoadReports(m.Path("/work")).Return(reports, nil)
	withReportStore(t, store)

	var shown []string

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Report(mock.Anything, mock.Anything).
		Run(func(meta m.ReportMetadata, _ []m.Outcome) { shown = append(shown, meta.ChipName) }).
		Return(nil).Twice()
	withUI(t, ui)

	cmd, out, _ := newTestRootCmd(t, nil)
	cmd.SetArgs([]string{"view", "-a", "--workdir", "/work"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, []string{"old chip", "new chip"}, shown)
	assert.Contains(t, out.String(), "# /tmp/flashqual_reports/old.yaml on host finished 2026-01-01 00:00:00 UTC")
	assert.Contains(t, out.String(), "# /tmp/flashqual_reports/new.yaml on sim finished 2026-02-01 00:00:00 UTC")
}

func TestViewCmd_ReportErrorStops(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	store.EXPECT().LoadReports(mock.Anything).Return(storedReports(), nil)
	withReportStore(t, store)

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Report(mock.Anything, mock.Anything).Return(errors.New("broken pipe")).Once()
	withUI(t, ui)

	cmd, _, _ := newTestRootCmd(t, nil)
	cmd.SetArgs([]string{"view", "--all", "--workdir", "/work"})
	assert.EqualError(t, cmd.Execute(), "broken pipe")
}
