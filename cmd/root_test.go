package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/mouse-blink/flashqual/internal/adapter"
	adaptermocks "github.com/mouse-blink/flashqual/internal/adapter/mocks"
	"github.com/mouse-blink/flashqual/internal/domain"
	domainmocks "github.com/mouse-blink/flashqual/internal/domain/mocks"
	m "github.com/mouse-blink/flashqual/internal/model"
)

// newTestRootCmd returns a root command writing to buffers, with the
// terminal detection and workflow overridden for the test.
func newTestRootCmd(t *testing.T, wf domain.Workflow) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	originalWorkflow := workflow
	originalTTY := isTTY
	workflow = wf
	isTTY = func() bool { return false }

	t.Cleanup(func() {
		workflow = originalWorkflow
		isTTY = originalTTY
	})

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))

	return cmd, &out, &errOut
}

func TestRootCmd_RunsWorkflowWithSimBackend(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _, _ := newTestRootCmd(t, mockWorkflow)
	dir := t.TempDir()

	mockWorkflow.On("Run", mock.MatchedBy(func(args domain.RunArgs) bool {
		_, isSim := args.Env.Backend.(*adapter.SimChip)

		return isSim &&
			args.Env.Target == m.TargetSim &&
			args.Env.WorkDir == m.Path(dir) &&
			args.Env.Liveness == liveness &&
			args.Env.HW != nil &&
			args.Env.Logger != nil &&
			args.Cancel != nil && !args.Cancel.Load() &&
			args.SkipPowerPrompt &&
			assert.ObjectsAreEqual([]string{"Erase_and_Write", "lock_top_quad"}, args.Names)
	})).Return(domain.RunResult{}, nil)

	cmd.SetArgs([]string{"--yes", "--workdir", dir, "sim", "sim", "Erase_and_Write", "lock_top_quad"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_BackendFlagOverridesBinary(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _, _ := newTestRootCmd(t, mockWorkflow)

	mockWorkflow.On("Run", mock.MatchedBy(func(args domain.RunArgs) bool {
		_, isSim := args.Env.Backend.(*adapter.SimChip)
		return isSim && args.Env.Target == m.TargetHost && !args.SkipPowerPrompt
	})).Return(domain.RunResult{}, nil)

	cmd.SetArgs([]string{"--backend", "sim", "--hw-wp", "none", "--workdir", t.TempDir(), "/usr/sbin/flashrom", "host"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_ExternalHardwareDriverMarksBackendControllable(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _, _ := newTestRootCmd(t, mockWorkflow)

	mockWorkflow.On("Run", mock.MatchedBy(func(args domain.RunArgs) bool {
		_, dut := args.Env.HW.(*adapter.DutControlWP)
		return dut && args.Env.Target == m.TargetServo && args.Env.Backend.CanControlHWWP()
	})).Return(domain.RunResult{}, nil)

	cmd.SetArgs([]string{"--hw-wp", "dut-control", "--workdir", t.TempDir(), "sim", "servo"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing target", args: []string{"sim"}, want: "requires at least 2 arg(s)"},
		{name: "unknown target", args: []string{"sim", "toaster"}, want: "toaster"},
		{name: "unknown format", args: []string{"-f", "xml", "sim", "sim"}, want: "unknown output format"},
		{name: "unknown backend", args: []string{"--backend", "jtag", "sim", "sim"}, want: "unknown backend"},
		{name: "unknown hw driver", args: []string{"--hw-wp", "gpio", "sim", "sim"}, want: "gpio"},
		{name: "serial without port", args: []string{"--hw-wp", "serial", "sim", "servo"}, want: "--serial-port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)
			cmd, _, _ := newTestRootCmd(t, mockWorkflow)

			cmd.SetArgs(append([]string{"--workdir", t.TempDir()}, tt.args...))
			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			mockWorkflow.AssertNotCalled(t, "Run", mock.Anything)
		})
	}
}

func TestRootCmd_WorkflowErrorIsReturned(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _, _ := newTestRootCmd(t, mockWorkflow)

	fatal := &domain.FatalRestoreError{Step: "restore hardware write protect", Err: errors.New("line stuck")}
	mockWorkflow.EXPECT().Run(mock.Anything).Return(domain.RunResult{}, fatal)

	cmd.SetArgs([]string{"--workdir", t.TempDir(), "-y", "sim", "sim"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, exitUnknownState, exitCode(err))
}

func TestRootCmd_EndToEndOnSimulatedChip(t *testing.T) {
	originalRunner := runner
	originalStore := reportStore

	probeRunner := adaptermocks.NewMockCommandRunner(t)
	probeRunner.On("Run", "/usr/sbin/dmidecode", "-q", mock.Anything).
		Return(nil, nil, errors.New("dmidecode not installed")).Maybe()

	runner = probeRunner
	reportStore = adapter.NewReportStore()

	t.Cleanup(func() {
		runner = originalRunner
		reportStore = originalStore
	})

	cmd, out, logs := newTestRootCmd(t, nil)
	dir := t.TempDir()

	cmd.SetArgs([]string{
		"-y", "-f", "json", "--workdir", dir, "sim", "sim",
		"Get_device_name", "erase_and_write", "Fail_to_verify", "HWWP_Locks_SWWP",
		"Lock_top_quad", "Lock_bottom_half", "No_such_test",
	})
	require.NoError(t, cmd.Execute(), logs.String())

	var report struct {
		Pass  bool `json:"pass"`
		Tests map[string]struct {
			Pass  bool    `json:"pass"`
			Error *string `json:"error"`
		} `json:"tests"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &report), out.String())

	assert.True(t, report.Pass, out.String())
	assert.Len(t, report.Tests, 6)
	assert.Contains(t, logs.String(), `No test matches filter name "no_such_test"`)
	assert.False(t, liveness.Held(), "root scope must be released")
	assert.Same(t, domain.ProcessLiveness(), liveness)

	manifest, err := adapter.NewReportStore().LoadManifest(m.Path(dir))
	require.NoError(t, err)
	assert.True(t, manifest.Completed)

	reports, err := reportStore.LoadReports(m.Path(dir))
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, m.TargetSim, reports[0].Target)
}

func TestNotifyInterrupt_FirstSignalCancels(t *testing.T) {
	var cancelled atomic.Bool

	logger := log.New(&bytes.Buffer{})
	stop := notifyInterrupt(&cancelled, logger)

	require.NoError(t, unix.Kill(os.Getpid(), unix.SIGINT))
	require.Eventually(t, cancelled.Load, 2*time.Second, 10*time.Millisecond)

	// A second signal is ignored rather than killing the process.
	require.NoError(t, unix.Kill(os.Getpid(), unix.SIGINT))
	time.Sleep(50 * time.Millisecond)
	assert.True(t, cancelled.Load())

	stop()
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitInternal, exitCode(errors.New("boom")))
	assert.Equal(t, exitUnknownState, exitCode(fmt.Errorf("wrapped: %w", &domain.FatalRestoreError{Step: "x", Err: errors.New("y")})))
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.True(t, strings.HasPrefix(cmd.Use, "flashqual"))

	for _, name := range []string{"backend", "debug", "log-file", "print-layout", "hw-wp", "serial-port", "yes"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}

	for _, name := range []string{"output-format", "workdir"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.ElementsMatch(t, []string{"layout", "list", "view"}, names)
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") != "" {
		originalRootCmd := rootCmd
		rootCmd = &cobra.Command{
			Use:           "test",
			SilenceErrors: true,
			RunE: func(_ *cobra.Command, _ []string) error {
				if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "fatal" {
					return &domain.FatalRestoreError{Step: "restore", Err: errors.New("stuck")}
				}

				return errors.New("command failed")
			},
		}
		defer func() { rootCmd = originalRootCmd }()

		Execute()

		return
	}

	for mode, want := range map[string]int{"internal": exitInternal, "fatal": exitUnknownState} {
		cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
		cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL="+mode)
		output, err := cmd.CombinedOutput()

		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr, "mode %s", mode)
		assert.Equal(t, want, exitErr.ExitCode(), "mode %s", mode)
		assert.Contains(t, string(output), "Error:", "mode %s", mode)
	}
}
