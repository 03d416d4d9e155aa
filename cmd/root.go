// Package cmd provides the root command and CLI setup for flashqual.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/mouse-blink/flashqual/internal/adapter"
	"github.com/mouse-blink/flashqual/internal/controller"
	"github.com/mouse-blink/flashqual/internal/domain"
	m "github.com/mouse-blink/flashqual/internal/model"
)

// Exit codes of the process. Test failures are reported, not signalled.
const (
	exitInternal     = 1
	exitUnknownState = 3
)

// Collaborators are package variables so tests can swap them.
var (
	runner      adapter.CommandRunner = adapter.NewLocalCommandRunner()
	reportStore adapter.ReportStore   = adapter.NewReportStore()
	liveness    *domain.Liveness      = domain.ProcessLiveness()
)

// workflow overrides the workflow built from the flags when non nil.
var workflow domain.Workflow

var isTTY = func() bool { return controller.IsTTY(os.Stdout) }

var newUI = controller.NewUI

var (
	backendFlag      string
	debugFlag        bool
	logFileFlag      string
	outputFormatFlag string
	printLayoutFlag  bool
	hwwpFlag         string
	serialPortFlag   string
	workDirFlag      string
	yesFlag          bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flashqual [flags] <flashrom-binary|lib|sim> <target> [test names...]",
		Short: "Flash chip and programmer qualification tester",
		Long: `flashqual runs the AVL qualification suite against a flash chip through
flashrom and reports which write protect and programming guarantees hold.

The first argument selects the backend: a path to a flashrom binary, "lib"
for the libflashrom binding or "sim" for an in-memory chip. The chip is
restored to the image read at start before the command exits.

Targets: host, ec, servo, dediprog, sim.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQualification(cmd, args[0], args[1], args[2:])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&backendFlag, "backend", "", "force the backend (cmd, lib or sim) instead of inferring it from the first argument")
	flags.BoolVarP(&debugFlag, "debug", "d", false, "write debug logging")
	flags.StringVarP(&logFileFlag, "log-file", "o", "", "write logs to this file instead of stderr")
	cmd.PersistentFlags().StringVarP(&outputFormatFlag, "output-format", "f", string(m.FormatPretty), "report format: pretty or json")
	flags.BoolVarP(&printLayoutFlag, "print-layout", "l", false, "log the generated layout file")
	flags.StringVar(&hwwpFlag, "hw-wp", string(m.HWWPAuto), "hardware write protect driver: auto, crossystem, dut-control, serial or none")
	flags.StringVar(&serialPortFlag, "serial-port", "", "serial device whose RTS line drives hardware write protect")
	cmd.PersistentFlags().StringVar(&workDirFlag, "workdir", os.TempDir(), "directory for the golden image, reports and other session artifacts")
	flags.BoolVarP(&yesFlag, "yes", "y", false, "do not ask for confirmation that AC power is connected")

	cmd.AddCommand(newLayoutCmd(), newListCmd(), newViewCmd())

	return cmd
}

func runQualification(cmd *cobra.Command, binary, targetArg string, names []string) error {
	target, err := m.ParseTarget(targetArg)
	if err != nil {
		return err
	}

	kind := m.InferBackend(binary)
	if backendFlag != "" {
		if kind, err = m.ParseBackend(backendFlag); err != nil {
			return err
		}
	}

	format, err := m.ParseOutputFormat(outputFormatFlag)
	if err != nil {
		return err
	}

	hwKind, err := m.ParseHWWPKind(hwwpFlag)
	if err != nil {
		return err
	}

	logger, logCloser, err := adapter.OpenLogger(logFileFlag, cmd.ErrOrStderr(), debugFlag)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	ui, err := newUI(cmd, format, isTTY())
	if err != nil {
		return err
	}

	backend, err := adapter.NewFlashrom(adapter.BackendConfig{
		Kind:   kind,
		Binary: binary,
		Target: target,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer closeIfCloser(backend, logger)

	hw, err := adapter.NewHardwareWP(adapter.HardwareWPConfig{
		Kind:       hwKind,
		Target:     target,
		Backend:    backend,
		SerialPort: serialPortFlag,
		Runner:     runner,
		Prompter:   ui,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	defer closeIfCloser(hw, logger)

	if hwKind == m.HWWPDutControl || hwKind == m.HWWPSerial {
		backend = adapter.WithHardwareControl(backend)
	}

	workDir, err := filepath.Abs(workDirFlag)
	if err != nil {
		return fmt.Errorf("invalid work directory: %w", err)
	}

	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return fmt.Errorf("failed to create work directory: %w", err)
	}

	var cancelled atomic.Bool

	stop := notifyInterrupt(&cancelled, logger)
	defer stop()

	wf := workflow
	if wf == nil {
		probe := adapter.NewLocalSystemProbe(runner, "/", logger)
		wf = domain.NewWorkflow(ui, probe, reportStore, ui, logger)
	}

	_, err = wf.Run(domain.RunArgs{
		Env: domain.EnvArgs{
			Liveness:    liveness,
			Backend:     backend,
			HW:          hw,
			Target:      target,
			WorkDir:     m.Path(workDir),
			PrintLayout: printLayoutFlag,
			Logger:      logger,
		},
		Names:           names,
		Cancel:          &cancelled,
		SkipPowerPrompt: yesFlag,
	})

	return err
}

// notifyInterrupt sets cancelled on the first SIGINT or SIGTERM. Later
// signals are logged and ignored so the chip restore always completes.
func notifyInterrupt(cancelled *atomic.Bool, logger *log.Logger) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, unix.SIGINT, unix.SIGTERM)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for sig := range sigs {
			if cancelled.CompareAndSwap(false, true) {
				logger.Warnf("Received %v, finishing the current test before restoring the chip", sig)
				continue
			}

			logger.Warnf("Received %v again; ignoring it until the chip is restored", sig)
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(sigs)
		<-done
	}
}

func closeIfCloser(v any, logger *log.Logger) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}

	if err := c.Close(); err != nil {
		logger.Errorf("Failed to close %T: %v", v, err)
	}
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	var fatal *domain.FatalRestoreError
	if errors.As(err, &fatal) {
		return exitUnknownState
	}

	return exitInternal
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}
