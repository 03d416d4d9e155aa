package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/flashqual/internal/adapter"
	m "github.com/mouse-blink/flashqual/internal/model"
)

// Reporter renders the results of a run.
type Reporter interface {
	Report(meta m.ReportMetadata, outcomes []m.Outcome) error
}

// RunArgs configures Workflow.Run.
type RunArgs struct {
	Env EnvArgs
	// Names restricts the run to these case names, matched case
	// insensitively. Empty runs every case.
	Names []string
	// Cancel is polled between cases.
	Cancel *atomic.Bool
	// SkipPowerPrompt skips the AC power confirmation.
	SkipPowerPrompt bool
}

// RunResult is what a run produced.
type RunResult struct {
	Outcomes   []m.Outcome
	Metadata   m.ReportMetadata
	ReportPath m.Path
}

// Workflow runs a complete qualification session.
type Workflow interface {
	Run(args RunArgs) (RunResult, error)
}

type workflow struct {
	prompter adapter.Prompter
	probe    adapter.SystemProbe
	store    adapter.ReportStore
	reporter Reporter
	cases    []Case
	logger   *log.Logger
}

// WorkflowOption configures a Workflow.
type WorkflowOption func(*workflow)

// WithCases replaces the qualification suite.
func WithCases(cases []Case) WorkflowOption {
	return func(w *workflow) {
		w.cases = cases
	}
}

// NewWorkflow creates a Workflow running QualificationCases.
func NewWorkflow(
	prompter adapter.Prompter,
	probe adapter.SystemProbe,
	store adapter.ReportStore,
	reporter Reporter,
	logger *log.Logger,
	opts ...WorkflowOption,
) Workflow {
	w := &workflow{
		prompter: prompter,
		probe:    probe,
		store:    store,
		reporter: reporter,
		cases:    QualificationCases(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run warns about AC power, runs the selected cases, collects system
// metadata and renders the report. The error is an internal failure, never
// a test result.
func (w *workflow) Run(args RunArgs) (RunResult, error) {
	var result RunResult

	if !args.SkipPowerPrompt {
		w.logger.Info("*****************************")
		w.logger.Info("AC power *must be* connected!")
		w.logger.Info("*****************************")

		if err := w.prompter.Confirm("Press any key to continue..."); err != nil {
			return result, fmt.Errorf("aborted at AC power prompt: %w", err)
		}
	}

	var filter map[string]struct{}
	if len(args.Names) > 0 {
		filter = make(map[string]struct{}, len(args.Names))
		for _, name := range args.Names {
			filter[strings.ToLower(name)] = struct{}{}
		}
	}

	cases := FilterCases(w.cases, filter)

	chipName := "<Unknown chip>"
	if vendor, name, err := args.Env.Backend.Name(); err == nil {
		chipName = fmt.Sprintf("vendor=%q name=%q", vendor, name)
	}

	envArgs := args.Env
	envArgs.Probe = w.probe
	envArgs.Store = w.store

	outcomes, runErr := RunAll(SequenceArgs{Env: envArgs, Cases: cases, Cancel: args.Cancel})
	if runErr != nil && outcomes == nil {
		return result, runErr
	}

	leftover := make([]string, 0, len(filter))
	for name := range filter {
		leftover = append(leftover, name)
	}

	sort.Strings(leftover)

	for _, name := range leftover {
		w.logger.Warnf("No test matches filter name %q", name)
	}

	result.Outcomes = outcomes
	result.Metadata = w.metadata(chipName)

	if err := w.reporter.Report(result.Metadata, outcomes); err != nil {
		return result, errors.Join(runErr, err)
	}

	path, err := w.store.SaveReport(args.Env.WorkDir, args.Env.Target, result.Metadata, outcomes)
	if err != nil {
		w.logger.Errorf("Failed to save report: %v", err)
	} else {
		result.ReportPath = path
		w.logger.Infof("Report saved to %s", path)
	}

	return result, runErr
}

// metadata probes the system concurrently; every probe falls back to a
// placeholder.
func (w *workflow) metadata(chipName string) m.ReportMetadata {
	meta := m.ReportMetadata{ChipName: chipName}

	var g errgroup.Group

	probe := func(dst *string, fallback string, fn func() (string, error)) {
		g.Go(func() error {
			value, err := fn()
			if err != nil {
				w.logger.Debugf("%s: %v", fallback, err)

				value = fallback
			}

			*dst = value

			return nil
		})
	}

	probe(&meta.OSRelease, "<Unknown OS>", w.probe.KernelRelease)
	probe(&meta.CrosRelease, "<Unknown or not a ChromeOS release>", w.probe.CrosRelease)
	probe(&meta.SystemInfo, "<Unknown System>", w.probe.SystemInfo)
	probe(&meta.BIOSInfo, "<Unknown BIOS>", w.probe.BIOSInfo)

	_ = g.Wait()

	return meta
}
