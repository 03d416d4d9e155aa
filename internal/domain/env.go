package domain

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mouse-blink/flashqual/internal/adapter"
	m "github.com/mouse-blink/flashqual/internal/model"
)

// Artifact names inside the work directory.
const (
	GoldenFileName = "flashrom_tester_golden.bin"
	RandomFileName = "random_content.bin"
	LayoutFileName = "layout.file"
)

// EnvArgs configures NewEnv.
type EnvArgs struct {
	Liveness    *Liveness
	Backend     adapter.Flashrom
	HW          adapter.HardwareWP
	Probe       adapter.SystemProbe
	Store       adapter.ReportStore
	Target      m.FlashTarget
	WorkDir     m.Path
	PrintLayout bool
	Flags       *m.Flags // nil means m.DefaultFlags
	Logger      *log.Logger
	Now         func() time.Time
}

// Env is one qualification session on one chip. It holds the root write
// protect scope and the golden image every case must leave intact.
type Env struct {
	backend adapter.Flashrom
	probe   adapter.SystemProbe
	store   adapter.ReportStore
	target  m.FlashTarget
	layout  Layout
	root    *Scope
	logger  *log.Logger

	workDir    m.Path
	golden     m.Path
	randomData m.Path
	layoutFile m.Path
	manifest   adapter.SessionManifest
	closed     bool
}

// NewEnv sizes the chip, takes the root write protect scope, writes the
// layout file, stashes and verifies the golden image and generates random
// probe data.
func NewEnv(args EnvArgs) (*Env, error) {
	now := args.Now
	if now == nil {
		now = time.Now
	}

	size, err := args.Backend.Size()
	if err != nil {
		return nil, fmt.Errorf("failed to get chip size: %w", err)
	}

	layout, err := PlanLayout(size)
	if err != nil {
		return nil, err
	}

	root, err := FromHardware(args.Liveness, args.Backend, args.HW, args.Logger)
	if err != nil {
		return nil, err
	}

	e := &Env{
		backend:    args.Backend,
		probe:      args.Probe,
		store:      args.Store,
		target:     args.Target,
		layout:     layout,
		root:       root,
		logger:     args.Logger,
		workDir:    args.WorkDir,
		golden:     m.Path(filepath.Join(string(args.WorkDir), GoldenFileName)),
		randomData: m.Path(filepath.Join(string(args.WorkDir), RandomFileName)),
		layoutFile: m.Path(filepath.Join(string(args.WorkDir), LayoutFileName)),
	}

	if err := e.setup(args, size, now()); err != nil {
		if closeErr := root.Close(); closeErr != nil {
			return nil, errors.Join(err, closeErr)
		}

		return nil, err
	}

	return e, nil
}

func (e *Env) setup(args EnvArgs, size int64, started time.Time) error {
	var layoutText bytes.Buffer
	if _, err := e.layout.WriteTo(&layoutText); err != nil {
		return fmt.Errorf("failed to render layout: %w", err)
	}

	if err := os.WriteFile(string(e.layoutFile), layoutText.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}

	if args.PrintLayout {
		e.logger.Infof("Layout file %s:\n%s", e.layoutFile, layoutText.String())
	}

	flags := m.DefaultFlags()
	if args.Flags != nil {
		flags = *args.Flags
	}

	e.logger.Infof("Set flags: %s", flags)
	e.backend.SetFlags(flags)

	if err := e.preserveUnfinished(started); err != nil {
		return err
	}

	e.logger.Info("Stashing golden image for verification/recovery on completion")

	if err := e.backend.ReadIntoFile(e.golden); err != nil {
		return fmt.Errorf("failed to read golden image: %w", err)
	}

	if err := e.backend.VerifyFromFile(e.golden); err != nil {
		return fmt.Errorf("golden image does not verify against the chip: %w", err)
	}

	e.logger.Info("Generating random flash-sized data")

	if err := adapter.WriteRandomFile(e.randomData, size); err != nil {
		return err
	}

	if e.store == nil {
		return nil
	}

	sum, err := adapter.FileSHA256(e.golden)
	if err != nil {
		return err
	}

	e.manifest = adapter.SessionManifest{
		Target:       string(e.target),
		Size:         size,
		Golden:       e.golden,
		GoldenSHA256: sum,
		Layout:       e.layoutFile,
		RandomData:   e.randomData,
		StartedAt:    started.UTC(),
	}

	return e.store.SaveManifest(e.workDir, e.manifest)
}

// preserveUnfinished moves the golden image of an interrupted session aside
// so it is not replaced by a possibly modified chip.
func (e *Env) preserveUnfinished(now time.Time) error {
	if e.store == nil {
		return nil
	}

	prev, err := e.store.LoadManifest(e.workDir)
	if err != nil {
		if adapter.IsNotExist(err) {
			return nil
		}

		e.logger.Warnf("Ignoring unreadable session manifest: %v", err)

		return nil
	}

	if prev.Completed {
		return nil
	}

	kept, err := adapter.PreserveFile(prev.Golden, now)
	if err != nil {
		return err
	}

	if kept != "" {
		e.logger.Warnf("Previous session started %s did not finish; its golden image was kept as %s",
			prev.StartedAt.Format(time.RFC3339), kept)
	}

	return nil
}

// Target returns the chip the session addresses.
func (e *Env) Target() m.FlashTarget {
	return e.target
}

// Backend returns the flash backend.
func (e *Env) Backend() adapter.Flashrom {
	return e.backend
}

// Probe returns the system probe, which may be nil.
func (e *Env) Probe() adapter.SystemProbe {
	return e.probe
}

// Layout returns the chip partition.
func (e *Env) Layout() Layout {
	return e.layout
}

// LayoutFile returns the path of the rendered layout.
func (e *Env) LayoutFile() m.Path {
	return e.layoutFile
}

// RandomDataFile returns the path of the chip-sized random data.
func (e *Env) RandomDataFile() m.Path {
	return e.randomData
}

// WorkDir returns the directory holding the session artifacts.
func (e *Env) WorkDir() m.Path {
	return e.workDir
}

// WP returns the innermost live write protect scope. Inside RunTest it is
// the scope created for the running case.
func (e *Env) WP() *Scope {
	top, err := e.root.Top()
	if err != nil {
		return e.root
	}

	return top
}

// IsGolden reports whether the chip still holds the golden image.
func (e *Env) IsGolden() bool {
	if err := e.backend.VerifyFromFile(e.golden); err != nil {
		e.logger.Debugf("Chip is not golden: %v", err)
		return false
	}

	return true
}

// EnsureGolden releases both write protects and writes the golden image
// back. Write protect returns to its previous state afterwards.
func (e *Env) EnsureGolden() error {
	s, err := e.WP().Push()
	if err != nil {
		return err
	}

	writeErr := func() error {
		if err := s.SetHardware(false); err != nil {
			return err
		}

		if err := s.SetSoftware(false); err != nil {
			return err
		}

		if err := e.backend.WriteFromFile(e.golden); err != nil {
			return fmt.Errorf("failed to write golden image: %w", err)
		}

		return nil
	}()

	if err := s.Close(); err != nil {
		return errors.Join(writeErr, err)
	}

	return writeErr
}

// Erase erases the whole chip.
func (e *Env) Erase() error {
	return e.backend.Erase()
}

// Verify compares the chip with the file at path.
func (e *Env) Verify(path m.Path) error {
	return e.backend.VerifyFromFile(path)
}

// RunTest runs c inside a child write protect scope that is restored when
// the case returns. A panicking case is reported as *CasePanicError and
// scopes the case left open are closed and reported as ErrLeakedScope. A
// failed write protect restore, whether returned, swallowed or raised by the
// case, panics with the *FatalRestoreError and is never recovered here.
func (e *Env) RunTest(c Case) (err error) {
	name := c.Name()
	e.logger.Infof("Beginning test: %s", name)

	depth := e.WP().Depth()

	if _, err := e.WP().Push(); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			var fatal *FatalRestoreError
			if rErr, ok := r.(error); ok && errors.As(rErr, &fatal) {
				panic(r)
			}

			e.logger.Errorf("Test %s panicked: %v", name, r)
			err = &CasePanicError{Case: name, Value: r, Stack: debug.Stack()}
		}

		if fatal := e.root.Fatal(); fatal != nil {
			e.logger.Errorf("Test %s could not restore write protect: %v", name, fatal)
			panic(fatal)
		}

		leaked := len(e.root.st.frames) - depth - 2

		unwound, unwindErr := e.root.unwindTo(depth)
		if unwindErr != nil {
			panic(unwindErr)
		}

		if leaked > 0 {
			e.logger.Warnf("Test %s left %d write protect scopes open", name, leaked)
			err = errors.Join(err, fmt.Errorf("%w: %d", ErrLeakedScope, leaked))
		}

		e.logger.Debugf("Closed %d write protect scopes after %s", unwound, name)
		e.logger.Infof("Completed test: %s; result %v", name, resultString(err))
	}()

	return c.Run(e)
}

// Close restores the golden image if a case left the chip modified and
// releases the root scope. A golden restore failure is only logged; a
// *FatalRestoreError from the root scope is returned.
func (e *Env) Close() error {
	if e.closed {
		return nil
	}

	e.logger.Info("Verifying flash remains unmodified")

	golden := e.IsGolden()
	if !golden {
		e.logger.Warn("ROM seems to be in a different state at finish; restoring original")

		if err := e.EnsureGolden(); err != nil {
			var fatal *FatalRestoreError
			if errors.As(err, &fatal) {
				return fatal
			}

			e.logger.Errorf("Failed to write back golden image: %v", err)
		} else {
			golden = e.IsGolden()
		}
	}

	if err := e.root.Close(); err != nil {
		return err
	}

	e.closed = true

	if e.store != nil && golden {
		e.manifest.Completed = true
		if err := e.store.SaveManifest(e.workDir, e.manifest); err != nil {
			e.logger.Errorf("Failed to mark session complete: %v", err)
		}
	}

	return nil
}

func resultString(err error) string {
	if err == nil {
		return "Ok"
	}

	return "Err(" + err.Error() + ")"
}
