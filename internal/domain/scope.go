package domain

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mouse-blink/flashqual/internal/adapter"
	m "github.com/mouse-blink/flashqual/internal/model"
)

// frame is one level of the scope stack.
type frame struct {
	initial m.WriteProtectBits
	current m.WriteProtectBits
	// dirty forces a software toggle on restore: a range was protected or
	// the chip disagreed with a request, so current may not describe it.
	dirty bool
}

// scopeStack owns every frame derived from one root.
type scopeStack struct {
	live       *Liveness
	backend    adapter.Flashrom
	hw         adapter.HardwareWP
	canControl bool
	logger     *log.Logger
	frames     []*frame
	// fatal is set by the first failed restore. Every handle then reports
	// it and the stack is never unwound.
	fatal *FatalRestoreError
}

// Scope is a handle on one frame of a write protect stack. Only the handle
// of the top frame may change state, push or close; the others report
// ErrScopeBorrowed until their children are closed.
type Scope struct {
	st *scopeStack
	f  *frame
}

// FromHardware reads the current write protect state and makes it the root
// of a new stack. It fails with ErrRootScopeLive while live is held. The
// hardware line is only consulted when the backend can control it.
func FromHardware(live *Liveness, backend adapter.Flashrom, hw adapter.HardwareWP, logger *log.Logger) (*Scope, error) {
	if err := live.acquire(); err != nil {
		return nil, err
	}

	st := &scopeStack{
		live:       live,
		backend:    backend,
		hw:         hw,
		canControl: backend.CanControlHWWP() && hw != nil,
		logger:     logger,
	}

	bits, err := st.read()
	if err != nil {
		live.release()
		return nil, err
	}

	logger.Infof("Initial write protect state: %s", bits)

	f := &frame{initial: bits, current: bits}
	st.frames = append(st.frames, f)

	return &Scope{st: st, f: f}, nil
}

// Push derives a child scope whose initial state is the current state of s.
func (s *Scope) Push() (*Scope, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	f := &frame{initial: s.f.current, current: s.f.current}
	s.st.frames = append(s.st.frames, f)

	return &Scope{st: s.st, f: f}, nil
}

// SetSoftware protects or releases the whole chip and confirms the chip
// reports the requested state.
func (s *Scope) SetSoftware(enable bool) error {
	if err := s.check(); err != nil {
		return err
	}

	s.st.logger.Infof("set_sw request=%t, current=%t", enable, s.f.current.Software)

	if s.f.current.Software != enable || s.f.dirty {
		if err := s.st.backend.WPToggle(enable); err != nil {
			return fmt.Errorf("failed to set software write protect: %w", err)
		}

		s.f.current.Software = enable
		s.f.dirty = false
	}

	return s.verifySoftware(enable)
}

// SetRange protects r, or releases protection, and confirms the status.
func (s *Scope) SetRange(r m.Range, enable bool) error {
	if err := s.check(); err != nil {
		return err
	}

	s.st.logger.Infof("set_range request=%#x+%#x enable=%t", r.Start, r.Len, enable)

	if err := s.st.backend.WPRange(r, enable); err != nil {
		return fmt.Errorf("failed to set write protect range: %w", err)
	}

	s.f.current.Software = enable
	s.f.dirty = true

	return s.verifySoftware(enable)
}

// SetHardware asserts or releases hardware write protect. Targets without a
// controllable line ignore the request.
func (s *Scope) SetHardware(enable bool) error {
	if err := s.check(); err != nil {
		return err
	}

	if !s.st.canControl {
		s.st.logger.Debugf("set_hw request=%t ignored: hardware write protect not controllable", enable)
		return nil
	}

	s.st.logger.Infof("set_hw request=%t, current=%t", enable, s.f.current.Hardware)

	if s.f.current.Hardware != enable {
		if err := s.st.hw.Set(enable); err != nil {
			return fmt.Errorf("failed to set hardware write protect: %w", err)
		}
	}

	got, err := s.st.hw.Get()
	if err != nil {
		return fmt.Errorf("failed to read hardware write protect: %w", err)
	}

	s.f.current.Hardware = got

	if got != enable {
		return fmt.Errorf("hardware write protect is %t, expected %t", got, enable)
	}

	return nil
}

// Close restores the state s was created with and pops it. Software is
// restored before hardware, releasing hardware first when it would block
// the software change. A failed restore returns *FatalRestoreError and
// leaves s on the stack. The error is sticky: every later call on any
// scope of the stack returns it.
func (s *Scope) Close() error {
	if err := s.check(); err != nil {
		return err
	}

	if fatal := s.st.restore(s.f); fatal != nil {
		s.st.fatal = fatal
		return fatal
	}

	s.st.frames = s.st.frames[:len(s.st.frames)-1]

	if len(s.st.frames) == 0 {
		s.st.live.release()
		s.st.logger.Debugf("Root write protect scope released")
	}

	return nil
}

// MustClose closes s for use in defer. It panics with the restore error,
// and ignores a scope that was already closed.
func (s *Scope) MustClose() {
	if err := s.Close(); err != nil && !errors.Is(err, ErrScopeClosed) {
		panic(err)
	}
}

// Bits returns the state this scope established.
func (s *Scope) Bits() m.WriteProtectBits {
	return s.f.current
}

// Initial returns the state this scope restores on Close.
func (s *Scope) Initial() m.WriteProtectBits {
	return s.f.initial
}

// Depth is 0 for the root scope and grows by one per Push.
func (s *Scope) Depth() int {
	for i, f := range s.st.frames {
		if f == s.f {
			return i
		}
	}

	return -1
}

// CanControlHardware reports whether SetHardware has any effect.
func (s *Scope) CanControlHardware() bool {
	return s.st.canControl
}

// Top returns a handle on the innermost live scope of the stack s belongs
// to.
func (s *Scope) Top() (*Scope, error) {
	if s.Depth() < 0 {
		return nil, ErrScopeClosed
	}

	return &Scope{st: s.st, f: s.st.frames[len(s.st.frames)-1]}, nil
}

// unwindTo closes every frame above depth, innermost first, and returns how
// many were closed.
func (s *Scope) unwindTo(depth int) (int, error) {
	n := 0

	for len(s.st.frames) > depth+1 {
		top := &Scope{st: s.st, f: s.st.frames[len(s.st.frames)-1]}
		if err := top.Close(); err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}

// Fatal returns the restore failure that poisoned the stack, if any.
func (s *Scope) Fatal() *FatalRestoreError {
	return s.st.fatal
}

func (s *Scope) check() error {
	if s.st.fatal != nil {
		return s.st.fatal
	}

	depth := s.Depth()
	if depth < 0 {
		return ErrScopeClosed
	}

	if depth != len(s.st.frames)-1 {
		return ErrScopeBorrowed
	}

	return nil
}

func (s *Scope) verifySoftware(enable bool) error {
	ok, err := s.st.backend.WPStatus(enable)
	if err != nil {
		s.f.dirty = true
		return fmt.Errorf("failed to read software write protect status: %w", err)
	}

	if !ok {
		s.f.dirty = true
		return fmt.Errorf("software write protect did not change to %t", enable)
	}

	return nil
}

func (st *scopeStack) read() (m.WriteProtectBits, error) {
	var bits m.WriteProtectBits

	if st.canControl {
		hw, err := st.hw.Get()
		if err != nil {
			return bits, fmt.Errorf("failed to read hardware write protect: %w", err)
		}

		bits.Hardware = hw
	}

	sw, err := st.backend.WPStatus(true)
	if err != nil {
		return bits, fmt.Errorf("failed to read software write protect: %w", err)
	}

	bits.Software = sw

	return bits, nil
}

func (st *scopeStack) restore(f *frame) *FatalRestoreError {
	want := f.initial

	st.logger.Infof("Restoring write protect %s -> %s", f.current, want)

	if f.current.Software != want.Software || f.dirty {
		if st.canControl && f.current.Hardware {
			if err := st.setHardware(f, false); err != nil {
				return &FatalRestoreError{Step: "release hardware", Initial: want, Err: err}
			}
		}

		if err := st.backend.WPToggle(want.Software); err != nil {
			return &FatalRestoreError{Step: "software", Initial: want, Err: err}
		}

		ok, err := st.backend.WPStatus(want.Software)
		if err == nil && !ok {
			err = fmt.Errorf("chip reports software write protect is not %t", want.Software)
		}

		if err != nil {
			f.dirty = true
			return &FatalRestoreError{Step: "software", Initial: want, Err: err}
		}

		f.current.Software = want.Software
		f.dirty = false
	}

	if st.canControl {
		if err := st.setHardware(f, want.Hardware); err != nil {
			return &FatalRestoreError{Step: "hardware", Initial: want, Err: err}
		}
	}

	return nil
}

func (st *scopeStack) setHardware(f *frame, enable bool) error {
	if f.current.Hardware != enable {
		if err := st.hw.Set(enable); err != nil {
			return err
		}
	}

	got, err := st.hw.Get()
	if err != nil {
		return err
	}

	f.current.Hardware = got

	if got != enable {
		return fmt.Errorf("hardware write protect is %t, expected %t", got, enable)
	}

	return nil
}
