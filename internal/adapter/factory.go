package adapter

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	m "github.com/mouse-blink/flashqual/internal/model"
)

// DefaultSimSize is the size of the simulated chip, the SST25VF032B the
// dummy programmer emulates.
const DefaultSimSize = 4 << 20

// BackendConfig selects and configures a flash backend.
type BackendConfig struct {
	Kind    m.Backend
	Binary  string // flashrom binary for the cmd backend
	Target  m.FlashTarget
	Logger  *log.Logger
	SimSize int64
}

// NewFlashrom creates the backend described by cfg. Backends that hold
// resources also implement io.Closer.
func NewFlashrom(cfg BackendConfig) (Flashrom, error) {
	switch cfg.Kind {
	case m.BackendCmd:
		return NewFlashromCmd(cfg.Binary, cfg.Target, WithCmdLogger(cfg.Logger)), nil
	case m.BackendLib:
		lib, err := NewFlashromLib(cfg.Target, cfg.Logger)
		if err != nil {
			return nil, err
		}

		return lib, nil
	case m.BackendSim:
		size := cfg.SimSize
		if size == 0 {
			size = DefaultSimSize
		}

		return NewSimChip(size, WithSimHardwareControl(cfg.Target.CanControlHWWP())), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Kind)
	}
}

// HardwareWPConfig selects and configures a hardware write protect line.
type HardwareWPConfig struct {
	Kind       m.HWWPKind
	Target     m.FlashTarget
	Backend    Flashrom
	SerialPort string
	Runner     CommandRunner
	Prompter   Prompter
	Logger     *log.Logger
}

// NewHardwareWP creates the line described by cfg. HWWPAuto uses the
// simulated chip's own line, crossystem for host and ec and no line
// otherwise.
func NewHardwareWP(cfg HardwareWPConfig) (HardwareWP, error) {
	kind := cfg.Kind
	if kind == m.HWWPAuto || kind == "" {
		if sim, ok := cfg.Backend.(*SimChip); ok {
			return sim.HardwareLine(), nil
		}

		kind = autoHWWPKind(cfg.Target)
	}

	switch kind {
	case m.HWWPCrossystem:
		return NewCrossystemWP(cfg.Runner, cfg.Prompter, cfg.Logger, 0), nil
	case m.HWWPDutControl:
		return NewDutControlWP(cfg.Runner), nil
	case m.HWWPSerial:
		if cfg.SerialPort == "" {
			return nil, errors.New("the serial hardware write protect driver needs --serial-port")
		}

		return OpenSerialWP(cfg.SerialPort)
	case m.HWWPNone:
		return NoHardwareWP{}, nil
	default:
		return nil, fmt.Errorf("unknown hardware write protect driver %q", kind)
	}
}

func autoHWWPKind(target m.FlashTarget) m.HWWPKind {
	switch target {
	case m.TargetHost, m.TargetEC:
		return m.HWWPCrossystem
	default:
		return m.HWWPNone
	}
}

// hwControlled overrides CanControlHWWP for fixtures whose line is driven
// by an external driver.
type hwControlled struct {
	Flashrom
}

func (hwControlled) CanControlHWWP() bool {
	return true
}

// WithHardwareControl marks backend as able to toggle hardware write
// protect. It is used when the line is wired to dut-control or a serial
// adapter on a fixture the backend itself cannot drive.
func WithHardwareControl(backend Flashrom) Flashrom {
	if backend.CanControlHWWP() {
		return backend
	}

	return hwControlled{Flashrom: backend}
}
