// Package model defines the data structures shared by the flash qualification tool.
package model

import (
	"fmt"
	"strings"
)

// Path represents a file system path.
type Path string

// FlashTarget identifies the chip and programmer a session addresses.
type FlashTarget string

const (
	// TargetHost is the host firmware flash, reached through the internal programmer.
	TargetHost FlashTarget = "host"
	// TargetEC is the embedded controller flash.
	TargetEC FlashTarget = "ec"
	// TargetServo is an external fixture driven through a servo v2 board.
	TargetServo FlashTarget = "servo"
	// TargetDediprog is an external fixture driven through a Dediprog programmer.
	TargetDediprog FlashTarget = "dediprog"
	// TargetSim is the in-memory simulated chip.
	TargetSim FlashTarget = "sim"
)

// Targets lists the accepted targets in the order they are documented.
var Targets = []FlashTarget{TargetHost, TargetEC, TargetServo, TargetDediprog, TargetSim}

// ParseTarget converts a command-line target identifier to a FlashTarget.
func ParseTarget(s string) (FlashTarget, error) {
	for _, t := range Targets {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}

	return "", fmt.Errorf("unknown flash target %q", s)
}

// Programmer returns the flashrom programmer name and its parameters.
func (t FlashTarget) Programmer() (string, string) {
	switch t {
	case TargetHost:
		return "internal", ""
	case TargetEC:
		return "ec", ""
	case TargetServo:
		return "ft2231_spi", "type=servo-v2"
	case TargetDediprog:
		return "dediprog", ""
	case TargetSim:
		return "dummy", "emulate=SST25VF032B"
	default:
		return string(t), ""
	}
}

// ProgrammerArg renders the programmer in the form accepted by flashrom -p.
func (t FlashTarget) ProgrammerArg() string {
	name, params := t.Programmer()
	if params == "" {
		return name
	}

	return name + ":" + params
}

// CanControlHWWP reports whether the hardware write protect signal of the
// target can be toggled. Servo and dediprog fixtures are assumed to always
// have hardware write protect disabled.
func (t FlashTarget) CanControlHWWP() bool {
	switch t {
	case TargetHost, TargetEC, TargetSim:
		return true
	default:
		return false
	}
}
