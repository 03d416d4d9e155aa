package model

import (
	"fmt"
	"strings"
)

// Backend selects how flash operations reach the chip.
type Backend string

// Available backends.
const (
	BackendCmd Backend = "cmd"
	BackendLib Backend = "lib"
	BackendSim Backend = "sim"
)

// ParseBackend converts a case-insensitive backend name.
func ParseBackend(s string) (Backend, error) {
	for _, b := range []Backend{BackendCmd, BackendLib, BackendSim} {
		if strings.EqualFold(s, string(b)) {
			return b, nil
		}
	}

	return "", fmt.Errorf("unknown backend %q (want cmd, lib or sim)", s)
}

// InferBackend derives the backend from the binary argument: "lib" and
// "sim" select those backends, anything else is a flashrom binary path.
func InferBackend(binary string) Backend {
	switch {
	case strings.EqualFold(binary, string(BackendLib)):
		return BackendLib
	case strings.EqualFold(binary, string(BackendSim)):
		return BackendSim
	default:
		return BackendCmd
	}
}

// HWWPKind selects how the hardware write protect line is driven.
type HWWPKind string

// Available hardware write protect drivers. HWWPAuto picks one from the
// target.
const (
	HWWPAuto       HWWPKind = "auto"
	HWWPCrossystem HWWPKind = "crossystem"
	HWWPDutControl HWWPKind = "dut-control"
	HWWPSerial     HWWPKind = "serial"
	HWWPNone       HWWPKind = "none"
)

// ParseHWWPKind converts a case-insensitive driver name.
func ParseHWWPKind(s string) (HWWPKind, error) {
	for _, k := range []HWWPKind{HWWPAuto, HWWPCrossystem, HWWPDutControl, HWWPSerial, HWWPNone} {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}

	return "", fmt.Errorf("unknown hardware write protect driver %q", s)
}
