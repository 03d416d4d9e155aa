// Package adapter contains the hardware, process and filesystem adapters the
// qualification domain drives: flash backends, hardware write protect lines,
// system probes and session artifacts.
package adapter

import (
	"errors"

	m "github.com/mouse-blink/flashqual/internal/model"
)

// ErrUnsupported reports an operation the backend or platform cannot perform.
// Callers decide whether it is fatal.
var ErrUnsupported = errors.New("operation not supported on this platform")

// Flashrom is the capability contract every flash backend satisfies. The
// subprocess and library implementations must behave identically.
//
//nolint:interfacebloat // The contract mirrors the flashrom operations one to one.
type Flashrom interface {
	// Size returns the chip size in bytes.
	Size() (int64, error)
	// Name returns the chip vendor and name.
	Name() (string, string, error)

	// WPRange sets software write protect over a byte range.
	WPRange(r m.Range, enable bool) error
	// WPList lists the protectable ranges. May fail with ErrUnsupported.
	WPList() (string, error)
	// WPStatus reports whether the software write protect state equals enabled.
	WPStatus(enabled bool) (bool, error)
	// WPToggle sets software write protect over the whole chip.
	WPToggle(enable bool) error

	ReadIntoFile(path m.Path) error
	ReadRegionIntoFile(path m.Path, region string) error
	WriteFromFile(path m.Path) error
	WriteFromFileRegion(path m.Path, region string, layout m.Path) error
	VerifyFromFile(path m.Path) error
	VerifyRegionFromFile(path m.Path, region string) error
	Erase() error

	// CanControlHWWP reports whether the hardware write protect line of the
	// addressed target can be toggled at all.
	CanControlHWWP() bool
	// SetFlags applies behavioural toggles to subsequent operations.
	SetFlags(flags m.Flags)
}
