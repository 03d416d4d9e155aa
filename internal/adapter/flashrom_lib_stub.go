//go:build !libflashrom

package adapter

import (
	"errors"

	"github.com/charmbracelet/log"

	m "github.com/mouse-blink/flashqual/internal/model"
)

// FlashromLib is only available in binaries built with -tags libflashrom.
type FlashromLib struct {
	Flashrom
}

// NewFlashromLib reports that the library backend was not compiled in.
func NewFlashromLib(_ m.FlashTarget, _ *log.Logger) (*FlashromLib, error) {
	return nil, errors.New("libflashrom backend unavailable: rebuild with -tags libflashrom")
}
