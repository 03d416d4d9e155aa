package adapter

// HardwareWP is the hardware write protect line of a target.
type HardwareWP interface {
	// Get reports whether hardware write protect is asserted.
	Get() (bool, error)
	// Set asserts or releases hardware write protect. Implementations may
	// need the operator to act before returning.
	Set(enable bool) error
}

// Prompter asks the operator to perform a manual step and waits for them.
type Prompter interface {
	// Confirm shows message and blocks until the operator confirms. A non
	// nil error means the operator aborted.
	Confirm(message string) error
}

// NoHardwareWP is the line of targets whose hardware write protect is
// permanently released.
type NoHardwareWP struct{}

// Get always reports a released line.
func (NoHardwareWP) Get() (bool, error) {
	return false, nil
}

// Set accepts only a release.
func (NoHardwareWP) Set(enable bool) error {
	if enable {
		return ErrUnsupported
	}

	return nil
}
