package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// CrossystemWP reads the hardware write protect switch through crossystem
// and asks the operator to flip it.
type CrossystemWP struct {
	runner   CommandRunner
	prompter Prompter
	logger   *log.Logger
	attempts int
}

// NewCrossystemWP creates a line reading wpsw_cur. Set re-prompts up to
// attempts times; zero means until the operator aborts.
func NewCrossystemWP(runner CommandRunner, prompter Prompter, logger *log.Logger, attempts int) *CrossystemWP {
	return &CrossystemWP{runner: runner, prompter: prompter, logger: logger, attempts: attempts}
}

// Get runs crossystem and reports wpsw_cur.
func (c *CrossystemWP) Get() (bool, error) {
	stdout, _, err := c.runner.Run("crossystem")
	if err != nil {
		return false, fmt.Errorf("crossystem: %w", err)
	}

	return WPSwitchState(ParseCrossystem(string(stdout)))
}

// Set prompts the operator until the switch reads enable.
func (c *CrossystemWP) Set(enable bool) error {
	dis := "dis"
	if enable {
		dis = ""
	}

	for try := 1; c.attempts == 0 || try <= c.attempts; try++ {
		state, err := c.Get()
		if err != nil {
			return err
		}

		if state == enable {
			return nil
		}

		c.logger.Warnf("hardware write protect is %s, want %s", enabledWord(state), enabledWord(enable))

		if err := c.prompter.Confirm(fmt.Sprintf(" > %sconnect the battery (and/or open the WP screw)", dis)); err != nil {
			return fmt.Errorf("hardware write protect toggle aborted: %w", err)
		}
	}

	return fmt.Errorf("hardware write protect still not %s after %d attempts", enabledWord(enable), c.attempts)
}

// ParseCrossystem turns crossystem output into a key/value map. Lines that
// carry firmware and hardware ids are dropped.
func ParseCrossystem(out string) map[string]string {
	values := make(map[string]string)

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "fwid +=") || strings.Contains(line, "hwid +=") {
			continue
		}

		key, rest, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		value, _, _ := strings.Cut(rest, "#")
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return values
}

// WPSwitchState interprets wpsw_cur.
func WPSwitchState(values map[string]string) (bool, error) {
	raw, ok := values["wpsw_cur"]
	if !ok {
		return false, errors.New("no wpsw_cur in system info")
	}

	if raw == "" || raw[0] < '0' || raw[0] > '9' {
		return false, errors.New("cannot parse state value")
	}

	switch raw[0] {
	case '1':
		return true, nil
	case '0':
		return false, nil
	default:
		return false, fmt.Errorf("unknown state value %q", raw)
	}
}
