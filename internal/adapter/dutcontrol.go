package adapter

import (
	"fmt"
	"strings"
)

// DutControlWP drives the write protect line of a servo fixture.
type DutControlWP struct {
	runner CommandRunner
}

// NewDutControlWP creates a line driven through dut-control.
func NewDutControlWP(runner CommandRunner) *DutControlWP {
	return &DutControlWP{runner: runner}
}

// Get reads fw_wp back from dut-control.
func (d *DutControlWP) Get() (bool, error) {
	stdout, _, err := d.runner.Run("dut-control", "fw_wp")
	if err != nil {
		return false, fmt.Errorf("dut-control fw_wp: %w", err)
	}

	for _, line := range strings.Split(string(stdout), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(key) != "fw_wp" {
			continue
		}

		switch strings.TrimSpace(value) {
		case "on":
			return true, nil
		case "off":
			return false, nil
		default:
			return false, fmt.Errorf("unexpected fw_wp value %q", strings.TrimSpace(value))
		}
	}

	return false, fmt.Errorf("no fw_wp in dut-control output %q", stdout)
}

// Set toggles fw_wp_en and fw_wp together.
func (d *DutControlWP) Set(enable bool) error {
	args := []string{"fw_wp_en:on", "fw_wp:off"}
	if enable {
		args = []string{"fw_wp_en:off", "fw_wp:on"}
	}

	if _, _, err := d.runner.Run("dut-control", args...); err != nil {
		return fmt.Errorf("dut-control %s: %w", strings.Join(args, " "), err)
	}

	return nil
}
