package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// CommandRunner runs an external program to completion.
type CommandRunner interface {
	Run(name string, args ...string) (stdout []byte, stderr []byte, err error)
}

// ExitError is returned when a program ran but did not succeed.
type ExitError struct {
	Name   string
	Code   int // -1 when the process was killed by a signal
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Code < 0 {
		return fmt.Sprintf("%s: process terminated by a signal", e.Name)
	}

	return fmt.Sprintf("%s\nExited with error code: %d", e.Stderr, e.Code)
}

// LocalCommandRunner runs programs on the local machine with stdin closed.
type LocalCommandRunner struct{}

// NewLocalCommandRunner constructs a LocalCommandRunner.
func NewLocalCommandRunner() *LocalCommandRunner {
	return &LocalCommandRunner{}
}

// Run executes name with args and collects both output streams.
func (r *LocalCommandRunner) Run(name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdin = nil
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), stderr.Bytes(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.Bytes(), stderr.Bytes(), &ExitError{
			Name:   name,
			Code:   exitErr.ExitCode(),
			Stderr: stderr.String(),
		}
	}

	return stdout.Bytes(), stderr.Bytes(), fmt.Errorf("failed to run %s: %w", name, err)
}
