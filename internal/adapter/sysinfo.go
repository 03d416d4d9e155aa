package adapter

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"
)

// SystemProbe gathers facts about the machine under test.
type SystemProbe interface {
	KernelRelease() (string, error)
	CrosRelease() (string, error)
	SystemInfo() (string, error)
	BIOSInfo() (string, error)
	OSRelease() (map[string]string, error)
}

// LocalSystemProbe reads the local machine. Files are resolved under root
// so tests can point it at a fake tree.
type LocalSystemProbe struct {
	runner CommandRunner
	root   string
	logger *log.Logger
}

// NewLocalSystemProbe creates a probe over the filesystem rooted at root.
func NewLocalSystemProbe(runner CommandRunner, root string, logger *log.Logger) *LocalSystemProbe {
	return &LocalSystemProbe{runner: runner, root: root, logger: logger}
}

// KernelRelease returns the running kernel release.
func (p *LocalSystemProbe) KernelRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}

	return unix.ByteSliceToString(uts.Release[:]), nil
}

// CrosRelease returns the CHROMEOS_RELEASE_DESCRIPTION line of lsb-release.
func (p *LocalSystemProbe) CrosRelease() (string, error) {
	data, err := os.ReadFile(filepath.Join(p.root, "etc", "lsb-release"))
	if err != nil {
		return "", fmt.Errorf("failed to read lsb-release: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "CHROMEOS_RELEASE_DESCRIPTION") {
			return line, nil
		}
	}

	return "", fmt.Errorf("no release description in lsb-release: %w", fs.ErrNotExist)
}

// SystemInfo returns the dmidecode system information record.
func (p *LocalSystemProbe) SystemInfo() (string, error) {
	return p.dmidecode("-q", "-t1")
}

// BIOSInfo returns the dmidecode BIOS information record.
func (p *LocalSystemProbe) BIOSInfo() (string, error) {
	return p.dmidecode("-q", "-t0")
}

// OSRelease parses os-release.
func (p *LocalSystemProbe) OSRelease() (map[string]string, error) {
	f, err := os.Open(filepath.Join(p.root, "etc", "os-release"))
	if err != nil {
		return nil, fmt.Errorf("failed to open os-release: %w", err)
	}
	defer f.Close()

	return ParseOSRelease(f, p.logger)
}

func (p *LocalSystemProbe) dmidecode(args ...string) (string, error) {
	stdout, _, err := p.runner.Run("/usr/sbin/dmidecode", args...)
	if err != nil {
		return "", fmt.Errorf("dmidecode: %w", err)
	}

	return string(stdout), nil
}

// ParseOSRelease reads os-release(5) entries. Quotes and escapes are kept
// as written; malformed lines are logged and skipped.
func ParseOSRelease(r io.Reader, logger *log.Logger) (map[string]string, error) {
	values := make(map[string]string)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			logger.Warnf("os-release entry seems malformed: %q", line)
			continue
		}

		values[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read os-release: %w", err)
	}

	return values, nil
}
