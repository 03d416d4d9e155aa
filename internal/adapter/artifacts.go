package adapter

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"time"

	m "github.com/mouse-blink/flashqual/internal/model"
)

// WriteRandomFile fills path with size random bytes.
func WriteRandomFile(path m.Path, size int64) error {
	f, err := os.OpenFile(string(path), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create random data file: %w", err)
	}

	if _, err := io.CopyN(f, rand.Reader, size); err != nil {
		f.Close()
		return fmt.Errorf("failed to fill random data file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close random data file: %w", err)
	}

	return nil
}

// PreserveFile moves path aside to path.<unix time> and returns the new
// name. A missing path is not an error and returns "".
func PreserveFile(path m.Path, now time.Time) (m.Path, error) {
	if _, err := os.Stat(string(path)); err != nil {
		if IsNotExist(err) {
			return "", nil
		}

		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	kept := m.Path(fmt.Sprintf("%s.%d", path, now.Unix()))
	if err := os.Rename(string(path), string(kept)); err != nil {
		return "", fmt.Errorf("failed to preserve %s: %w", path, err)
	}

	return kept, nil
}
