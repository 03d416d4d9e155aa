package domain

import "sync"

// Liveness guards the single root write protect scope a process may hold.
// Programs take the process token from ProcessLiveness and pass it to every
// FromHardware call.
type Liveness struct {
	mu   sync.Mutex
	held bool
}

var (
	processOnce     sync.Once
	processLiveness *Liveness
)

// ProcessLiveness returns the token shared by the whole process. Every
// caller gets the same token.
func ProcessLiveness() *Liveness {
	processOnce.Do(func() {
		processLiveness = NewLiveness()
	})

	return processLiveness
}

// NewLiveness mints a released token independent of ProcessLiveness. It is
// meant for tests and simulated sessions that never touch a real chip.
func NewLiveness() *Liveness {
	return &Liveness{}
}

// Held reports whether a root scope holds the token.
func (l *Liveness) Held() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.held
}

func (l *Liveness) acquire() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held {
		return ErrRootScopeLive
	}

	l.held = true

	return nil
}

func (l *Liveness) release() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.held = false
}
