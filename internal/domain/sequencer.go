package domain

import (
	"errors"
	"strings"
	"sync/atomic"

	m "github.com/mouse-blink/flashqual/internal/model"
)

// Case is one named qualification test.
type Case interface {
	Name() string
	// Expected is the conclusion a healthy chip produces, normally Pass.
	Expected() m.Conclusion
	Run(env *Env) error
}

type funcCase struct {
	name     string
	expected m.Conclusion
	fn       func(*Env) error
}

func (c funcCase) Name() string { return c.name }

func (c funcCase) Expected() m.Conclusion { return c.expected }

func (c funcCase) Run(env *Env) error { return c.fn(env) }

// NewCase wraps fn as a case expected to pass.
func NewCase(name string, fn func(*Env) error) Case {
	return funcCase{name: name, expected: m.Pass, fn: fn}
}

// NewCaseExpecting wraps fn as a case with an explicit expected conclusion.
func NewCaseExpecting(name string, expected m.Conclusion, fn func(*Env) error) Case {
	return funcCase{name: name, expected: expected, fn: fn}
}

// FilterCases keeps the cases whose lowercase name is in names and deletes
// every matched name, so the caller can report names that matched nothing.
// A nil names keeps every case.
func FilterCases(cases []Case, names map[string]struct{}) []Case {
	if names == nil {
		return cases
	}

	var out []Case

	for _, c := range cases {
		name := strings.ToLower(c.Name())
		if _, ok := names[name]; ok {
			delete(names, name)

			out = append(out, c)
		}
	}

	return out
}

// Decode reconciles a case result with its expected conclusion. Only an
// unexpected failure keeps the error.
func Decode(err error, expected m.Conclusion) (m.Conclusion, error) {
	switch {
	case err == nil && expected == m.Fail:
		return m.UnexpectedPass, nil
	case err != nil && expected == m.Pass:
		return m.UnexpectedFail, err
	default:
		return m.Pass, nil
	}
}

// SequenceArgs configures RunAll.
type SequenceArgs struct {
	Env    EnvArgs
	Cases  []Case
	Cancel *atomic.Bool // polled between cases; may be nil
}

// RunAll runs cases in order against one Env and always disposes of it.
// The error is either the setup failure or a *FatalRestoreError; case
// failures are only reported in the outcomes.
func RunAll(args SequenceArgs) (outcomes []m.Outcome, err error) {
	logger := args.Env.Logger

	env, err := NewEnv(args.Env)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			rErr, ok := r.(error)

			var fatal *FatalRestoreError
			if !ok || !errors.As(rErr, &fatal) {
				panic(r)
			}

			logger.Errorf("Write protect state is unknown, leaving the chip untouched: %v", fatal)
			err = fatal

			return
		}

		if closeErr := env.Close(); closeErr != nil {
			err = closeErr
		}
	}()

	for _, c := range args.Cases {
		if args.Cancel != nil && args.Cancel.Load() {
			logger.Warn("Interrupted, not starting remaining tests")
			break
		}

		result := env.RunTest(c)
		conclusion, caseErr := Decode(result, c.Expected())
		outcomes = append(outcomes, m.Outcome{Name: c.Name(), Conclusion: conclusion, Err: caseErr})
	}

	return outcomes, nil
}
