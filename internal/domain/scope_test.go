package domain

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/flashqual/internal/adapter"
	m "github.com/mouse-blink/flashqual/internal/model"
)

const testChipSize = 1 << 16

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func newRoot(t *testing.T, chip *adapter.SimChip) (*Scope, *Liveness) {
	t.Helper()

	live := NewLiveness()

	root, err := FromHardware(live, chip, chip.HardwareLine(), discardLogger())
	require.NoError(t, err)

	return root, live
}

func TestFromHardware_ReadsChipState(t *testing.T) {
	bits := m.WriteProtectBits{Hardware: true, Software: true}
	chip := adapter.NewSimChip(testChipSize, adapter.WithSimWriteProtect(bits))

	root, live := newRoot(t, chip)

	assert.Equal(t, bits, root.Bits())
	assert.Equal(t, bits, root.Initial())
	assert.Equal(t, 0, root.Depth())
	assert.True(t, live.Held())

	require.NoError(t, root.Close())
	assert.False(t, live.Held())
	assert.Equal(t, bits, chip.Bits())
}

func TestFromHardware_SingleRoot(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize)
	root, live := newRoot(t, chip)

	_, err := FromHardware(live, chip, chip.HardwareLine(), discardLogger())
	require.ErrorIs(t, err, ErrRootScopeLive)

	require.NoError(t, root.Close())

	again, err := FromHardware(live, chip, chip.HardwareLine(), discardLogger())
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestFromHardware_ReadFailureReleasesToken(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize)
	chip.FailOn(adapter.SimOpWPStatus, errors.New("spi timeout"))

	live := NewLiveness()

	_, err := FromHardware(live, chip, chip.HardwareLine(), discardLogger())
	require.Error(t, err)
	assert.False(t, live.Held())
}

func TestScope_NestedRestore(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize)
	root, _ := newRoot(t, chip)

	child, err := root.Push()
	require.NoError(t, err)
	require.NoError(t, child.SetSoftware(true))
	require.NoError(t, child.SetHardware(true))

	grandchild, err := child.Push()
	require.NoError(t, err)
	assert.Equal(t, child.Bits(), grandchild.Initial())

	require.NoError(t, grandchild.SetHardware(false))
	require.NoError(t, grandchild.SetSoftware(false))
	assert.Equal(t, m.WriteProtectBits{}, chip.Bits())

	require.NoError(t, grandchild.Close())
	assert.Equal(t, m.WriteProtectBits{Hardware: true, Software: true}, chip.Bits())

	require.NoError(t, child.Close())
	assert.Equal(t, m.WriteProtectBits{}, chip.Bits())

	require.NoError(t, root.Close())
}

// scopeStep acts on the innermost scope and returns the new innermost one.
// Errors from set requests are expected where hardware protection pins the
// chip; only restores must succeed.
type scopeStep func(t *testing.T, top *Scope, layout Layout) *Scope

func push(t *testing.T, top *Scope, _ Layout) *Scope {
	child, err := top.Push()
	require.NoError(t, err)

	return child
}

func pop(t *testing.T, top *Scope, _ Layout) *Scope {
	parent := top.Depth() - 1
	require.NoError(t, top.Close())

	return &Scope{st: top.st, f: top.st.frames[parent]}
}

func software(enable bool) scopeStep {
	return func(_ *testing.T, top *Scope, _ Layout) *Scope {
		_ = top.SetSoftware(enable)
		return top
	}
}

func hardware(enable bool) scopeStep {
	return func(_ *testing.T, top *Scope, _ Layout) *Scope {
		_ = top.SetHardware(enable)
		return top
	}
}

func lock(name m.RegionName) scopeStep {
	return func(_ *testing.T, top *Scope, layout Layout) *Scope {
		_ = top.SetRange(layout.Section(name).Range, true)
		return top
	}
}

func TestScope_OutermostCloseRestoresStartingBits(t *testing.T) {
	sequences := map[string][]scopeStep{
		"hardware then software": {push, hardware(true), software(true), pop},
		"software then hardware, released inside": {
			push, software(true), hardware(true),
			push, hardware(false), software(false), pop,
			pop,
		},
		"range locks": {
			push, lock(m.RegionTopQuad),
			push, software(false), lock(m.RegionBottomHalf), pop,
			pop,
		},
		"deep alternation": {
			push, software(false), hardware(false),
			push, software(true),
			push, hardware(true),
			push, hardware(false), lock(m.RegionTopHalf),
			pop, pop, pop, pop,
		},
		"scopes left open": {push, software(true), push, hardware(true), push, lock(m.RegionBottomQuad)},
	}

	starts := []m.WriteProtectBits{
		{},
		{Software: true},
		{Hardware: true},
		{Hardware: true, Software: true},
	}

	for _, controllable := range []bool{true, false} {
		for _, start := range starts {
			for name, steps := range sequences {
				t.Run(fmt.Sprintf("%s/%s/control=%t", name, start, controllable), func(t *testing.T) {
					chip := adapter.NewSimChip(testChipSize,
						adapter.WithSimWriteProtect(start),
						adapter.WithSimHardwareControl(controllable))
					root, live := newRoot(t, chip)

					layout, err := PlanLayout(testChipSize)
					require.NoError(t, err)

					top := root
					for _, step := range steps {
						top = step(t, top, layout)
					}

					_, err = root.unwindTo(0)
					require.NoError(t, err)
					require.NoError(t, root.Close())

					assert.Equal(t, start, chip.Bits())
					assert.False(t, live.Held())
				})
			}
		}
	}
}

func TestScope_RandomWalkRestoresStartingBits(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	regions := []m.RegionName{m.RegionBottomQuad, m.RegionBottomHalf, m.RegionTopHalf, m.RegionTopQuad}

	layout, err := PlanLayout(testChipSize)
	require.NoError(t, err)

	for walk := 0; walk < 64; walk++ {
		start := m.WriteProtectBits{Hardware: rng.IntN(2) == 0, Software: rng.IntN(2) == 0}
		controllable := rng.IntN(4) != 0

		chip := adapter.NewSimChip(testChipSize,
			adapter.WithSimWriteProtect(start),
			adapter.WithSimHardwareControl(controllable))
		root, _ := newRoot(t, chip)

		top := root
		for step := 0; step < 40; step++ {
			switch op := rng.IntN(5); {
			case op == 0 && top.Depth() < 6:
				top = push(t, top, layout)
			case op == 1 && top.Depth() > 0:
				top = pop(t, top, layout)
			case op == 2:
				top = software(rng.IntN(2) == 0)(t, top, layout)
			case op == 3:
				top = hardware(rng.IntN(2) == 0)(t, top, layout)
			case op == 4:
				top = lock(regions[rng.IntN(len(regions))])(t, top, layout)
			}
		}

		_, err := root.unwindTo(0)
		require.NoError(t, err, "walk %d", walk)
		require.NoError(t, root.Close(), "walk %d", walk)
		assert.Equal(t, start, chip.Bits(), "walk %d from %s, control=%t", walk, start, controllable)
	}
}

func TestScope_BorrowedAndClosed(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize)
	root, live := newRoot(t, chip)

	child, err := root.Push()
	require.NoError(t, err)

	require.ErrorIs(t, root.SetSoftware(true), ErrScopeBorrowed)
	require.ErrorIs(t, root.SetHardware(true), ErrScopeBorrowed)
	require.ErrorIs(t, root.Close(), ErrScopeBorrowed)

	_, err = root.Push()
	require.ErrorIs(t, err, ErrScopeBorrowed)

	require.NoError(t, child.Close())
	require.ErrorIs(t, child.SetSoftware(true), ErrScopeClosed)
	require.ErrorIs(t, child.Close(), ErrScopeClosed)
	assert.Equal(t, -1, child.Depth())
	assert.NotPanics(t, child.MustClose)

	root.MustClose()
	assert.False(t, live.Held())
}

func TestScope_RestoresSoftwareAfterReleasingHardware(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize)
	root, _ := newRoot(t, chip)

	child, err := root.Push()
	require.NoError(t, err)
	require.NoError(t, child.SetSoftware(true))
	require.NoError(t, child.SetHardware(true))

	chip.ResetCalls()
	require.NoError(t, child.Close())

	assert.Equal(t, []string{"hw_set false", "hw_get", "wp_toggle false", "wp_status", "hw_get"}, chip.Calls())
	assert.Equal(t, m.WriteProtectBits{}, chip.Bits())

	require.NoError(t, root.Close())
}

func TestScope_RestoresHardwareLast(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize, adapter.WithSimWriteProtect(m.WriteProtectBits{Hardware: true, Software: true}))
	root, _ := newRoot(t, chip)

	child, err := root.Push()
	require.NoError(t, err)
	require.NoError(t, child.SetHardware(false))
	require.NoError(t, child.SetSoftware(false))

	chip.ResetCalls()
	require.NoError(t, child.Close())

	assert.Equal(t, []string{"wp_toggle true", "wp_status", "hw_set true", "hw_get"}, chip.Calls())
	assert.Equal(t, m.WriteProtectBits{Hardware: true, Software: true}, chip.Bits())

	require.NoError(t, root.Close())
}

func TestScope_HardwareProtectPinsSoftware(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize)
	root, _ := newRoot(t, chip)

	child, err := root.Push()
	require.NoError(t, err)
	require.NoError(t, child.SetSoftware(true))
	require.NoError(t, child.SetHardware(true))

	err = child.SetSoftware(false)
	require.ErrorIs(t, err, adapter.ErrWriteProtected)
	assert.True(t, chip.Bits().Software)
	assert.True(t, child.Bits().Software)

	require.NoError(t, child.Close())
	assert.Equal(t, m.WriteProtectBits{}, chip.Bits())
	require.NoError(t, root.Close())
}

func TestScope_UncontrollableHardwareIsIgnored(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize, adapter.WithSimHardwareControl(false))
	root, _ := newRoot(t, chip)

	assert.False(t, root.CanControlHardware())

	child, err := root.Push()
	require.NoError(t, err)
	require.NoError(t, child.SetHardware(true))
	assert.False(t, child.Bits().Hardware)

	require.NoError(t, child.SetSoftware(true))
	require.NoError(t, child.Close())
	require.NoError(t, root.Close())

	for _, call := range chip.Calls() {
		assert.NotContains(t, call, "hw_", "no hardware line access expected")
	}
}

func TestScope_RangeForcesSoftwareRestore(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize, adapter.WithSimWriteProtect(m.WriteProtectBits{Software: true}))
	root, _ := newRoot(t, chip)

	layout, err := PlanLayout(testChipSize)
	require.NoError(t, err)

	child, err := root.Push()
	require.NoError(t, err)
	require.NoError(t, child.SetHardware(false))
	require.NoError(t, child.SetRange(layout.Section(m.RegionTopQuad).Range, true))
	assert.Equal(t, root.Initial(), child.Bits(), "a range lock still reads as software protected")

	chip.ResetCalls()
	require.NoError(t, child.Close())
	assert.Contains(t, chip.Calls(), "wp_toggle true")

	// Whole chip protection is back: bottom bytes can no longer change.
	require.Error(t, chip.Erase())

	require.NoError(t, root.Close())
}

func TestScope_FailedRestoreIsFatal(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize)
	root, live := newRoot(t, chip)

	child, err := root.Push()
	require.NoError(t, err)
	require.NoError(t, child.SetSoftware(true))

	boom := errors.New("programmer disconnected")
	chip.FailOn(adapter.SimOpWPToggle, boom)

	err = child.Close()

	var fatal *FatalRestoreError
	require.ErrorAs(t, err, &fatal)
	assert.Equal(t, "software", fatal.Step)
	assert.Equal(t, m.WriteProtectBits{}, fatal.Initial)
	require.ErrorIs(t, err, boom)

	assert.Equal(t, 1, child.Depth(), "the scope stays on the stack")
	assert.True(t, live.Held())
	assert.Same(t, fatal, root.Fatal())
	assert.Panics(t, child.MustClose)

	chip.FailOn(adapter.SimOpWPToggle, nil)
	chip.ResetCalls()

	require.ErrorIs(t, child.Close(), boom, "a healed programmer does not clear the failure")
	require.ErrorIs(t, root.Close(), boom)
	require.ErrorIs(t, child.SetSoftware(false), boom)

	_, err = root.unwindTo(0)
	require.ErrorIs(t, err, boom)

	assert.Empty(t, chip.Calls(), "nothing touches the chip after a failed restore")
	assert.True(t, live.Held())
	assert.True(t, chip.Bits().Software)
}

func TestScope_FailedVerifyMarksDirty(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize)
	root, _ := newRoot(t, chip)

	child, err := root.Push()
	require.NoError(t, err)

	chip.FailOn(adapter.SimOpWPStatus, errors.New("status read failed"))
	require.Error(t, child.SetSoftware(false))
	chip.FailOn(adapter.SimOpWPStatus, nil)

	chip.ResetCalls()
	require.NoError(t, child.Close())
	assert.Contains(t, chip.Calls(), "wp_toggle false", "an unverified state is toggled back")

	require.NoError(t, root.Close())
}

func TestScope_Top(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize)
	root, _ := newRoot(t, chip)

	child, err := root.Push()
	require.NoError(t, err)

	top, err := root.Top()
	require.NoError(t, err)
	assert.Equal(t, 1, top.Depth())

	unwound, err := root.unwindTo(0)
	require.NoError(t, err)
	assert.Equal(t, 1, unwound)
	assert.Equal(t, -1, child.Depth())

	require.NoError(t, root.Close())

	_, err = root.Top()
	require.ErrorIs(t, err, ErrScopeClosed)
}

func TestProcessLiveness_IsShared(t *testing.T) {
	live := ProcessLiveness()
	require.Same(t, live, ProcessLiveness())

	chip := adapter.NewSimChip(testChipSize)

	root, err := FromHardware(ProcessLiveness(), chip, chip.HardwareLine(), discardLogger())
	require.NoError(t, err)

	_, err = FromHardware(ProcessLiveness(), chip, chip.HardwareLine(), discardLogger())
	require.ErrorIs(t, err, ErrRootScopeLive)

	require.NoError(t, root.Close())
	assert.False(t, live.Held())
}
