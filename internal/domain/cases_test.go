package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/flashqual/internal/adapter"
	adaptermocks "github.com/mouse-blink/flashqual/internal/adapter/mocks"
	m "github.com/mouse-blink/flashqual/internal/model"
)

func suiteWithout(names ...string) []Case {
	skip := make(map[string]bool, len(names))
	for _, name := range names {
		skip[name] = true
	}

	var out []Case

	for _, c := range QualificationCases() {
		if !skip[c.Name()] {
			out = append(out, c)
		}
	}

	return out
}

func outcomeMap(outcomes []m.Outcome) map[string]m.Outcome {
	byName := make(map[string]m.Outcome, len(outcomes))
	for _, o := range outcomes {
		byName[o.Name] = o
	}

	return byName
}

func TestQualificationCases_Names(t *testing.T) {
	assert.Equal(t, []string{
		"Get_device_name",
		"Coreboot_ELOG_sanity",
		"Host_is_ChromeOS",
		"WP_Region_List",
		"Erase_and_Write",
		"Fail_to_verify",
		"HWWP_Locks_SWWP",
		"Lock_top_quad",
		"Lock_bottom_quad",
		"Lock_bottom_half",
		"Lock_top_half",
	}, namesOf(QualificationCases()))

	for _, c := range QualificationCases() {
		assert.Equal(t, m.Pass, c.Expected(), c.Name())
	}
}

func TestQualificationCases_PassOnHealthyChip(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize)
	original := chip.Contents()
	args := envArgs(t, chip)

	outcomes, err := RunAll(SequenceArgs{Env: args, Cases: suiteWithout("Host_is_ChromeOS")})
	require.NoError(t, err)
	require.Len(t, outcomes, 10)

	for _, o := range outcomes {
		assert.Equal(t, m.Pass, o.Conclusion, "%s: %v", o.Name, o.Err)
	}

	assert.Equal(t, original, chip.Contents())
	assert.Equal(t, m.WriteProtectBits{}, chip.Bits())
}

func TestQualificationCases_PassWithProtectedStart(t *testing.T) {
	protected := m.WriteProtectBits{Hardware: true, Software: true}
	chip := adapter.NewSimChip(testChipSize, adapter.WithSimWriteProtect(protected))
	original := chip.Contents()

	outcomes, err := RunAll(SequenceArgs{Env: envArgs(t, chip), Cases: suiteWithout("Host_is_ChromeOS")})
	require.NoError(t, err)

	for _, o := range outcomes {
		assert.Equal(t, m.Pass, o.Conclusion, "%s: %v", o.Name, o.Err)
	}

	assert.Equal(t, original, chip.Contents())
	assert.Equal(t, protected, chip.Bits())
}

func TestQualificationCases_WithoutHardwareControl(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize, adapter.WithSimHardwareControl(false))
	args := envArgs(t, chip)
	args.Target = m.TargetServo

	outcomes, err := RunAll(SequenceArgs{Env: args, Cases: suiteWithout("Host_is_ChromeOS")})
	require.NoError(t, err)

	byName := outcomeMap(outcomes)

	hwwp := byName["HWWP_Locks_SWWP"]
	assert.Equal(t, m.UnexpectedFail, hwwp.Conclusion)
	require.Error(t, hwwp.Err)
	assert.Contains(t, hwwp.Err.Error(), "requires ability")

	for _, name := range []string{"Lock_top_quad", "Lock_bottom_quad", "Lock_bottom_half", "Lock_top_half", "Coreboot_ELOG_sanity"} {
		assert.Equal(t, m.Pass, byName[name].Conclusion, "%s: %v", name, byName[name].Err)
	}
}

func TestQualificationCases_WPRegionListUnsupportedOnlyWarns(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize, adapter.WithSimWPListSupported(false))

	outcomes, err := RunAll(SequenceArgs{
		Env:   envArgs(t, chip),
		Cases: []Case{NewCase("WP_Region_List", wpRegionListCase)},
	})
	require.NoError(t, err)
	assert.Equal(t, m.Pass, outcomes[0].Conclusion)
}

func TestQualificationCases_DetectsBrokenErase(t *testing.T) {
	chip := adapter.NewSimChip(testChipSize)
	chip.FailOn(adapter.SimOpErase, errors.New("erase timed out"))

	outcomes, err := RunAll(SequenceArgs{
		Env:   envArgs(t, chip),
		Cases: []Case{NewCase("Erase_and_Write", eraseWriteCase)},
	})
	require.NoError(t, err)
	assert.Equal(t, m.UnexpectedFail, outcomes[0].Conclusion)
	assert.ErrorContains(t, outcomes[0].Err, "erase timed out")
}

func TestHostIsChromeOS(t *testing.T) {
	tests := []struct {
		name    string
		release map[string]string
		err     error
		wantErr string
	}{
		{name: "chromeos", release: map[string]string{"ID": "chromeos"}},
		{name: "chromiumos", release: map[string]string{"ID": "chromiumos"}},
		{name: "ubuntu", release: map[string]string{"ID": "ubuntu"}, wantErr: `"ubuntu"`},
		{name: "missing id", release: map[string]string{"NAME": "Linux"}, wantErr: "UNKNOWN"},
		{name: "unreadable", err: errors.New("no such file"), wantErr: "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := adaptermocks.NewMockSystemProbe(t)
			probe.EXPECT().OSRelease().Return(tt.release, tt.err)

			args := envArgs(t, adapter.NewSimChip(testChipSize))
			args.Probe = probe

			outcomes, err := RunAll(SequenceArgs{
				Env:   args,
				Cases: []Case{NewCase("Host_is_ChromeOS", hostIsChromeOSCase)},
			})
			require.NoError(t, err)
			require.Len(t, outcomes, 1)

			if tt.wantErr == "" {
				assert.Equal(t, m.Pass, outcomes[0].Conclusion)
				return
			}

			assert.Equal(t, m.UnexpectedFail, outcomes[0].Conclusion)
			assert.ErrorContains(t, outcomes[0].Err, tt.wantErr)
		})
	}
}
