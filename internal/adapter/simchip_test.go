package adapter

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/flashqual/internal/model"
)

const simTestSize = 1 << 16

func writeImage(t *testing.T, name string, data []byte) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return m.Path(path)
}

func TestSimChip_Defaults(t *testing.T) {
	chip := NewSimChip(simTestSize)

	size, err := chip.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(simTestSize), size)

	vendor, name, err := chip.Name()
	require.NoError(t, err)
	assert.Equal(t, "SST", vendor)
	assert.Equal(t, "SST25VF032B", name)

	assert.True(t, chip.CanControlHWWP())
	assert.Equal(t, m.WriteProtectBits{}, chip.Bits())
	assert.Equal(t, ELOGMagic, binary.LittleEndian.Uint32(chip.Contents()[simTestSize/8:]))
	assert.Equal(t, chip.Contents(), NewSimChip(simTestSize).Contents(), "contents are deterministic")
}

func TestSimChip_ReadWriteVerify(t *testing.T) {
	chip := NewSimChip(simTestSize)
	dir := t.TempDir()

	golden := m.Path(filepath.Join(dir, "golden.bin"))
	require.NoError(t, chip.ReadIntoFile(golden))
	require.NoError(t, chip.VerifyFromFile(golden))

	require.NoError(t, chip.Erase())
	assert.Equal(t, bytes.Repeat([]byte{0xff}, simTestSize), chip.Contents())
	assert.ErrorContains(t, chip.VerifyFromFile(golden), "verification failed")

	require.NoError(t, chip.WriteFromFile(golden))
	require.NoError(t, chip.VerifyFromFile(golden))

	assert.ErrorContains(t, chip.WriteFromFile(writeImage(t, "short.bin", []byte{1, 2, 3})), "does not match chip size")
}

func TestSimChip_Regions(t *testing.T) {
	chip := NewSimChip(simTestSize)
	dir := t.TempDir()

	elog := m.Path(filepath.Join(dir, "elog.bin"))
	require.NoError(t, chip.ReadRegionIntoFile(elog, "RW_ELOG"))

	data, err := os.ReadFile(string(elog))
	require.NoError(t, err)
	assert.Len(t, data, simTestSize/16)
	assert.Equal(t, ELOGMagic, binary.LittleEndian.Uint32(data))

	require.NoError(t, chip.VerifyRegionFromFile(elog, "RW_ELOG"))
	assert.ErrorContains(t, chip.VerifyRegionFromFile(writeImage(t, "x", []byte{1}), "RW_ELOG"), "does not match provided file size")
	assert.Error(t, chip.ReadRegionIntoFile(elog, "NO_SUCH"))
}

func TestSimChip_WriteRegionUsesLayoutFile(t *testing.T) {
	chip := NewSimChip(simTestSize)
	original := chip.Contents()

	layout := writeImage(t, "layout", []byte("000000:7fff BOTTOM_HALF\n8000:ffff TOP_HALF\n"))
	erased := writeImage(t, "erased", bytes.Repeat([]byte{0xff}, simTestSize))

	require.NoError(t, chip.WriteFromFileRegion(erased, "TOP_HALF", layout))

	got := chip.Contents()
	assert.Equal(t, original[:0x8000], got[:0x8000])
	assert.Equal(t, bytes.Repeat([]byte{0xff}, 0x8000), got[0x8000:])

	assert.Error(t, chip.WriteFromFileRegion(erased, "TOP_QUAD", layout))
}

func TestSimChip_SoftwareProtectRange(t *testing.T) {
	chip := NewSimChip(simTestSize)
	erased := writeImage(t, "erased", bytes.Repeat([]byte{0xff}, simTestSize))
	layout := writeImage(t, "layout", []byte("000000:7fff BOTTOM_HALF\n8000:ffff TOP_HALF\n"))

	require.NoError(t, chip.WPRange(m.Range{Start: 0x8000, Len: 0x8000}, true))

	ok, err := chip.WPStatus(true)
	require.NoError(t, err)
	assert.True(t, ok)

	require.ErrorIs(t, chip.WriteFromFileRegion(erased, "TOP_HALF", layout), ErrWriteProtected)
	require.NoError(t, chip.WriteFromFileRegion(erased, "BOTTOM_HALF", layout))
	require.ErrorIs(t, chip.Erase(), ErrWriteProtected)

	chip.SetFlags(m.Flags{Force: true})
	require.NoError(t, chip.Erase(), "force bypasses software protection")
}

func TestSimChip_HardwarePinsSoftware(t *testing.T) {
	chip := NewSimChip(simTestSize)
	line := chip.HardwareLine()

	require.NoError(t, chip.WPToggle(true))
	require.NoError(t, line.Set(true))

	asserted, err := line.Get()
	require.NoError(t, err)
	assert.True(t, asserted)

	require.ErrorIs(t, chip.WPToggle(false), ErrWriteProtected)
	assert.Equal(t, m.WriteProtectBits{Hardware: true, Software: true}, chip.Bits())

	require.NoError(t, line.Set(false))
	require.NoError(t, chip.WPToggle(false))

	assert.Equal(t, []string{"wp_toggle true", "hw_set true", "hw_get", "wp_toggle false", "hw_set false", "wp_toggle false"}, chip.Calls())
}

func TestSimChip_UncontrollableLine(t *testing.T) {
	chip := NewSimChip(simTestSize, WithSimHardwareControl(false))

	assert.False(t, chip.CanControlHWWP())
	assert.Error(t, chip.HardwareLine().Set(true))
}

func TestSimChip_WPList(t *testing.T) {
	list, err := NewSimChip(simTestSize).WPList()
	require.NoError(t, err)
	assert.Contains(t, list, "start=0x00000000 length=0x00000400 (lower)")
	assert.Contains(t, list, "start=0x0000fc00 length=0x00000400 (upper)")
	assert.Contains(t, list, "start=0x00000000 length=0x00010000 (lower)")

	_, err = NewSimChip(simTestSize, WithSimWPListSupported(false)).WPList()
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestSimChip_FaultInjection(t *testing.T) {
	chip := NewSimChip(simTestSize, WithSimName("Winbond", "W25Q64"))
	boom := errors.New("boom")

	chip.FailOn(SimOpName, boom)
	_, _, err := chip.Name()
	require.ErrorIs(t, err, boom)

	chip.FailOn(SimOpName, nil)
	vendor, name, err := chip.Name()
	require.NoError(t, err)
	assert.Equal(t, "Winbond", vendor)
	assert.Equal(t, "W25Q64", name)

	chip.ResetCalls()
	assert.Empty(t, chip.Calls())
}

func TestSimChip_WithContents(t *testing.T) {
	data := bytes.Repeat([]byte{0xa5}, 64)
	chip := NewSimChip(64, WithSimContents(data))

	assert.Equal(t, data, chip.Contents())
}
