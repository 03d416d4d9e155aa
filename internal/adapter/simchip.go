package adapter

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	m "github.com/mouse-blink/flashqual/internal/model"
)

// SimOp names a SimChip operation for fault injection and call tracing.
type SimOp string

// Operations recorded by SimChip.
const (
	SimOpSize        SimOp = "size"
	SimOpName        SimOp = "name"
	SimOpWPRange     SimOp = "wp_range"
	SimOpWPList      SimOp = "wp_list"
	SimOpWPStatus    SimOp = "wp_status"
	SimOpWPToggle    SimOp = "wp_toggle"
	SimOpRead        SimOp = "read"
	SimOpReadRegion  SimOp = "read_region"
	SimOpWrite       SimOp = "write"
	SimOpWriteRegion SimOp = "write_region"
	SimOpVerify      SimOp = "verify"
	SimOpVerifyRgn   SimOp = "verify_region"
	SimOpErase       SimOp = "erase"
	SimOpHWGet       SimOp = "hw_get"
	SimOpHWSet       SimOp = "hw_set"
)

// ErrWriteProtected is returned when an operation touches protected bytes.
var ErrWriteProtected = errors.New("operation touches a write protected range")

// ELOGMagic is the little-endian magic at the start of a coreboot event log.
const ELOGMagic uint32 = 0x474f4c45

// SimChip is an in-memory flash chip with a software protected range and a
// hardware write protect line. Software protection cannot be changed while
// the hardware line is asserted, and writes or erases touching changed bytes
// inside the protected range are refused.
type SimChip struct {
	data     []byte
	vendor   string
	chipName string
	fmap     []m.Region

	hwControl bool
	hwWP      bool
	swWP      bool
	swRange   m.Range

	wpListSupported bool
	flags           m.Flags

	failures map[SimOp]error
	calls    []string
}

// SimOption configures a SimChip.
type SimOption func(*SimChip)

// WithSimContents sets the initial chip contents; it must match the size.
func WithSimContents(data []byte) SimOption {
	return func(s *SimChip) {
		copy(s.data, data)
	}
}

// WithSimName sets the reported vendor and chip name.
func WithSimName(vendor, name string) SimOption {
	return func(s *SimChip) {
		s.vendor = vendor
		s.chipName = name
	}
}

// WithSimHardwareControl states whether the hardware line can be driven.
func WithSimHardwareControl(enabled bool) SimOption {
	return func(s *SimChip) {
		s.hwControl = enabled
	}
}

// WithSimWriteProtect sets the initial hardware and software protect state.
// An enabled software protect covers the whole chip.
func WithSimWriteProtect(bits m.WriteProtectBits) SimOption {
	return func(s *SimChip) {
		s.hwWP = bits.Hardware
		s.swWP = bits.Software

		if bits.Software {
			s.swRange = m.Range{Start: 0, Len: int64(len(s.data))}
		}
	}
}

// WithSimWPListSupported controls whether WPList reports ErrUnsupported.
func WithSimWPListSupported(supported bool) SimOption {
	return func(s *SimChip) {
		s.wpListSupported = supported
	}
}

// NewSimChip creates a chip of size bytes filled with deterministic noise,
// carrying an FMAP with RW_ELOG and FW_MAIN_B regions.
func NewSimChip(size int64, opts ...SimOption) *SimChip {
	s := &SimChip{
		data:            make([]byte, size),
		vendor:          "SST",
		chipName:        "SST25VF032B",
		hwControl:       true,
		wpListSupported: true,
		flags:           m.DefaultFlags(),
		failures:        make(map[SimOp]error),
	}

	rng := rand.New(rand.NewPCG(uint64(size), 0x5eed))
	for i := range s.data {
		s.data[i] = byte(rng.UintN(256))
	}

	s.fmap = []m.Region{
		{Name: "RW_ELOG", Range: m.Range{Start: size / 8, Len: size / 16}},
		{Name: "FW_MAIN_B", Range: m.Range{Start: size / 2, Len: size / 8}},
	}
	if size >= 64 {
		binary.LittleEndian.PutUint32(s.data[size/8:], ELOGMagic)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// FailOn makes every later call of op return err; a nil err clears it.
func (s *SimChip) FailOn(op SimOp, err error) {
	if err == nil {
		delete(s.failures, op)
		return
	}

	s.failures[op] = err
}

// Calls returns the traced operations, oldest first.
func (s *SimChip) Calls() []string {
	return append([]string(nil), s.calls...)
}

// ResetCalls clears the call trace.
func (s *SimChip) ResetCalls() {
	s.calls = nil
}

// Contents returns a copy of the chip contents.
func (s *SimChip) Contents() []byte {
	return bytes.Clone(s.data)
}

// Bits returns the actual write protect state of the chip.
func (s *SimChip) Bits() m.WriteProtectBits {
	return m.WriteProtectBits{Hardware: s.hwWP, Software: s.swWP}
}

// HardwareLine returns the chip's hardware write protect line.
func (s *SimChip) HardwareLine() HardwareWP {
	return simLine{chip: s}
}

// Size returns the chip size.
func (s *SimChip) Size() (int64, error) {
	if err := s.enter(SimOpSize, ""); err != nil {
		return 0, err
	}

	return int64(len(s.data)), nil
}

// Name returns the configured vendor and chip name.
func (s *SimChip) Name() (string, string, error) {
	if err := s.enter(SimOpName, ""); err != nil {
		return "", "", err
	}

	return s.vendor, s.chipName, nil
}

// WPRange protects r, or clears protection when enable is false.
func (s *SimChip) WPRange(r m.Range, enable bool) error {
	if err := s.enter(SimOpWPRange, fmt.Sprintf("%#x+%#x:%t", r.Start, r.Len, enable)); err != nil {
		return err
	}

	return s.setSoftware(r, enable)
}

// WPList lists the protectable ranges: every power-of-two block aligned to
// the top or the bottom of the chip.
func (s *SimChip) WPList() (string, error) {
	if err := s.enter(SimOpWPList, ""); err != nil {
		return "", err
	}

	if !s.wpListSupported {
		return "", fmt.Errorf("simulated chip has no range list: %w", ErrUnsupported)
	}

	var b strings.Builder

	size := int64(len(s.data))
	b.WriteString("Available protection ranges:\n")
	fmt.Fprintf(&b, "\tstart=0x%08x length=0x%08x (none)\n", 0, 0)

	for l := size / 64; l > 0 && l <= size; l *= 2 {
		fmt.Fprintf(&b, "\tstart=0x%08x length=0x%08x (lower)\n", 0, l)

		if l != size {
			fmt.Fprintf(&b, "\tstart=0x%08x length=0x%08x (upper)\n", size-l, l)
		}
	}

	return b.String(), nil
}

// WPStatus reports whether software protection equals enabled.
func (s *SimChip) WPStatus(enabled bool) (bool, error) {
	if err := s.enter(SimOpWPStatus, ""); err != nil {
		return false, err
	}

	return s.swWP == enabled, nil
}

// WPToggle protects or releases the whole chip.
func (s *SimChip) WPToggle(enable bool) error {
	if err := s.enter(SimOpWPToggle, fmt.Sprintf("%t", enable)); err != nil {
		return err
	}

	r := m.Range{}
	if enable {
		r = m.Range{Start: 0, Len: int64(len(s.data))}
	}

	return s.setSoftware(r, enable)
}

// ReadIntoFile dumps the chip.
func (s *SimChip) ReadIntoFile(path m.Path) error {
	if err := s.enter(SimOpRead, string(path)); err != nil {
		return err
	}

	return writeFile(path, s.data)
}

// ReadRegionIntoFile dumps one FMAP region.
func (s *SimChip) ReadRegionIntoFile(path m.Path, region string) error {
	if err := s.enter(SimOpReadRegion, region); err != nil {
		return err
	}

	r, err := FindRegion(s.fmap, region)
	if err != nil {
		return err
	}

	return writeFile(path, s.data[r.Start:r.End()])
}

// WriteFromFile programs the whole chip.
func (s *SimChip) WriteFromFile(path m.Path) error {
	if err := s.enter(SimOpWrite, string(path)); err != nil {
		return err
	}

	img, err := s.readImage(path)
	if err != nil {
		return err
	}

	return s.program(img, m.Range{Start: 0, Len: int64(len(s.data))})
}

// WriteFromFileRegion programs only region, located through the layout file.
func (s *SimChip) WriteFromFileRegion(path m.Path, region string, layout m.Path) error {
	if err := s.enter(SimOpWriteRegion, region); err != nil {
		return err
	}

	regions, err := ReadLayoutFile(layout)
	if err != nil {
		return err
	}

	r, err := FindRegion(regions, region)
	if err != nil {
		return err
	}

	if r.End() > int64(len(s.data)) {
		return fmt.Errorf("region %s ends past the chip", region)
	}

	img, err := s.readImage(path)
	if err != nil {
		return err
	}

	return s.program(img, r.Range)
}

// VerifyFromFile compares the chip with a full image.
func (s *SimChip) VerifyFromFile(path m.Path) error {
	if err := s.enter(SimOpVerify, string(path)); err != nil {
		return err
	}

	img, err := s.readImage(path)
	if err != nil {
		return err
	}

	return compareAt(s.data, img, 0)
}

// VerifyRegionFromFile compares one FMAP region with a region-sized file.
func (s *SimChip) VerifyRegionFromFile(path m.Path, region string) error {
	if err := s.enter(SimOpVerifyRgn, region); err != nil {
		return err
	}

	r, err := FindRegion(s.fmap, region)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if int64(len(data)) != r.Len {
		return fmt.Errorf("verify region range (%d) does not match provided file size (%d)", r.Len, len(data))
	}

	return compareAt(s.data[r.Start:r.End()], data, r.Start)
}

// Erase sets every byte to 0xff.
func (s *SimChip) Erase() error {
	if err := s.enter(SimOpErase, ""); err != nil {
		return err
	}

	erased := bytes.Repeat([]byte{0xff}, len(s.data))

	return s.program(erased, m.Range{Start: 0, Len: int64(len(s.data))})
}

// CanControlHWWP reports whether the hardware line can be driven.
func (s *SimChip) CanControlHWWP() bool {
	return s.hwControl
}

// SetFlags records the flags; Force bypasses software protection.
func (s *SimChip) SetFlags(flags m.Flags) {
	s.flags = flags
}

func (s *SimChip) enter(op SimOp, detail string) error {
	entry := string(op)
	if detail != "" {
		entry += " " + detail
	}

	s.calls = append(s.calls, entry)

	return s.failures[op]
}

func (s *SimChip) setSoftware(r m.Range, enable bool) error {
	if s.hwWP {
		return fmt.Errorf("status register is locked by hardware write protect: %w", ErrWriteProtected)
	}

	s.swWP = enable
	s.swRange = m.Range{}

	if enable {
		s.swRange = r
	}

	return nil
}

// program writes img into window, refusing if a changed byte is protected.
func (s *SimChip) program(img []byte, window m.Range) error {
	if s.swWP && !s.flags.Force {
		for off := window.Start; off < window.End(); off++ {
			if s.swRange.Contains(off) && s.data[off] != img[off] {
				return fmt.Errorf("byte 0x%x: %w", off, ErrWriteProtected)
			}
		}
	}

	copy(s.data[window.Start:window.End()], img[window.Start:window.End()])

	return nil
}

func (s *SimChip) readImage(path m.Path) ([]byte, error) {
	img, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if len(img) != len(s.data) {
		return nil, fmt.Errorf("image size %d does not match chip size %d", len(img), len(s.data))
	}

	return img, nil
}

func compareAt(chip, want []byte, base int64) error {
	if len(chip) != len(want) {
		return fmt.Errorf("verification failed: size %d differs from %d", len(want), len(chip))
	}

	for i := range chip {
		if chip[i] != want[i] {
			return fmt.Errorf("verification failed at offset 0x%x", base+int64(i))
		}
	}

	return nil
}

func writeFile(path m.Path, data []byte) error {
	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// simLine is the hardware write protect line of a SimChip.
type simLine struct {
	chip *SimChip
}

func (l simLine) Get() (bool, error) {
	if err := l.chip.enter(SimOpHWGet, ""); err != nil {
		return false, err
	}

	return l.chip.hwWP, nil
}

func (l simLine) Set(enable bool) error {
	if err := l.chip.enter(SimOpHWSet, fmt.Sprintf("%t", enable)); err != nil {
		return err
	}

	if !l.chip.hwControl {
		return errors.New("simulated chip has no controllable hardware write protect")
	}

	l.chip.hwWP = enable

	return nil
}
