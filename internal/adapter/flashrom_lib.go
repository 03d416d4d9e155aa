//go:build libflashrom

package adapter

/*
#cgo pkg-config: flashrom
#include <stdbool.h>
#include <stdlib.h>
#include <libflashrom.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unsafe"

	"github.com/charmbracelet/log"

	m "github.com/mouse-blink/flashqual/internal/model"
)

// FlashromLib drives the chip through libflashrom in process.
type FlashromLib struct {
	prog   *C.struct_flashrom_programmer
	ctx    *C.struct_flashrom_flashctx
	target m.FlashTarget
	logger *log.Logger
}

// NewFlashromLib initialises libflashrom and probes the chip of target.
func NewFlashromLib(target m.FlashTarget, logger *log.Logger) (*FlashromLib, error) {
	if rc := C.flashrom_init(1); rc != 0 {
		return nil, fmt.Errorf("flashrom_init failed: %d", int(rc))
	}

	name, params := target.Programmer()

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var cParams *C.char
	if params != "" {
		cParams = C.CString(params)
		defer C.free(unsafe.Pointer(cParams))
	}

	l := &FlashromLib{target: target, logger: logger}

	if rc := C.flashrom_programmer_init(&l.prog, cName, cParams); rc != 0 {
		return nil, fmt.Errorf("programmer %s init failed: %d", target.ProgrammerArg(), int(rc))
	}

	if rc := C.flashrom_flash_probe(&l.ctx, l.prog, nil); rc != 0 {
		C.flashrom_programmer_shutdown(l.prog)
		return nil, fmt.Errorf("flash probe failed: %d", int(rc))
	}

	return l, nil
}

// Close releases the chip and shuts the programmer down.
func (l *FlashromLib) Close() error {
	C.flashrom_flash_release(l.ctx)

	if rc := C.flashrom_programmer_shutdown(l.prog); rc != 0 {
		return fmt.Errorf("programmer shutdown failed: %d", int(rc))
	}

	C.flashrom_shutdown()

	return nil
}

func (l *FlashromLib) Size() (int64, error) {
	return int64(C.flashrom_flash_getsize(l.ctx)), nil
}

// Name is not exposed by libflashrom.
func (l *FlashromLib) Name() (string, string, error) {
	return "not", "implemented", nil
}

func (l *FlashromLib) WPRange(r m.Range, enable bool) error {
	var cfg *C.struct_flashrom_wp_cfg
	if rc := C.flashrom_wp_cfg_new(&cfg); rc != C.FLASHROM_WP_OK {
		return wpError("wp_cfg_new", rc)
	}
	defer C.flashrom_wp_cfg_release(cfg)

	mode := C.enum_flashrom_wp_mode(C.FLASHROM_WP_MODE_DISABLED)
	if enable {
		mode = C.FLASHROM_WP_MODE_HARDWARE
	}

	C.flashrom_wp_set_range(cfg, C.size_t(r.Start), C.size_t(r.Len))
	C.flashrom_wp_set_mode(cfg, mode)

	if rc := C.flashrom_wp_write_cfg(l.ctx, cfg); rc != C.FLASHROM_WP_OK {
		return wpError("wp_write_cfg", rc)
	}

	return nil
}

func (l *FlashromLib) WPList() (string, error) {
	var ranges *C.struct_flashrom_wp_ranges
	if rc := C.flashrom_wp_get_available_ranges(&ranges, l.ctx); rc != C.FLASHROM_WP_OK {
		return "", wpError("wp_get_available_ranges", rc)
	}
	defer C.flashrom_wp_ranges_release(ranges)

	var b strings.Builder

	count := C.flashrom_wp_ranges_get_count(ranges)
	for i := C.size_t(0); i < count; i++ {
		var start, length C.size_t
		if rc := C.flashrom_wp_ranges_get_range(&start, &length, ranges, C.uint(i)); rc != C.FLASHROM_WP_OK {
			return "", wpError("wp_ranges_get_range", rc)
		}

		fmt.Fprintf(&b, "start=0x%08x length=0x%08x\n", uint64(start), uint64(length))
	}

	return b.String(), nil
}

func (l *FlashromLib) WPStatus(enabled bool) (bool, error) {
	var cfg *C.struct_flashrom_wp_cfg
	if rc := C.flashrom_wp_cfg_new(&cfg); rc != C.FLASHROM_WP_OK {
		return false, wpError("wp_cfg_new", rc)
	}
	defer C.flashrom_wp_cfg_release(cfg)

	if rc := C.flashrom_wp_read_cfg(cfg, l.ctx); rc != C.FLASHROM_WP_OK {
		return false, wpError("wp_read_cfg", rc)
	}

	disabled := C.flashrom_wp_get_mode(cfg) == C.FLASHROM_WP_MODE_DISABLED

	return disabled != enabled, nil
}

func (l *FlashromLib) WPToggle(enable bool) error {
	r := m.Range{}

	if enable {
		size, err := l.Size()
		if err != nil {
			return err
		}

		r.Len = size
	}

	return l.WPRange(r, enable)
}

func (l *FlashromLib) ReadIntoFile(path m.Path) error {
	buf, err := l.readImage()
	if err != nil {
		return err
	}

	return writeFile(path, buf)
}

func (l *FlashromLib) ReadRegionIntoFile(path m.Path, region string) error {
	r, err := l.fmapRegion(region)
	if err != nil {
		return err
	}

	buf, err := l.readImage()
	if err != nil {
		return err
	}

	return writeFile(path, buf[r.Start:r.End()])
}

func (l *FlashromLib) WriteFromFile(path m.Path) error {
	buf, err := os.ReadFile(string(path))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	return l.writeImage(buf, nil)
}

func (l *FlashromLib) WriteFromFileRegion(path m.Path, region string, layout m.Path) error {
	regions, err := ReadLayoutFile(layout)
	if err != nil {
		return err
	}

	if _, err := FindRegion(regions, region); err != nil {
		return err
	}

	buf, err := os.ReadFile(string(path))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var lay *C.struct_flashrom_layout
	if rc := C.flashrom_layout_new(&lay); rc != 0 {
		return fmt.Errorf("layout_new failed: %d", int(rc))
	}
	defer C.flashrom_layout_release(lay)

	for _, r := range regions {
		cName := C.CString(string(r.Name))
		rc := C.flashrom_layout_add_region(lay, C.size_t(r.Start), C.size_t(r.End()-1), cName)
		C.free(unsafe.Pointer(cName))

		if rc != 0 {
			return fmt.Errorf("layout_add_region %s failed: %d", r.Name, int(rc))
		}
	}

	cRegion := C.CString(region)
	defer C.free(unsafe.Pointer(cRegion))

	if rc := C.flashrom_layout_include_region(lay, cRegion); rc != 0 {
		return fmt.Errorf("layout_include_region %s failed: %d", region, int(rc))
	}

	return l.writeImage(buf, lay)
}

func (l *FlashromLib) VerifyFromFile(path m.Path) error {
	buf, err := os.ReadFile(string(path))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	return l.verifyImage(buf, nil)
}

func (l *FlashromLib) VerifyRegionFromFile(path m.Path, region string) error {
	r, err := l.fmapRegion(region)
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

	size, _ := l.Size()
	buf := make([]byte, size)
	copy(buf[r.Start:], data)

	lay, err := l.readFmap()
	if err != nil {
		return err
	}
	defer C.flashrom_layout_release(lay)

	cRegion := C.CString(region)
	defer C.free(unsafe.Pointer(cRegion))

	if rc := C.flashrom_layout_include_region(lay, cRegion); rc != 0 {
		return fmt.Errorf("layout_include_region %s failed: %d", region, int(rc))
	}

	return l.verifyImage(buf, lay)
}

func (l *FlashromLib) Erase() error {
	if rc := C.flashrom_flash_erase(l.ctx); rc != 0 {
		return fmt.Errorf("flash erase failed: %d", int(rc))
	}

	return nil
}

func (l *FlashromLib) CanControlHWWP() bool {
	return l.target.CanControlHWWP()
}

func (l *FlashromLib) SetFlags(flags m.Flags) {
	set := func(flag C.enum_flashrom_flag, value bool) {
		C.flashrom_flag_set(l.ctx, flag, C.bool(value))
	}

	set(C.FLASHROM_FLAG_FORCE, flags.Force)
	set(C.FLASHROM_FLAG_FORCE_BOARDMISMATCH, flags.ForceBoardMismatch)
	set(C.FLASHROM_FLAG_VERIFY_AFTER_WRITE, flags.VerifyAfterWrite)
	set(C.FLASHROM_FLAG_VERIFY_WHOLE_CHIP, flags.VerifyWholeChip)
	set(C.FLASHROM_FLAG_SKIP_UNREADABLE_REGIONS, flags.SkipUnreadableRegions)
	set(C.FLASHROM_FLAG_SKIP_UNWRITABLE_REGIONS, flags.SkipUnwritableRegions)
}

func (l *FlashromLib) readImage() ([]byte, error) {
	size, _ := l.Size()
	buf := make([]byte, size)

	if rc := C.flashrom_image_read(l.ctx, unsafe.Pointer(&buf[0]), C.size_t(len(buf))); rc != 0 {
		return nil, fmt.Errorf("image read failed: %d", int(rc))
	}

	return buf, nil
}

func (l *FlashromLib) writeImage(buf []byte, lay *C.struct_flashrom_layout) error {
	if len(buf) == 0 {
		return errors.New("refusing to write an empty image")
	}

	C.flashrom_layout_set(l.ctx, lay)
	defer C.flashrom_layout_set(l.ctx, nil)

	if rc := C.flashrom_image_write(l.ctx, unsafe.Pointer(&buf[0]), C.size_t(len(buf)), nil); rc != 0 {
		return fmt.Errorf("image write failed: %d", int(rc))
	}

	return nil
}

func (l *FlashromLib) verifyImage(buf []byte, lay *C.struct_flashrom_layout) error {
	if len(buf) == 0 {
		return errors.New("refusing to verify an empty image")
	}

	C.flashrom_layout_set(l.ctx, lay)
	defer C.flashrom_layout_set(l.ctx, nil)

	if rc := C.flashrom_image_verify(l.ctx, unsafe.Pointer(&buf[0]), C.size_t(len(buf))); rc != 0 {
		return fmt.Errorf("image verify failed: %d", int(rc))
	}

	return nil
}

func (l *FlashromLib) readFmap() (*C.struct_flashrom_layout, error) {
	size, _ := l.Size()

	var lay *C.struct_flashrom_layout
	if rc := C.flashrom_layout_read_fmap_from_rom(&lay, l.ctx, 0, C.size_t(size)); rc != 0 {
		return nil, fmt.Errorf("layout_read_fmap_from_rom failed: %d", int(rc))
	}

	return lay, nil
}

func (l *FlashromLib) fmapRegion(region string) (m.Range, error) {
	lay, err := l.readFmap()
	if err != nil {
		return m.Range{}, err
	}
	defer C.flashrom_layout_release(lay)

	cRegion := C.CString(region)
	defer C.free(unsafe.Pointer(cRegion))

	var start, length C.uint
	if rc := C.flashrom_layout_get_region_range(lay, cRegion, &start, &length); rc != 0 {
		return m.Range{}, fmt.Errorf("region %q not in fmap", region)
	}

	return m.Range{Start: int64(start), Len: int64(length)}, nil
}

func wpError(op string, rc C.enum_flashrom_wp_result) error {
	switch rc {
	case C.FLASHROM_WP_ERR_CHIP_UNSUPPORTED, C.FLASHROM_WP_ERR_RANGE_LIST_UNAVAILABLE:
		return fmt.Errorf("%s: %w", op, ErrUnsupported)
	default:
		return fmt.Errorf("%s failed: %d", op, int(rc))
	}
}
