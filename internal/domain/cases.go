package domain

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/flashqual/internal/model"
)

const (
	elogRegion   = "RW_ELOG"
	elogFile     = "elog.file"
	fwMainB      = "FW_MAIN_B"
	fwMainBFile  = "FW_MAIN_B.bin"
	elogMagic    = 0x474f4c45
	elogMagicLen = 4
)

// QualificationCases returns the qualification suite in run order.
func QualificationCases() []Case {
	return []Case{
		NewCase("Get_device_name", deviceNameCase),
		NewCase("Coreboot_ELOG_sanity", elogSanityCase),
		NewCase("Host_is_ChromeOS", hostIsChromeOSCase),
		NewCase("WP_Region_List", wpRegionListCase),
		NewCase("Erase_and_Write", eraseWriteCase),
		NewCase("Fail_to_verify", verifyFailCase),
		NewCase("HWWP_Locks_SWWP", hwwpLocksSwwpCase),
		NewCase("Lock_top_quad", partialLockCase(m.RegionTopQuad)),
		NewCase("Lock_bottom_quad", partialLockCase(m.RegionBottomQuad)),
		NewCase("Lock_bottom_half", partialLockCase(m.RegionBottomHalf)),
		NewCase("Lock_top_half", partialLockCase(m.RegionTopHalf)),
	}
}

// deviceNameCase succeeds when the backend names the chip at all.
func deviceNameCase(env *Env) error {
	_, _, err := env.Backend().Name()
	return err
}

// wpRegionListCase logs the protectable ranges. Platforms without a range
// list only produce a warning.
func wpRegionListCase(env *Env) error {
	list, err := env.Backend().WPList()
	if err != nil {
		env.logger.Warnf("%v", err)
		return nil
	}

	env.logger.Infof("\n%s", list)

	return nil
}

// eraseWriteCase checks that enabled write protect prevents an erase and
// that a released chip can be erased.
func eraseWriteCase(env *Env) error {
	if !env.IsGolden() {
		env.logger.Info("Memory has been modified; reflashing to ensure erasure can be detected")

		if err := env.EnsureGolden(); err != nil {
			return err
		}
	}

	wp := env.WP()

	if err := wp.SetSoftware(true); err != nil {
		return err
	}

	if err := wp.SetHardware(true); err != nil {
		return err
	}

	if err := env.Erase(); err == nil {
		env.logger.Info("Flashrom returned Ok but this may be incorrect; verifying")

		if !env.IsGolden() {
			return errors.New("hardware write protect asserted however can still erase")
		}

		env.logger.Info("Erase claimed to succeed but verify is Ok; assume erase failed")
	}

	if err := wp.SetHardware(false); err != nil {
		return err
	}

	if err := wp.SetSoftware(false); err != nil {
		return err
	}

	if err := env.Erase(); err != nil {
		return err
	}

	if env.IsGolden() {
		return errors.New("successful erase didn't modify memory")
	}

	return nil
}

// hwwpLocksSwwpCase checks that hardware write protect pins software write
// protect.
func hwwpLocksSwwpCase(env *Env) error {
	wp := env.WP()
	if !wp.CanControlHardware() {
		return errors.New("lock test requires ability to control hardware write protect")
	}

	if err := wp.SetHardware(false); err != nil {
		return err
	}

	for _, sw := range []bool{true, false, true} {
		if err := wp.SetSoftware(sw); err != nil {
			return err
		}
	}

	if err := wp.SetHardware(true); err != nil {
		return err
	}

	if err := wp.SetSoftware(false); err == nil {
		return errors.New("software WP was reset despite hardware WP being enabled")
	}

	return nil
}

// elogSanityCase checks the coreboot event log carries its magic, showing
// firmware can write the flash. Only host chips run coreboot.
func elogSanityCase(env *Env) error {
	if env.Target() != m.TargetHost && env.Target() != m.TargetSim {
		env.logger.Info("Skipping ELOG sanity check for non-internal chip")
		return nil
	}

	if err := env.EnsureGolden(); err != nil {
		return err
	}

	path := m.Path(filepath.Join(string(env.WorkDir()), elogFile))
	if err := env.Backend().ReadRegionIntoFile(path, elogRegion); err != nil {
		return err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return fmt.Errorf("failed to read ELOG dump: %w", err)
	}

	if len(data) < elogMagicLen {
		return errors.New("ELOG contained no data")
	}

	if binary.LittleEndian.Uint32(data) != elogMagic {
		return errors.New("ELOG had bad magic number")
	}

	return nil
}

// hostIsChromeOSCase checks the os-release ID of the test host.
func hostIsChromeOSCase(env *Env) error {
	release := map[string]string{}

	if probe := env.Probe(); probe != nil {
		values, err := probe.OSRelease()
		if err != nil {
			env.logger.Infof("Unable to read /etc/os-release to probe system information: %v", err)
		} else {
			release = values
		}
	}

	id, ok := release["ID"]
	if ok && (id == "chromeos" || id == "chromiumos") {
		return nil
	}

	if !ok {
		id = "UNKNOWN"
	}

	return fmt.Errorf("test host os-release %q should be but is not chromeos", id)
}

// partialLockCase protects section, checks writes to it are refused and
// that the opposite section stays writable.
func partialLockCase(section m.RegionName) func(*Env) error {
	return func(env *Env) error {
		if err := env.EnsureGolden(); err != nil {
			return err
		}

		wp := env.WP()
		region := env.Layout().Section(section)

		if err := wp.SetHardware(false); err != nil {
			return err
		}

		// Hardware write protect keeps flashrom from releasing the range
		// during the write.
		if err := wp.SetRange(region.Range, true); err != nil {
			return err
		}

		if err := wp.SetHardware(true); err != nil {
			return err
		}

		backend := env.Backend()

		if err := backend.WriteFromFileRegion(env.RandomDataFile(), string(region.Name), env.LayoutFile()); err == nil {
			return errors.New("section should be locked, should not have been overwritable with random data")
		}

		if !env.IsGolden() {
			return errors.New("section didn't lock, has been overwritten with random data")
		}

		other := section.NonOverlapping()

		return backend.WriteFromFileRegion(env.RandomDataFile(), string(other), env.LayoutFile())
	}
}

// verifyFailCase checks verify accepts matching data and rejects random
// data. Only FW_MAIN_B is compared since coprocessors may write elsewhere.
func verifyFailCase(env *Env) error {
	if err := env.EnsureGolden(); err != nil {
		return err
	}

	path := m.Path(filepath.Join(string(env.WorkDir()), fwMainBFile))
	backend := env.Backend()

	if err := backend.ReadRegionIntoFile(path, fwMainB); err != nil {
		return err
	}

	if err := backend.VerifyRegionFromFile(path, fwMainB); err != nil {
		return err
	}

	if err := env.Verify(env.RandomDataFile()); err == nil {
		return errors.New("verification says flash is full of random data")
	}

	return nil
}
