package model

import "fmt"

// WriteProtectBits is an observed or requested write protect state.
type WriteProtectBits struct {
	Hardware bool
	Software bool
}

func (b WriteProtectBits) String() string {
	return fmt.Sprintf("HW=%t SW=%t", b.Hardware, b.Software)
}

// Range is a byte range given as start offset and length.
type Range struct {
	Start int64
	Len   int64
}

// End returns the exclusive end offset of the range.
func (r Range) End() int64 {
	return r.Start + r.Len
}

// Contains reports whether offset lies inside the range.
func (r Range) Contains(offset int64) bool {
	return offset >= r.Start && offset < r.End()
}

// Overlaps reports whether the two ranges share at least one byte.
func (r Range) Overlaps(o Range) bool {
	return r.Len > 0 && o.Len > 0 && r.Start < o.End() && o.Start < r.End()
}

// Flags are the behavioural toggles passed to the flash backend.
type Flags struct {
	Force                 bool
	ForceBoardMismatch    bool
	VerifyAfterWrite      bool
	VerifyWholeChip       bool
	SkipUnreadableRegions bool
	SkipUnwritableRegions bool
}

// DefaultFlags returns the flags used for qualification runs.
func DefaultFlags() Flags {
	return Flags{
		VerifyAfterWrite: true,
		VerifyWholeChip:  true,
	}
}

func (f Flags) String() string {
	return fmt.Sprintf(
		"force=%t force_boardmismatch=%t verify_after_write=%t verify_whole_chip=%t skip_unreadable_regions=%t skip_unwritable_regions=%t",
		f.Force, f.ForceBoardMismatch, f.VerifyAfterWrite, f.VerifyWholeChip,
		f.SkipUnreadableRegions, f.SkipUnwritableRegions,
	)
}
