// Package domain holds the qualification logic: layout planning, the write
// protect scope stack, the test environment and the case sequencer.
package domain

import (
	"errors"
	"fmt"
	"io"

	m "github.com/mouse-blink/flashqual/internal/model"
)

// Layout is the quarter and half partition of a chip. Chips smaller than
// four bytes have empty quarters.
type Layout struct {
	size int64
}

// PlanLayout partitions a chip of size bytes. size must be a positive power
// of two.
func PlanLayout(size int64) (Layout, error) {
	if size <= 0 {
		return Layout{}, errors.New("invalid rom size provided")
	}

	if size&(size-1) != 0 {
		return Layout{}, errors.New("invalid rom size, not a power of 2")
	}

	return Layout{size: size}, nil
}

// Size returns the chip size.
func (l Layout) Size() int64 {
	return l.size
}

// Section returns the half-open byte range of name.
func (l Layout) Section(name m.RegionName) m.Region {
	quad, half := l.size/4, l.size/2

	var r m.Range

	switch name {
	case m.RegionTopQuad:
		r = m.Range{Start: l.size - quad, Len: quad}
	case m.RegionTopHalf:
		r = m.Range{Start: half, Len: l.size - half}
	case m.RegionBottomQuad:
		r = m.Range{Start: 0, Len: quad}
	case m.RegionBottomHalf:
		r = m.Range{Start: 0, Len: half}
	}

	return m.Region{Name: name, Range: r}
}

// Regions returns the sections in layout file order, empty ones included.
func (l Layout) Regions() []m.Region {
	return []m.Region{
		l.Section(m.RegionBottomQuad),
		l.Section(m.RegionBottomHalf),
		l.Section(m.RegionTopHalf),
		l.Section(m.RegionTopQuad),
	}
}

// WriteTo renders the layout file: "start:end NAME" per line with
// inclusive lowercase hex bounds. Empty sections are left out.
func (l Layout) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, region := range l.Regions() {
		if region.Len == 0 {
			continue
		}

		start := fmt.Sprintf("%x", region.Start)
		if region.Start == 0 {
			start = "000000"
		}

		n, err := fmt.Fprintf(w, "%s:%x %s\n", start, region.End()-1, region.Name)
		total += int64(n)

		if err != nil {
			return total, err
		}
	}

	return total, nil
}
