package adapter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	m "github.com/mouse-blink/flashqual/internal/model"
)

// ParseLayout reads a layout file: one "HEXSTART:HEXEND NAME" line per
// region with inclusive ends. Blank lines and '#' comments are skipped.
func ParseLayout(r io.Reader) ([]m.Region, error) {
	var regions []m.Region

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		region, err := parseLayoutLine(line)
		if err != nil {
			return nil, fmt.Errorf("layout line %d: %w", lineNo, err)
		}

		regions = append(regions, region)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}

	return regions, nil
}

// ReadLayoutFile parses the layout file at path.
func ReadLayoutFile(path m.Path) ([]m.Region, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open layout file: %w", err)
	}
	defer f.Close()

	return ParseLayout(f)
}

// FindRegion returns the region called name.
func FindRegion(regions []m.Region, name string) (m.Region, error) {
	for _, r := range regions {
		if string(r.Name) == name {
			return r, nil
		}
	}

	return m.Region{}, fmt.Errorf("region %q not found in layout", name)
}

func parseLayoutLine(line string) (m.Region, error) {
	bounds, name, ok := strings.Cut(line, " ")
	if !ok {
		return m.Region{}, fmt.Errorf("missing region name in %q", line)
	}

	startHex, endHex, ok := strings.Cut(bounds, ":")
	if !ok {
		return m.Region{}, fmt.Errorf("missing ':' in %q", bounds)
	}

	start, err := strconv.ParseInt(startHex, 16, 64)
	if err != nil {
		return m.Region{}, fmt.Errorf("bad start offset %q: %w", startHex, err)
	}

	end, err := strconv.ParseInt(endHex, 16, 64)
	if err != nil {
		return m.Region{}, fmt.Errorf("bad end offset %q: %w", endHex, err)
	}

	if end < start {
		return m.Region{}, fmt.Errorf("end 0x%x precedes start 0x%x", end, start)
	}

	return m.Region{
		Name:  m.RegionName(strings.TrimSpace(name)),
		Range: m.Range{Start: start, Len: end - start + 1},
	}, nil
}
