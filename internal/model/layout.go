package model

// RegionName names one of the partitions computed for a chip.
type RegionName string

const (
	// RegionBottomQuad is [0, N/4).
	RegionBottomQuad RegionName = "BOTTOM_QUAD"
	// RegionBottomHalf is [0, N/2).
	RegionBottomHalf RegionName = "BOTTOM_HALF"
	// RegionTopHalf is [N/2, N).
	RegionTopHalf RegionName = "TOP_HALF"
	// RegionTopQuad is [3N/4, N).
	RegionTopQuad RegionName = "TOP_QUAD"
)

// NonOverlapping returns the sibling region that shares no bytes with r.
func (r RegionName) NonOverlapping() RegionName {
	switch r {
	case RegionTopQuad:
		return RegionBottomQuad
	case RegionBottomQuad:
		return RegionTopQuad
	case RegionTopHalf:
		return RegionBottomHalf
	case RegionBottomHalf:
		return RegionTopHalf
	default:
		return r
	}
}

// Region is a named byte range of the chip.
type Region struct {
	Name RegionName
	Range
}
