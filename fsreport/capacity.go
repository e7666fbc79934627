package fsreport

// Capacity is a filesystem statistics sample in blocks.
type Capacity struct {
	// BlockSize is the fragment size in bytes all block counts refer to.
	BlockSize   uint64
	Blocks      uint64
	BlocksFree  uint64
	BlocksAvail uint64 // available to unprivileged users
}

// Usage is a Capacity converted to bytes.
type Usage struct {
	Total       uint64
	Free        uint64
	Used        uint64
	Available   uint64
	UsedPercent int
}

// Usage computes byte totals and the used percentage, rounded half up.
// A zero-sized filesystem reports 0%.
func (c Capacity) Usage() Usage {
	u := Usage{
		Total:     c.BlockSize * c.Blocks,
		Free:      c.BlockSize * c.BlocksFree,
		Available: c.BlockSize * c.BlocksAvail,
	}
	if u.Free < u.Total {
		u.Used = u.Total - u.Free
	}
	u.UsedPercent = usedPercent(u.Used, u.Total)
	return u
}

func usedPercent(used, total uint64) int {
	if total == 0 {
		return 0
	}
	return int(float64(used)*100.0/float64(total) + 0.5)
}
