package forecast

import (
	"strconv"
	"strings"

	"surfcast/internal/wire"
)

// MaxValue scans every slot of one row across all fifteen day-blobs of a
// file and returns the largest integer cell. Cells that fail to parse are
// skipped; an absent file or row yields 0.
func MaxValue(f *wire.File, row int, tenths bool) float64 {
	if f == nil {
		return 0
	}
	max := 0
	for _, blob := range f.V {
		if blob == "" {
			continue
		}
		rows := strings.Split(blob, ";")
		if row >= len(rows) {
			continue
		}
		for _, cell := range strings.Split(rows[row], ":") {
			if n, err := strconv.Atoi(cell); err == nil && n > max {
				max = n
			}
		}
	}
	if tenths {
		return float64(max) / 10
	}
	return float64(max)
}
