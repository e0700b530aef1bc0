// Package format renders byte counts for human consumption.
package format

import (
	"fmt"
	"math"
)

var units = []string{"B", "KB", "MB", "GB", "TB"}

// Format renders a byte count with an adaptive unit and precision:
// whole values drop the fraction, small values keep two decimals.
func Format(bytes int) string {
	if bytes == 0 {
		return "0 B"
	}

	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	switch {
	case size == math.Trunc(size):
		return fmt.Sprintf("%.0f %s", size, units[unit])
	case size < 10:
		return fmt.Sprintf("%.2f %s", size, units[unit])
	case size < 100:
		return fmt.Sprintf("%.1f %s", size, units[unit])
	default:
		return fmt.Sprintf("%.0f %s", size, units[unit])
	}
}

// FormatAsUnit renders a byte count in the largest unit that divides it
// evenly, without decimals. Intended for configured limits, which are
// normally round numbers.
func FormatAsUnit(bytes int) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
	)

	switch {
	case bytes >= gb && bytes%gb == 0:
		return fmt.Sprintf("%dGB", bytes/gb)
	case bytes >= mb && bytes%mb == 0:
		return fmt.Sprintf("%dMB", bytes/mb)
	case bytes >= kb && bytes%kb == 0:
		return fmt.Sprintf("%dKB", bytes/kb)
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}
