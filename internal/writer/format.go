// internal/writer/format.go
package writer

import (
	"fmt"
	"strconv"
)

var (
	byteUnits = []string{"B", "KB", "MB", "GB", "TB"}
	rateUnits = []string{"B/s", "KB/s", "MB/s", "GB/s"}
)

// FormatBytes scales a byte count by 1024 up to TB.
// Plain bytes are integers; every other unit carries one decimal.
func FormatBytes(n uint64) string {
	value := float64(n)
	idx := 0
	for value >= 1024 && idx < len(byteUnits)-1 {
		value /= 1024
		idx++
	}

	if idx == 0 {
		return strconv.FormatUint(n, 10) + " " + byteUnits[0]
	}
	return fmt.Sprintf("%.1f %s", value, byteUnits[idx])
}

// FormatRate scales a bytes-per-second value up to GB/s.
// Anything below 1 renders as "0 B/s".
func FormatRate(rate float64) string {
	if rate < 1 {
		return "0 B/s"
	}

	value := rate
	idx := 0
	for value >= 1024 && idx < len(rateUnits)-1 {
		value /= 1024
		idx++
	}

	if idx == 0 {
		return fmt.Sprintf("%.0f %s", value, rateUnits[0])
	}
	return fmt.Sprintf("%.1f %s", value, rateUnits[idx])
}

// FormatPacketRate renders packets per second as a bare integer.
func FormatPacketRate(rate float64) string {
	return fmt.Sprintf("%.0f", rate)
}
