// internal/rate/rate.go
package rate

import "github.com/tamzrod/netmon/internal/procnet"

// wrap32 is the counter span assumed when a counter goes backwards.
const wrap32 uint64 = 1 << 32

// Delta returns the counter increase from previous to current.
//
// A decrease is read as a single 32-bit wraparound even though counters are
// stored as 64 bits. A real 64-bit counter reset is therefore reported as a
// huge delta; this is kept on purpose and covered by tests.
func Delta(current, previous uint64) uint64 {
	if current >= previous {
		return current - previous
	}
	return (wrap32 - previous) + current
}

// Rate converts a delta into a per-second value.
// Non-positive elapsed time yields exactly zero.
func Rate(delta uint64, elapsedSeconds float64) float64 {
	if elapsedSeconds <= 0 {
		return 0
	}
	return float64(delta) / elapsedSeconds
}

// Elapsed returns end-start in seconds.
// A zero (clock unavailable) endpoint makes the result meaningless but never panics.
func Elapsed(start, end procnet.Timestamp) float64 {
	diff := float64(end.Sec - start.Sec)
	diff += float64(end.Nsec-start.Nsec) / 1e9
	return diff
}
