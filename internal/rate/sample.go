// internal/rate/sample.go
package rate

import "github.com/tamzrod/netmon/internal/procnet"

// Sample is the per-tick output of the engine: raw deltas for all eight
// counters and per-second rates for bytes and packets in each direction.
type Sample struct {
	RxBytes   uint64
	RxPackets uint64
	RxErrors  uint64
	RxDrops   uint64

	TxBytes   uint64
	TxPackets uint64
	TxErrors  uint64
	TxDrops   uint64

	RxByteRate   float64
	RxPacketRate float64
	TxByteRate   float64
	TxPacketRate float64

	Elapsed float64
}

// Compute diffs two snapshots of the same interface.
// No state, no validation: the caller decides whether previous is usable.
func Compute(current, previous procnet.Snapshot, elapsedSeconds float64) Sample {
	s := Sample{
		RxBytes:   Delta(current.RxBytes, previous.RxBytes),
		RxPackets: Delta(current.RxPackets, previous.RxPackets),
		RxErrors:  Delta(current.RxErrors, previous.RxErrors),
		RxDrops:   Delta(current.RxDrops, previous.RxDrops),

		TxBytes:   Delta(current.TxBytes, previous.TxBytes),
		TxPackets: Delta(current.TxPackets, previous.TxPackets),
		TxErrors:  Delta(current.TxErrors, previous.TxErrors),
		TxDrops:   Delta(current.TxDrops, previous.TxDrops),

		Elapsed: elapsedSeconds,
	}

	s.RxByteRate = Rate(s.RxBytes, elapsedSeconds)
	s.RxPacketRate = Rate(s.RxPackets, elapsedSeconds)
	s.TxByteRate = Rate(s.TxBytes, elapsedSeconds)
	s.TxPacketRate = Rate(s.TxPackets, elapsedSeconds)

	return s
}

// Between computes elapsed time from the snapshots' own timestamps.
func Between(current, previous procnet.Snapshot) Sample {
	return Compute(current, previous, Elapsed(previous.Timestamp, current.Timestamp))
}
