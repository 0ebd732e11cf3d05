// internal/procnet/types.go
package procnet

// MaxInterfaceLen is the longest interface name kept on a snapshot.
// Longer names are truncated silently.
const MaxInterfaceLen = 63

// FieldCount is the number of numeric columns per interface in the table.
const FieldCount = 16

// Column indices retained from the table. All others are read and discarded.
const (
	fieldRxBytes   = 0
	fieldRxPackets = 1
	fieldRxErrors  = 2
	fieldRxDrops   = 3
	fieldTxBytes   = 8
	fieldTxPackets = 9
	fieldTxErrors  = 10
	fieldTxDrops   = 11
)

// Timestamp is a monotonic instant split into seconds and nanoseconds.
// The zero value is the degenerate "clock unavailable" instant.
type Timestamp struct {
	Sec  int64
	Nsec int64
}

// IsZero reports whether the timestamp was never captured.
func (t Timestamp) IsZero() bool {
	return t.Sec == 0 && t.Nsec == 0
}

// Snapshot is one observation of an interface's cumulative counters.
// The zero value means "no observation yet".
type Snapshot struct {
	Interface string

	RxBytes   uint64
	RxPackets uint64
	RxErrors  uint64
	RxDrops   uint64

	TxBytes   uint64
	TxPackets uint64
	TxErrors  uint64
	TxDrops   uint64

	Timestamp Timestamp

	// Valid is true iff the interface was found during the read.
	Valid bool
}

// Comparable reports whether two snapshots may be diffed.
func (s Snapshot) Comparable(other Snapshot) bool {
	return s.Valid && other.Valid && s.Interface == other.Interface
}

func truncateName(name string) string {
	if len(name) > MaxInterfaceLen {
		return name[:MaxInterfaceLen]
	}
	return name
}
