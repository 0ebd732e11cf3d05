//go:build !linux

// internal/procnet/clock_other.go
package procnet

import "time"

var processStart = time.Now()

// time.Since uses the runtime's monotonic reading.
func monotonicNow() (Timestamp, error) {
	d := time.Since(processStart)
	return Timestamp{Sec: int64(d / time.Second), Nsec: int64(d % time.Second)}, nil
}
