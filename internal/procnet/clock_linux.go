//go:build linux

// internal/procnet/clock_linux.go
package procnet

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func monotonicNow() (Timestamp, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return Timestamp{}, errors.Wrap(err, "clock_gettime(CLOCK_MONOTONIC)")
	}
	return Timestamp{Sec: int64(ts.Sec), Nsec: int64(ts.Nsec)}, nil
}
