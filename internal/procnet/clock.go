// internal/procnet/clock.go
package procnet

// Monotonic is a clock that never runs backwards.
// Used only for elapsed-time math, never for display.
type Monotonic interface {
	Now() (Timestamp, error)
}

// MonotonicFunc adapts a function to Monotonic.
type MonotonicFunc func() (Timestamp, error)

func (f MonotonicFunc) Now() (Timestamp, error) { return f() }

// SystemMonotonic reads the operating system's monotonic clock.
type SystemMonotonic struct{}

func (SystemMonotonic) Now() (Timestamp, error) { return monotonicNow() }
