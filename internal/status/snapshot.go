// internal/status/snapshot.go
package status

// Summary is what the driver reports once the loop ends.
type Summary struct {
	State           State
	Iterations      int
	Missed          int
	StoppedBySignal bool
}
