// internal/status/constants.go
package status

// ---- RUN STATES ----

// State is the driver's position in its lifecycle.
type State uint8

const (
	// StateInit covers the first read, which must succeed.
	StateInit State = iota
	// StateRunning alternates read, compute, render and sleep.
	StateRunning
	// StateStopping is entered on signal or when the iteration budget is spent.
	StateStopping
	// StateSummary is terminal: the summary has been produced.
	StateSummary
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// ---- TICK HEALTH ----

// HealthUnknown is the state before the first tick.
const HealthUnknown uint16 = 0

// HealthOK means the last read found the interface.
const HealthOK uint16 = 1

// HealthMissing means the table was read but the interface was absent.
const HealthMissing uint16 = 2

// HealthSourceError means the table itself could not be read.
const HealthSourceError uint16 = 3
