// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/netmon/internal/procnet"
	"github.com/tamzrod/netmon/internal/rate"
)

// PollResult is what one tick produces.
type PollResult struct {
	Interface string
	At        time.Time // wall clock, display only

	Current procnet.Snapshot

	// Previous is nil on the first successful tick of a run.
	Previous *procnet.Snapshot
	Elapsed  float64
	Sample   *rate.Sample

	Err error // non-nil means the read failed and nothing else is set
}

// HasRates reports whether the result carries a rate sample.
func (r PollResult) HasRates() bool {
	return r.Err == nil && r.Sample != nil
}
