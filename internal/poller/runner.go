// internal/poller/runner.go
package poller

import (
	"context"

	"go.uber.org/zap"

	"github.com/tamzrod/netmon/internal/procnet"
	"github.com/tamzrod/netmon/internal/status"
)

// Run drives the RUNNING state until ctx is done or Count ticks succeeded.
// Cancellation is checked between ticks only, never mid-read.
// Failed reads are logged and retried on the next tick without counting.
func (p *Poller) Run(ctx context.Context, sink Sink) status.Summary {
	p.state = status.StateRunning
	var sum status.Summary

	for ctx.Err() == nil && !p.budgetSpent(sum.Iterations) {
		res := p.PollOnce()

		if res.Err != nil {
			sum.Missed++
			p.reportFailure(res.Err)
			p.sleep(ctx)
			continue
		}
		p.reportRecovery()

		if err := sink.Write(res); err != nil {
			p.log.Error("report write failed", zap.Error(err))
		}
		sum.Iterations++

		if ctx.Err() == nil && !p.budgetSpent(sum.Iterations) {
			p.sleep(ctx)
		}
	}

	p.state = status.StateStopping
	sum.StoppedBySignal = ctx.Err() != nil

	p.state = status.StateSummary
	sum.State = p.state
	return sum
}

func (p *Poller) budgetSpent(iterations int) bool {
	return p.cfg.Count > 0 && iterations >= p.cfg.Count
}

func (p *Poller) sleep(ctx context.Context) {
	t := p.clock.Timer(p.cfg.Interval)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (p *Poller) reportFailure(err error) {
	if procnet.IsSourceUnavailable(err) {
		p.health = status.HealthSourceError
		p.log.Warn("failed to read counter table; skipping tick",
			zap.String("interface", p.cfg.Interface),
			zap.Error(err),
		)
		return
	}

	p.health = status.HealthMissing
	p.log.Warn("failed to read stats (interface may have disappeared)",
		zap.String("interface", p.cfg.Interface),
		zap.Error(err),
	)
}

func (p *Poller) reportRecovery() {
	if p.health == status.HealthMissing || p.health == status.HealthSourceError {
		p.log.Info("interface stats available again", zap.String("interface", p.cfg.Interface))
	}
	p.health = status.HealthOK
}
