// internal/poller/poller.go
package poller

import (
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/tamzrod/netmon/internal/procnet"
	"github.com/tamzrod/netmon/internal/rate"
	"github.com/tamzrod/netmon/internal/status"
)

// SnapshotReader abstracts the counter table.
type SnapshotReader interface {
	Read(iface string) (procnet.Snapshot, error)
}

// Sink receives every successful tick.
type Sink interface {
	Write(res PollResult) error
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Interface string
	Interval  time.Duration
	Count     int // 0 = unlimited
}

// Poller owns the two-slot snapshot history. Single goroutine only.
type Poller struct {
	cfg    Config
	reader SnapshotReader
	clock  clock.Clock
	log    *zap.Logger

	previous procnet.Snapshot
	state    status.State
	health   uint16
}

// New creates a poller with immutable config.
func New(cfg Config, reader SnapshotReader, clk clock.Clock, log *zap.Logger) (*Poller, error) {
	if cfg.Interface == "" {
		return nil, errors.New("poller: interface required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if cfg.Count < 0 {
		return nil, errors.New("poller: count must be >= 0")
	}
	if reader == nil {
		return nil, errors.New("poller: reader required")
	}
	if clk == nil {
		clk = clock.New()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Poller{
		cfg:    cfg,
		reader: reader,
		clock:  clk,
		log:    log,
		state:  status.StateInit,
		health: status.HealthUnknown,
	}, nil
}

// State returns where the poller is in its lifecycle.
func (p *Poller) State() status.State { return p.state }

// Init performs the startup read. Any error is fatal to the run.
// The snapshot is not kept as history: the first row always shows placeholders.
func (p *Poller) Init() (procnet.Snapshot, error) {
	snap, err := p.reader.Read(p.cfg.Interface)
	if err != nil {
		return procnet.Snapshot{}, err
	}
	p.health = status.HealthOK
	return snap, nil
}

// PollOnce performs exactly one read and, when possible, one rate computation.
// On success the current snapshot becomes the previous one.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{
		Interface: p.cfg.Interface,
		At:        p.clock.Now(),
	}

	cur, err := p.reader.Read(p.cfg.Interface)
	if err != nil {
		res.Err = err
		return res
	}
	res.Current = cur

	if p.previous.Comparable(cur) {
		prev := p.previous
		res.Previous = &prev
		s := rate.Between(cur, prev)
		res.Elapsed = s.Elapsed
		res.Sample = &s
	}

	p.previous = cur
	return res
}
