// internal/poller/builder.go
package poller

import (
	"github.com/benbjohnson/clock"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	cfg "github.com/tamzrod/netmon/internal/config"
	"github.com/tamzrod/netmon/internal/procnet"
)

// Build wires a Poller and its snapshot reader from a validated config.
// The reader is returned as well so the caller can list interfaces on a failed Init.
func Build(c *cfg.Config, fs afero.Fs, clk clock.Clock, log *zap.Logger) (*Poller, *procnet.Reader, error) {
	reader := procnet.NewReader(
		procnet.Config{
			Path: c.SourcePath,
			Fs:   fs,
		},
		procnet.SystemMonotonic{},
		log,
	)

	p, err := New(
		Config{
			Interface: c.Interface,
			Interval:  c.Interval.Std(),
			Count:     c.Count,
		},
		reader,
		clk,
		log,
	)
	if err != nil {
		return nil, nil, err
	}

	return p, reader, nil
}
