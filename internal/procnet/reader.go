// internal/procnet/reader.go
package procnet

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DefaultPath is the kernel's per-interface counter table.
const DefaultPath = "/proc/net/dev"

// Config is the minimal runtime config the reader needs.
type Config struct {
	Path string
	Fs   afero.Fs
}

// Reader produces snapshots from the counter table.
// It holds no handle between calls.
type Reader struct {
	path  string
	fs    afero.Fs
	clock Monotonic
	log   *zap.Logger
}

// NewReader builds a reader. Zero-value fields fall back to the live system.
func NewReader(cfg Config, clock Monotonic, log *zap.Logger) *Reader {
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if clock == nil {
		clock = SystemMonotonic{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{path: cfg.Path, fs: cfg.Fs, clock: clock, log: log}
}

// Path returns the table path the reader opens.
func (r *Reader) Path() string { return r.path }

// Read opens the table, finds iface and returns its snapshot.
// Returns ErrNotFound or a *SourceError on failure.
func (r *Reader) Read(iface string) (snap Snapshot, err error) {
	f, err := r.fs.Open(r.path)
	if err != nil {
		return Snapshot{}, &SourceError{Path: r.path, Err: errors.Wrap(err, "open")}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, &SourceError{Path: r.path, Err: errors.Wrap(cerr, "close")})
		}
	}()

	snap, found, err := Parse(f, iface)
	if err != nil {
		return Snapshot{}, &SourceError{Path: r.path, Err: err}
	}
	if !found {
		return Snapshot{}, ErrNotFound
	}

	ts, cerr := r.clock.Now()
	if cerr != nil {
		r.log.Warn("monotonic clock unavailable; snapshot timestamp left at zero",
			zap.String("interface", iface),
			zap.Error(cerr),
		)
		ts = Timestamp{}
	}
	snap.Timestamp = ts
	return snap, nil
}

// Interfaces lists the names present in the table.
func (r *Reader) Interfaces() (names []string, err error) {
	f, err := r.fs.Open(r.path)
	if err != nil {
		return nil, &SourceError{Path: r.path, Err: errors.Wrap(err, "open")}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, &SourceError{Path: r.path, Err: errors.Wrap(cerr, "close")})
		}
	}()

	names, err = Names(f)
	if err != nil {
		return nil, &SourceError{Path: r.path, Err: err}
	}
	return names, nil
}
