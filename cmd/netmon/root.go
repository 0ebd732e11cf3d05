// cmd/netmon/root.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tamzrod/netmon/internal/config"
	"github.com/tamzrod/netmon/internal/ifaces"
	"github.com/tamzrod/netmon/internal/logger"
	"github.com/tamzrod/netmon/internal/poller"
	"github.com/tamzrod/netmon/internal/procnet"
	"github.com/tamzrod/netmon/internal/status"
	"github.com/tamzrod/netmon/internal/writer"
)

const longHelp = `Monitor real-time network interface statistics from /proc/net/dev

Arguments:
  <interface>              Network interface to monitor (e.g., eth0, ppp0, lo)

Environment:
  NETMON_INTERFACE, NETMON_INTERVAL, NETMON_COUNT, NETMON_HEADER_EVERY,
  NETMON_SOURCE_PATH, NETMON_LOG_LEVEL override the config file.

Signals:
  SIGINT (Ctrl+C), SIGTERM Gracefully exit and print summary`

const examples = `  netmon eth0                  Monitor eth0 with default settings
  netmon ppp0 -i 1 -n 60       Monitor ppp0 every 1 second for 60 iterations
  netmon wlan0 -i 500ms        Sub-second sampling`

// usageError marks failures that should be followed by the usage text.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// reportedError has already been explained on stderr.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// env carries the process surroundings so tests can swap them.
type env struct {
	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs
	clock  clock.Clock
	ctx    context.Context
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return execute(args, env{
		stdout: stdout,
		stderr: stderr,
		fs:     afero.NewOsFs(),
		clock:  clock.New(),
		ctx:    ctx,
	})
}

func execute(args []string, e env) int {
	cmd := newRootCmd(e)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(e.ctx)
	if err == nil {
		return 0
	}

	var re reportedError
	if errors.As(err, &re) {
		return 1
	}

	fmt.Fprintf(e.stderr, "Error: %v\n", err)
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(e.stderr)
		fmt.Fprint(e.stderr, cmd.UsageString())
	}
	return 1
}

func newRootCmd(e env) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "netmon <interface> [OPTIONS]",
		Short:         "Real-time network interface statistics",
		Long:          longHelp,
		Example:       examples,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usageError{fmt.Errorf("unknown argument: %s", args[1])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath, args)
			if err != nil {
				return err
			}
			return monitor(cmd.Context(), cfg, e)
		},
	}
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	// ---- flags ----
	f := cmd.Flags()
	f.StringP(config.KeyInterval, "i", "2", "update interval in seconds, or a duration such as 500ms or 1m")
	f.IntP(config.KeyCount, "n", 0, "number of iterations (default: unlimited)")
	f.Int(config.KeyHeaderEvery, config.DefaultHeaderEvery, "rows between header repeats")
	f.String(config.KeySourcePath, config.DefaultSourcePath, "counter table to read")
	f.String(config.KeyLogLevel, config.DefaultLogLevel, "log level: debug|info|warn|error")
	f.StringVarP(&configPath, "config", "c", "", "optional YAML config file")

	return cmd
}

// loadConfig layers defaults < file < env < flags < positional interface.
func loadConfig(cmd *cobra.Command, path string, args []string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := config.Overlay(cfg, v); err != nil {
		return nil, usageError{err}
	}

	if len(args) == 1 {
		cfg.Interface = args[0]
	}

	if err := config.Validate(cfg); err != nil {
		return nil, usageError{err}
	}
	config.Normalize(cfg)
	return cfg, nil
}

// monitor runs INIT, RUNNING and SUMMARY for one interface.
func monitor(ctx context.Context, cfg *config.Config, e env) error {
	log, err := logger.New(cfg.LogLevel, e.stderr)
	if err != nil {
		return err
	}
	defer logger.Flush(log)

	p, reader, err := poller.Build(cfg, e.fs, e.clock, log)
	if err != nil {
		return err
	}

	// --------------------
	// INIT: first read must succeed
	// --------------------

	if _, err := p.Init(); err != nil {
		if errors.Is(err, procnet.ErrNotFound) {
			fmt.Fprintf(e.stderr, "Error: Interface '%s' not found in %s\n", cfg.Interface, reader.Path())
			reportAvailable(ctx, e.stderr, reader)
			return reportedError{err}
		}
		return err
	}

	fmt.Fprintf(e.stdout, "Monitoring interface: %s (interval: %s", cfg.Interface, config.FormatInterval(cfg.Interval.Std()))
	if cfg.Count > 0 {
		fmt.Fprintf(e.stdout, ", iterations: %d", cfg.Count)
	}
	fmt.Fprintln(e.stdout, ")")
	fmt.Fprintln(e.stdout, "Press Ctrl+C to stop")

	// --------------------
	// RUNNING
	// --------------------

	out := writer.New(e.stdout, e.clock, cfg.HeaderEvery)
	if err := out.WriteHeader(); err != nil {
		return err
	}

	sum := p.Run(ctx, out)

	// --------------------
	// SUMMARY
	// --------------------

	fmt.Fprint(e.stdout, status.Encode(sum))
	return nil
}

func reportAvailable(ctx context.Context, w io.Writer, l ifaces.Lister) {
	entries, err := ifaces.Available(ctx, l)
	if err != nil {
		return
	}
	fmt.Fprintln(w, "Available interfaces:")
	for _, en := range entries {
		fmt.Fprintf(w, "  %s\n", en)
	}
}
