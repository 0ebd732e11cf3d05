// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"
	"io"

	"github.com/benbjohnson/clock"

	"github.com/tamzrod/netmon/internal/poller"
)

// DefaultHeaderEvery is how many rows are printed between header repeats.
const DefaultHeaderEvery = 20

type tableWriter struct {
	out   io.Writer
	clock clock.Clock

	headerEvery     int
	rowsSinceHeader int
}

// New returns a fixed-column table writer.
// The clock supplies the timestamp column when a result carries none.
func New(out io.Writer, clk clock.Clock, headerEvery int) Writer {
	if clk == nil {
		clk = clock.New()
	}
	if headerEvery <= 0 {
		headerEvery = DefaultHeaderEvery
	}
	return &tableWriter{
		out:         out,
		clock:       clk,
		headerEvery: headerEvery,
	}
}

// WriteHeader prints a blank line followed by the two header lines.
func (w *tableWriter) WriteHeader() error {
	if _, err := fmt.Fprintf(w.out, "\n%s\n", RenderHeader()); err != nil {
		return fmt.Errorf("writer: header: %w", err)
	}
	w.rowsSinceHeader = 0
	return nil
}

// Write prints one row and repeats the header every headerEvery rows.
func (w *tableWriter) Write(res poller.PollResult) error {
	if res.Err != nil {
		return errors.New("writer: refusing to render a failed poll")
	}

	at := res.At
	if at.IsZero() {
		at = w.clock.Now()
	}

	row := RenderRow(at, res.Current, res.Previous, res.Elapsed)
	if _, err := fmt.Fprintln(w.out, row); err != nil {
		return fmt.Errorf("writer: iface=%s row: %w", res.Interface, err)
	}

	w.rowsSinceHeader++
	if w.rowsSinceHeader >= w.headerEvery {
		return w.WriteHeader()
	}
	return nil
}
