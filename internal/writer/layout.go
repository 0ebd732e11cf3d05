// internal/writer/layout.go
package writer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tamzrod/netmon/internal/procnet"
	"github.com/tamzrod/netmon/internal/rate"
)

// TimestampLayout is the wall-clock format of the first column.
const TimestampLayout = "2006-01-02 15:04:05"

// Placeholder fills rate columns when there is no previous sample.
const Placeholder = "-"

type column struct {
	title string
	width int
	left  bool
}

// ---- COLUMN LAYOUT ----

// Byte columns are wider than packet and error columns to fit unit suffixes.
var columns = []column{
	{"Timestamp", 19, true},
	{"Interface", 10, true},

	{"RxBytes", 15, false},
	{"ΔRx", 12, false},
	{"RxPkts", 10, false},
	{"ΔRx(p/s)", 10, false},
	{"RxErr", 8, false},
	{"RxDrop", 8, false},

	{"TxBytes", 15, false},
	{"ΔTx", 12, false},
	{"TxPkts", 10, false},
	{"ΔTx(p/s)", 10, false},
	{"TxErr", 8, false},
	{"TxDrop", 8, false},
}

// RenderHeader returns the column titles and a dashed separator, two lines.
func RenderHeader() string {
	titles := make([]string, len(columns))
	dashes := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.title
		dashes[i] = strings.Repeat("-", c.width)
	}
	return renderLine(titles) + "\n" + renderLine(dashes)
}

// RenderRow returns one report line for current.
// Rate columns hold Placeholder unless previous is a valid observation.
func RenderRow(now time.Time, current procnet.Snapshot, previous *procnet.Snapshot, elapsed float64) string {
	rxRate, txRate := Placeholder, Placeholder
	rxPktRate, txPktRate := Placeholder, Placeholder

	if previous != nil && previous.Valid {
		s := rate.Compute(current, *previous, elapsed)
		rxRate = FormatRate(s.RxByteRate)
		txRate = FormatRate(s.TxByteRate)
		rxPktRate = FormatPacketRate(s.RxPacketRate)
		txPktRate = FormatPacketRate(s.TxPacketRate)
	}

	return renderLine([]string{
		now.Format(TimestampLayout),
		current.Interface,

		FormatBytes(current.RxBytes),
		rxRate,
		strconv.FormatUint(current.RxPackets, 10),
		rxPktRate,
		strconv.FormatUint(current.RxErrors, 10),
		strconv.FormatUint(current.RxDrops, 10),

		FormatBytes(current.TxBytes),
		txRate,
		strconv.FormatUint(current.TxPackets, 10),
		txPktRate,
		strconv.FormatUint(current.TxErrors, 10),
		strconv.FormatUint(current.TxDrops, 10),
	})
}

// renderLine pads each cell to its column width, widths counted in runes.
func renderLine(cells []string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		c := columns[i]
		if c.left {
			parts[i] = fmt.Sprintf("%-*s", c.width, cell)
		} else {
			parts[i] = fmt.Sprintf("%*s", c.width, cell)
		}
	}
	return strings.Join(parts, " ")
}
