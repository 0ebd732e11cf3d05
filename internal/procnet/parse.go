// internal/procnet/parse.go
package procnet

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// headerLines is the fixed header block at the top of the table.
const headerLines = 2

// ParseLine parses one table line for the requested interface.
// A line that names another interface, or that is malformed, does not match.
// The returned snapshot carries no timestamp.
func ParseLine(line, iface string) (Snapshot, bool) {
	name, rest, ok := splitName(line)
	if !ok || name != iface {
		return Snapshot{}, false
	}

	fields := strings.Fields(rest)
	if len(fields) < FieldCount {
		return Snapshot{}, false
	}

	var values [FieldCount]uint64
	for i := 0; i < FieldCount; i++ {
		v, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			return Snapshot{}, false
		}
		values[i] = v
	}

	return Snapshot{
		Interface: truncateName(iface),
		RxBytes:   values[fieldRxBytes],
		RxPackets: values[fieldRxPackets],
		RxErrors:  values[fieldRxErrors],
		RxDrops:   values[fieldRxDrops],
		TxBytes:   values[fieldTxBytes],
		TxPackets: values[fieldTxPackets],
		TxErrors:  values[fieldTxErrors],
		TxDrops:   values[fieldTxDrops],
		Valid:     true,
	}, true
}

// Parse scans a whole table and returns the first well-formed entry for iface.
// The error is non-nil only when the table itself cannot be read.
func Parse(r io.Reader, iface string) (Snapshot, bool, error) {
	var (
		snap  Snapshot
		found bool
	)
	err := eachEntry(r, func(line string) bool {
		snap, found = ParseLine(line, iface)
		return !found
	})
	if err != nil {
		return Snapshot{}, false, err
	}
	if !found {
		return Snapshot{}, false, nil
	}
	return snap, true, nil
}

// Names returns every interface name listed in the table, in table order.
func Names(r io.Reader) ([]string, error) {
	var names []string
	err := eachEntry(r, func(line string) bool {
		if name, _, ok := splitName(line); ok {
			names = append(names, name)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// eachEntry calls fn for every line after the header until fn returns false.
// Lines have no length limit, so an oversized entry is just another
// non-matching line.
func eachEntry(r io.Reader, fn func(line string) bool) error {
	br := bufio.NewReader(r)
	lineNo := 0

	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.Wrap(err, "read counter table")
		}
		if line == "" && err == io.EOF {
			return nil
		}

		lineNo++
		if lineNo > headerLines {
			if !fn(strings.TrimRight(line, "\r\n")) {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

// splitName cuts a line at the first ':' and returns the trimmed,
// length-bounded name and the remainder.
func splitName(line string) (string, string, bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", false
	}
	name := strings.TrimLeft(line[:i], " \t")
	name = truncateName(name)
	name = strings.TrimRight(name, " \t")
	return name, line[i+1:], true
}
