// internal/ifaces/ifaces.go
package ifaces

import (
	"context"
	"strings"
	"time"

	utilnet "github.com/shirou/gopsutil/v3/net"
)

const lookupTimeout = 5 * time.Second

// Entry is one interface listed in the counter table, with link flags
// when the system reports them.
type Entry struct {
	Name  string
	Flags []string
}

func (e Entry) String() string {
	if len(e.Flags) == 0 {
		return e.Name
	}
	return e.Name + " (" + strings.Join(e.Flags, ", ") + ")"
}

// Lister returns the interface names present in the counter table.
type Lister interface {
	Interfaces() ([]string, error)
}

// Available lists the table's interfaces, annotated with link state.
// Flag lookup failures are not errors: entries are returned bare.
func Available(ctx context.Context, l Lister) ([]Entry, error) {
	names, err := l.Interfaces()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	stats, err := utilnet.InterfacesWithContext(ctx)
	if err != nil {
		stats = nil
	}
	return annotate(names, stats), nil
}

// annotate keeps table order and only the flags an operator cares about.
func annotate(names []string, stats []utilnet.InterfaceStat) []Entry {
	byName := make(map[string]utilnet.InterfaceStat, len(stats))
	for _, s := range stats {
		byName[s.Name] = s
	}

	out := make([]Entry, 0, len(names))
	for _, name := range names {
		e := Entry{Name: name}
		if s, ok := byName[name]; ok {
			e.Flags = linkFlags(s.Flags)
		}
		out = append(out, e)
	}
	return out
}

func linkFlags(flags []string) []string {
	var up, loopback bool
	for _, f := range flags {
		switch f {
		case "up":
			up = true
		case "loopback":
			loopback = true
		}
	}

	out := []string{"down"}
	if up {
		out[0] = "up"
	}
	if loopback {
		out = append(out, "loopback")
	}
	return out
}
