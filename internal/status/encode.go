// internal/status/encode.go
package status

import (
	"fmt"
	"strings"
)

// Encode renders the end-of-run text block.
// No IO. No side effects.
func Encode(s Summary) string {
	var b strings.Builder

	b.WriteString("\n")
	if s.StoppedBySignal {
		b.WriteString("Monitoring stopped by signal\n")
	}
	fmt.Fprintf(&b, "Total iterations: %d\n", s.Iterations)

	return b.String()
}

func (s Summary) String() string { return Encode(s) }
