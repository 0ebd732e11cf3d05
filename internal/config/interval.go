// internal/config/interval.go
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xhit/go-str2duration/v2"
)

// ParseInterval parses an interval given either as whole seconds or as a
// duration string with units (d and w included).
func ParseInterval(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid interval: empty")
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("invalid interval: %d", n)
		}
		return time.Duration(n) * time.Second, nil
	}

	d, err := str2duration.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid interval: %q", s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid interval: %q", s)
	}
	return d, nil
}

// FormatInterval renders an interval the way the banner shows it.
func FormatInterval(d time.Duration) string {
	if d%time.Second == 0 {
		return fmt.Sprintf("%d seconds", int64(d/time.Second))
	}
	return d.String()
}
