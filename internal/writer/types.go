// internal/writer/types.go
package writer

import "github.com/tamzrod/netmon/internal/poller"

// Writer renders poll results into a report.
type Writer interface {
	WriteHeader() error
	Write(res poller.PollResult) error
}
