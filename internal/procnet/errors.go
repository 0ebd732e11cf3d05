// internal/procnet/errors.go
package procnet

import (
	stderrors "errors"
	"fmt"
)

// ErrNotFound means the table was read but no well-formed line named the interface.
var ErrNotFound = stderrors.New("procnet: interface not found")

// SourceError means the counter table could not be opened or read at all.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("procnet: counter table %s unavailable: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// IsSourceUnavailable reports whether err is (or wraps) a *SourceError.
func IsSourceUnavailable(err error) bool {
	var se *SourceError
	return stderrors.As(err, &se)
}
