package lighthouse

import (
	"errors"
	"fmt"
)

// RequestError is a transport failure talking to the remote scoring
// service: the request could not complete, the status was non-success, or
// the payload carried an error. Callers detect it with IsTransport and
// apply the fallback-result policy; it is never swallowed inside the
// client.
type RequestError struct {
	// Op names the failed step, e.g. "request" or "decode".
	Op string

	// Endpoint is the base URL the request targeted.
	Endpoint string

	// Status is the HTTP status code, 0 when no response arrived.
	Status int

	// Err is the underlying cause, nil for payload-level errors.
	Err error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("lighthouse %s %s: status %d: %v", e.Op, e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("lighthouse %s %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// IsTransport reports whether err is (or wraps) a remote-call failure.
func IsTransport(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}
