package ncbi

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API failures. Callers can distinguish them with
// errors.Is, e.g. errors.Is(err, ncbi.ErrRateLimited), while the CLI
// surfaces all of them identically.
var (
	// ErrNetwork marks transport-level failures (DNS, refused, timeout).
	ErrNetwork = errors.New("network failure")
	// ErrHTTPStatus marks non-2xx responses other than 429.
	ErrHTTPStatus = errors.New("unexpected HTTP status")
	// ErrRateLimited marks HTTP 429 after retries are exhausted.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrMalformed marks structurally invalid responses, including
	// responses missing a required top-level field.
	ErrMalformed = errors.New("malformed response")
)

// APIError is the uniform error returned by all E-utilities operations.
type APIError struct {
	Kind     error  // one of the sentinel kinds above
	Endpoint string // e.g. "esearch.fcgi"
	Err      error  // underlying cause, may be nil
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("pubmed api: %s: %v", e.Endpoint, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *APIError) Unwrap() error { return e.Err }

// Is reports whether target matches this error's kind.
func (e *APIError) Is(target error) bool { return target == e.Kind }

// NewAPIError wraps err as an APIError of the given kind.
func NewAPIError(kind error, endpoint string, err error) *APIError {
	return &APIError{Kind: kind, Endpoint: endpoint, Err: err}
}
