package domain

import "fmt"

// ErrNotFetched is returned when completion is queried before a successful fetch.
var ErrNotFetched = &NotFetchedError{}

// TransportError wraps a failure to complete the HTTP round trip
// (connection refused, DNS, TLS, timeout, cancellation).
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("status request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UnexpectedStatusError is returned when the gateway answers outside the 2xx range.
type UnexpectedStatusError struct {
	StatusCode int
	// Body holds the start of the response body for diagnostics.
	Body string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("status endpoint returned HTTP %d", e.StatusCode)
}

// DecodeError is returned when the response body is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode status response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ShapeError is returned when the decoded document lacks orderResults.orderStatus
// or a value on that path has the wrong type.
type ShapeError struct {
	Path   string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("missing or malformed status field %q: %s", e.Path, e.Reason)
}

// NotFetchedError is returned when completion is queried before any successful fetch.
type NotFetchedError struct{}

func (e *NotFetchedError) Error() string {
	return "order status has not been fetched"
}
