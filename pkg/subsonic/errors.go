package subsonic

import (
	"fmt"
)

// Transport errors: the request never produced a usable envelope.

// NetworkError wraps a connection, DNS, or timeout failure from the HTTP
// layer. The request may or may not have reached the server.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("subsonic: network error: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned for HTTP 404 responses. Resource is the request
// URL with the query string stripped, as the query carries the auth token
// and salt and isn't the problem here anyway.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("subsonic: resource not found: %s", e.Resource)
}

// HTTPError is returned for any non-2xx status other than 404. URL has the
// query string stripped, same as NotFoundError.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("subsonic: unexpected status %d from %s", e.StatusCode, e.URL)
}

// MalformedResponseError is returned when an HTTP 200 body did not decode as
// the expected JSON envelope. Body holds the raw response text.
type MalformedResponseError struct {
	Body string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("subsonic: response parsing error: %v: %s", e.Err, e.Body)
}

// Unwrap returns the underlying decode error.
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Validation errors: the envelope decoded but violated the call's contract.

// NotOKError is returned when the envelope status was anything other than
// the literal "ok". The payload fields must not be inspected in that case.
type NotOKError struct {
	Body string
}

func (e *NotOKError) Error() string {
	return fmt.Sprintf("subsonic: response did not have 'ok' status: %s", e.Body)
}

// MissingPayloadError is returned when the envelope status was "ok" but the
// payload substructure the call expects was absent. This indicates a server
// side contract violation, since the schema guarantees co-presence with an
// "ok" status.
type MissingPayloadError struct {
	Kind PayloadKind
	Body string
}

func (e *MissingPayloadError) Error() string {
	return fmt.Sprintf("subsonic: response was missing %s: %s", e.Kind, e.Body)
}
