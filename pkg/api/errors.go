package api

import "fmt"

// ValidationError reports input rejected locally, before any network call:
// a malformed CronosId name, or a name-service call on a network that does
// not support it. The caller must correct the input; retrying is pointless.
type ValidationError struct {
	// Tag identifies the operation, e.g. "cronosid/forward-resolve".
	Tag string
	// Msg describes what was wrong with the input.
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] - %s", e.Tag, e.Msg)
}

// TransportError reports a failure reaching or reading the remote service:
// connection errors, a body that is not valid JSON, or a request that could
// not be built. The underlying cause is wrapped and available via Unwrap.
type TransportError struct {
	Tag string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("[%s] - %v", e.Tag, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError reports a non-2xx response from the platform. Message carries
// the remote-provided error string when the body had one, otherwise a
// generic message containing the status code.
type RemoteError struct {
	Tag        string
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("[%s] - %s", e.Tag, e.Message)
}
