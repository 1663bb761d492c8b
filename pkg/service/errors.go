package service

import "errors"

// Kind classifies a translation failure. Every error leaving the service is
// one of these three kinds; the transport boundary maps them to status codes.
type Kind string

const (
	// KindInvalidInput means the caller-supplied data failed validation.
	KindInvalidInput Kind = "invalid_input"
	// KindUpstream means the backend was reachable but answered with a
	// non-success status.
	KindUpstream Kind = "upstream_error"
	// KindInternal means the backend call failed outright or returned a
	// malformed response.
	KindInternal Kind = "internal_error"
)

// Error is the typed failure returned by the translation service.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// invalidInput builds a validation failure.
func invalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// upstreamError builds a backend-status failure carrying the upstream body.
func upstreamError(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// internalError builds a transport or response-format failure.
func internalError(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the failure kind from err. Errors that did not come out of
// the service classify as internal.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}
