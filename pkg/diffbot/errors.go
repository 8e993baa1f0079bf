package diffbot

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced to callers.
type ErrorKind string

const (
	// KindInvalidArgument means a parameter was out of range or a required
	// combination was missing; raised before any network call.
	KindInvalidArgument ErrorKind = "invalid_argument"
	// KindUnauthorized means the remote endpoint responded 401.
	KindUnauthorized ErrorKind = "unauthorized"
	// KindRemoteError means any other non-2xx status or transport failure.
	KindRemoteError ErrorKind = "remote_error"
	// KindMalformedResponse means a 2xx response whose body was not usable.
	KindMalformedResponse ErrorKind = "malformed_response"
)

// Error is the typed failure returned by the builders and client.
type Error struct {
	Kind    ErrorKind
	Status  int // HTTP status when the remote responded, 0 otherwise
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (http %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is a diffbot error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

func invalidArgf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}
