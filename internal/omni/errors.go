package omni

import (
	"errors"
	"fmt"
)

// Kind tells which layer a gateway call failed at.
type Kind int

const (
	// KindTransport: no HTTP response was obtained (DNS, connect, TLS, timeout, cancel).
	KindTransport Kind = iota + 1
	// KindHTTP: the gateway answered with a non-2xx status.
	KindHTTP
	// KindDecode: a 2xx body did not match the expected JSON shape.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is returned by every failing Client call.
type Error struct {
	Kind Kind

	// Status and Body are set for KindHTTP. Body is the raw response text.
	Status int
	Body   string

	// Message describes transport and decode failures; Err is the cause.
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("omni: gateway returned status %d: %s", e.Status, e.Body)
	default:
		if e.Err != nil {
			return fmt.Sprintf("omni: %s error: %s: %v", e.Kind, e.Message, e.Err)
		}
		return fmt.Sprintf("omni: %s error: %s", e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func transportError(msg string, err error) *Error {
	return &Error{Kind: KindTransport, Message: msg, Err: err}
}

func decodeError(msg string, err error) *Error {
	return &Error{Kind: KindDecode, Message: msg, Err: err}
}

func httpError(status int, body string) *Error {
	return &Error{Kind: KindHTTP, Status: status, Body: body}
}

// KindOf returns the kind of a gateway error, or 0 if err is not one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsTransport reports whether err is a gateway transport failure.
func IsTransport(err error) bool { return KindOf(err) == KindTransport }

// IsHTTP reports whether err is a non-2xx gateway response.
func IsHTTP(err error) bool { return KindOf(err) == KindHTTP }

// IsDecode reports whether err is a malformed 2xx body.
func IsDecode(err error) bool { return KindOf(err) == KindDecode }

// StatusCode returns the gateway HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindHTTP {
		return e.Status
	}
	return 0
}
