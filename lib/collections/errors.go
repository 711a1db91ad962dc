package collections

import (
	"fmt"
)

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// ErrKind classifies an error returned by a collection operation.
type ErrKind uint8

const (
	// KindTransport: a command failed, the connection was lost or the
	// server violated the protocol. Never retried automatically.
	KindTransport ErrKind = iota
	// KindSerialization: the codec failed encoding an element for storage
	// or decoding one read back (corrupt or foreign data).
	KindSerialization
	// KindNotification: a watched key produced a payload the collection
	// kind's parser does not recognize. Delivered as a stream item, the
	// watcher itself keeps running.
	KindNotification
)

// String implements the fmt.Stringer interface
func (k ErrKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindSerialization:
		return "serialization"
	case KindNotification:
		return "notification"
	default:
		return "unknown"
	}
}

// Error is the error type returned by all collection operations. It wraps
// the underlying cause (a redis or codec error) together with an error kind.
type Error struct {
	Kind ErrKind // The error classification
	Msg  string  // The error message
	Err  error   // The underlying cause, may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("redis-backed (%s): %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("redis-backed (%s): %s", e.Kind, e.Msg)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error with the given kind and message.
func NewError(kind ErrKind, msg string, cause error) *Error {
	return &Error{
		Kind: kind,
		Msg:  msg,
		Err:  cause,
	}
}

// --------------------------------------------------------------------------
// Internal constructors
// --------------------------------------------------------------------------

func newTransportError(msg string, cause error) *Error {
	return NewError(KindTransport, msg, cause)
}

func newSerializationError(msg string, cause error) *Error {
	return NewError(KindSerialization, msg, cause)
}

// newNotificationError records an unrecognized notification payload together
// with the collection kind whose parser rejected it
func newNotificationError(kind, payload string) *Error {
	return NewError(KindNotification, fmt.Sprintf("unrecognized %s notification %q", kind, payload), nil)
}
