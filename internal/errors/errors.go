// Package errors defines the error values returned by the negotiation
// engine. Probe-style lookups ("is this id known?") never produce errors;
// they return zero-value sentinels. Errors here mark conditions that stop a
// negotiation from proceeding.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for negotiation.
var (
	// ErrNoCipherSuites indicates the suite filter produced an empty
	// candidate list. A session with nothing to offer cannot proceed.
	ErrNoCipherSuites = errors.New("negotiate: no acceptable cipher suites")

	// ErrNoCompressionMethods indicates the compression filter produced an
	// empty candidate list.
	ErrNoCompressionMethods = errors.New("negotiate: no acceptable compression methods")

	// ErrUnknownAlgorithm indicates a name or wire value that maps to no
	// registry entry.
	ErrUnknownAlgorithm = errors.New("registry: unknown algorithm")

	// ErrUnknownVersion indicates a version query could not be answered
	// because the session has no version priorities configured.
	ErrUnknownVersion = errors.New("negotiate: unknown protocol version")
)

// Sentinel errors for wire encoding.
var (
	// ErrInvalidWireFormat indicates malformed vector data.
	ErrInvalidWireFormat = errors.New("wire: invalid format")

	// ErrListTooLong indicates a list that does not fit its length prefix.
	ErrListTooLong = errors.New("wire: list exceeds length prefix")
)

// Sentinel errors for the transport.
var (
	// ErrTransportClosed indicates the transport has been closed.
	ErrTransportClosed = errors.New("transport: closed")

	// ErrNotConnected indicates an operation that requires an established
	// connection was attempted before ConnectIfNeeded succeeded.
	ErrNotConnected = errors.New("transport: not connected")
)

// NegotiationError wraps an error with the negotiation step that produced it.
type NegotiationError struct {
	Op  string // Step that failed, e.g. "candidate suites"
	Err error  // Underlying error
}

func (e *NegotiationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NegotiationError) Unwrap() error {
	return e.Err
}

// NewNegotiationError creates a new NegotiationError.
func NewNegotiationError(op string, err error) *NegotiationError {
	return &NegotiationError{Op: op, Err: err}
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
