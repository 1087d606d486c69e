package osc

import "errors"

// The error taxonomy is a closed set. Every failure this package returns
// wraps one of these with fmt.Errorf("...: %w", ...) so callers can
// branch with errors.Is instead of string matching. The SLIP failures
// (ErrDecodingFailure, ErrEncodingFailure) are declared in package slip.
var (
	// ErrStringEncodingFailure means a string argument was not valid UTF-8.
	ErrStringEncodingFailure = errors.New("osc: string is not encodable as UTF-8")

	// ErrInvalidArgumentList means a type-tag string was empty or held an
	// unrecognized tag character.
	ErrInvalidArgumentList = errors.New("osc: invalid argument type-tag list")

	// ErrInvalidMessage means a message was malformed or its buffer was
	// truncated mid-value.
	ErrInvalidMessage = errors.New("osc: invalid message")

	// ErrInvalidBundle means a bundle's "#bundle" marker was missing, a
	// nested element was malformed, or a timetag monotonicity violation
	// was found.
	ErrInvalidBundle = errors.New("osc: invalid bundle")

	// ErrInvalidPacket means the leading byte of a packet was neither
	// '/' nor '#', or the buffer was empty.
	ErrInvalidPacket = errors.New("osc: invalid packet")

	// ErrInvalidAddress means a method was registered with an address
	// containing a reserved character.
	ErrInvalidAddress = errors.New("osc: invalid method address")
)
