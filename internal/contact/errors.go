package contact

import (
	"errors"
	"fmt"
)

var (
	// ErrInFlight is returned by Submit while a previous submission is still sending.
	ErrInFlight = errors.New("contact: submission already in flight")

	// ErrRequired matches every *RequiredFieldError.
	ErrRequired = errors.New("contact: required field is empty")

	// ErrUnknownField is returned by Set for a field the form does not have.
	ErrUnknownField = errors.New("contact: unknown field")

	// ErrTransport matches every *TransportError.
	ErrTransport = errors.New("contact: relay request failed")

	// ErrRejected matches every *RejectedError.
	ErrRejected = errors.New("contact: relay rejected submission")
)

// RequiredFieldError reports the first empty required field.
type RequiredFieldError struct {
	Field Field
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("contact: %s is required", e.Field)
}

func (e *RequiredFieldError) Is(target error) bool { return target == ErrRequired }

// TransportError means the request never produced a response: it could not
// be encoded, built or sent, or the connection failed.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("contact: relay request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// RejectedError means the relay answered with a non-2xx status.
type RejectedError struct {
	StatusCode int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("contact: relay returned status %d", e.StatusCode)
}

func (e *RejectedError) Is(target error) bool { return target == ErrRejected }
