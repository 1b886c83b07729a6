package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Callers branch with errors.Is / errors.As and must not
// conflate transport, connectivity and decode failures.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

// TransportError is a completed HTTP exchange that ended non-2xx. Body holds
// at most a bounded prefix of the response; error bodies are not assumed to
// be present or parseable.
type TransportError struct {
	Operation  string
	StatusCode int
	Status     string
	Body       string
}

func (e *TransportError) Error() string {
	if e == nil {
		return "transport error"
	}
	if strings.TrimSpace(e.Body) == "" {
		return fmt.Sprintf("%s status: %s", e.Operation, e.Status)
	}
	return fmt.Sprintf("%s status: %s: %s", e.Operation, e.Status, strings.TrimSpace(e.Body))
}

// Is makes a 404 transport error match ErrNotFound.
func (e *TransportError) Is(target error) bool {
	return target == ErrNotFound && e != nil && e.StatusCode == 404
}

// ConnectivityError is a request that never completed: no HTTP response was
// received at all.
type ConnectivityError struct {
	Operation string
	Err       error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("%s: connection failed: %v", e.Operation, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// DecodeError is a 2xx response whose body could not be decoded.
type DecodeError struct {
	Operation string
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Operation, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidationError is a client-side rejection; nothing was sent to the
// backend.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Messages) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// IsNotFound reports whether err is a missing-resource failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConnectivity reports whether err is a request that never completed.
func IsConnectivity(err error) bool {
	var ce *ConnectivityError
	return errors.As(err, &ce)
}

// IsTransport returns the transport error inside err, if any.
func IsTransport(err error) (*TransportError, bool) {
	var te *TransportError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// IsDecode reports whether err is a malformed-success-body failure.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// IsValidation returns the validation error inside err, if any.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
