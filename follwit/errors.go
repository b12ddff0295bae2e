package follwit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid follwit configuration")
	// ErrInvalidArgument indicates a caller-supplied value was rejected before any network I/O
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedOperation indicates an identification kind the operation family does not accept
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrNoUsableIdentifier indicates an entity carried none of the identifiers an operation needs
	ErrNoUsableIdentifier = fmt.Errorf("%w: entity has no usable identifier", ErrUnsupportedOperation)
	// ErrTransport indicates a network failure or a non-2xx response
	ErrTransport = errors.New("follwit transport failure")
	// ErrDecode indicates a response body that could not be decoded
	ErrDecode = errors.New("failed to decode follwit response")
	// ErrService indicates the service answered with a failure status object
	ErrService = errors.New("follwit service reported failure")
)

// ErrorKind classifies an error returned by the client.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidConfig
	KindInvalidArgument
	KindUnsupportedOperation
	KindNoUsableIdentifier
	KindTransport
	KindDecode
	KindService
	KindCanceled
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidConfig:
		return "invalid_config"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindUnsupportedOperation:
		return "unsupported_operation"
	case KindNoUsableIdentifier:
		return "no_usable_identifier"
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindService:
		return "service"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// KindOf reports which error kind err belongs to. Nil maps to KindUnknown.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	// failures after the round trip first, whatever they wrap
	case errors.Is(err, ErrDecode):
		return KindDecode
	case errors.Is(err, ErrService):
		return KindService
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrInvalidConfig):
		return KindInvalidConfig
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrNoUsableIdentifier):
		return KindNoUsableIdentifier
	case errors.Is(err, ErrUnsupportedOperation):
		return KindUnsupportedOperation
	default:
		return KindUnknown
	}
}

// ArgumentError names the argument that was rejected.
type ArgumentError struct {
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Name, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func argumentError(name, reason string) error {
	return &ArgumentError{Name: name, Reason: reason}
}

func unsupported(kind fmt.Stringer, family string) error {
	return fmt.Errorf("%w: %s is not a valid identification type for %s", ErrUnsupportedOperation, kind, family)
}

// APIError represents a non-2xx answer from the service
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("follwit API error: %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return ErrTransport
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// DecodeError keeps the raw body of a response that did not match the expected shape.
type DecodeError struct {
	Endpoint string
	Body     string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// ServiceError is returned when the service answers a data request with a status object
// such as {"response": "error", "message": "..."}.
type ServiceError struct {
	Endpoint string
	Response string
	Message  string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("follwit %s failed: %s", e.Endpoint, e.Response)
	}
	return fmt.Sprintf("follwit %s failed: %s: %s", e.Endpoint, e.Response, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return ErrService
}
