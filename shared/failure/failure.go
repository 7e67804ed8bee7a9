package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a failure independently of the transport that reports it.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindStore
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindStore:
		return "store"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"-"`
	Message string `json:"message"`
	cause   error
}

// Error returns the error message. The cause of store failures is never
// part of it.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying engine error for logging.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// Conflict reports a duplicate unique key. Clients see it as a bad request.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindConflict,
		Message: message,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(message string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: message,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// Store wraps an engine error behind a generic message.
func Store(msg string, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindStore,
		Message: msg,
		cause:   err,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of an error interface, KindInternal for foreign errors.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

func IsValidation(err error) bool {
	return GetKind(err) == KindValidation
}

func IsConflict(err error) bool {
	return GetKind(err) == KindConflict
}

func IsNotFound(err error) bool {
	return GetKind(err) == KindNotFound
}

func IsStore(err error) bool {
	return GetKind(err) == KindStore
}
