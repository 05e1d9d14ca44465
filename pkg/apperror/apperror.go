// Package apperror defines the typed failures raised by the directory and the
// authorization check. Only the HTTP boundary turns them into responses.
package apperror

import (
	"errors"
	"fmt"
)

// Kind tags a failure with the class the boundary maps to a status code.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindForbidden
	KindTooManyRequests
	KindMethodNotAllowed
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindConflict:
		return "ConflictError"
	case KindNotFound:
		return "NotFoundError"
	case KindForbidden:
		return "AuthorizationError"
	case KindTooManyRequests:
		return "RateLimitError"
	case KindMethodNotAllowed:
		return "MethodNotAllowedError"
	default:
		return "UnexpectedError"
	}
}

// Stable machine-readable codes carried in the error envelope.
const (
	CodeEmailAlreadyExists = "EmailAlreadyExists"
	CodeUserNotFound       = "UserNotFound"
	CodeBadRequest         = "BadRequest"
	CodeForbidden          = "Forbidden"
	CodeTooManyRequests    = "TooManyRequests"
	CodeNotFound           = "NotFound"
	CodeMethodNotAllowed   = "MethodNotAllowed"
)

// Error is a typed failure.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	// Field names the offending input field, when there is one.
	Field string
	// Details enumerates violated constraints for validation failures.
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// EmailAlreadyExists reports a uniqueness violation on the normalized email.
func EmailAlreadyExists(email string) *Error {
	return &Error{
		Kind:    KindConflict,
		Code:    CodeEmailAlreadyExists,
		Message: fmt.Sprintf("email '%s' is already in use", email),
		Field:   "email",
	}
}

// UserNotFound reports an unknown user id.
func UserNotFound(id int) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    CodeUserNotFound,
		Message: fmt.Sprintf("user %d not found", id),
	}
}

// Validation reports malformed, missing or extra input fields.
func Validation(details ...string) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    CodeBadRequest,
		Message: "invalid payload",
		Details: details,
	}
}

// InvalidField reports a single bad input field.
func InvalidField(field, msg string) *Error {
	e := Validation(field + " " + msg)
	e.Field = field
	return e
}

// Forbidden reports an authorization denial. The message never names the role
// that would have been accepted.
func Forbidden() *Error {
	return &Error{
		Kind:    KindForbidden,
		Code:    CodeForbidden,
		Message: "forbidden resource",
	}
}

// TooManyRequests reports a rate limit rejection.
func TooManyRequests() *Error {
	return &Error{
		Kind:    KindTooManyRequests,
		Code:    CodeTooManyRequests,
		Message: "rate limit exceeded",
	}
}

// RouteNotFound reports a request that matched no route.
func RouteNotFound(method, path string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf("cannot %s %s", method, path),
	}
}

// MethodNotAllowed reports a known path requested with an unsupported method.
func MethodNotAllowed(method, path string) *Error {
	return &Error{
		Kind:    KindMethodNotAllowed,
		Code:    CodeMethodNotAllowed,
		Message: fmt.Sprintf("method %s not allowed on %s", method, path),
	}
}

// KindOf returns the kind of err, or KindUnexpected when err is not typed.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// Is reports whether err is a typed failure of kind k.
func Is(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
