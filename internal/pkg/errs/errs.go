package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every typed error in this package unwraps to exactly one of them,
// so callers can classify a failure with errors.Is without knowing the concrete type.
var (
	ErrIDIsInvalid     = errors.New("id is invalid")
	ErrIDAlreadyExists = errors.New("id already exists")
	ErrIDNotFound      = errors.New("id was not found")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrValueIsRequired = errors.New("value is required")
)

// IDIsInvalidError is returned when a supplied identifier is not a well-formed unique token.
type IDIsInvalidError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewIDIsInvalidError creates an IDIsInvalidError for the given parameter and raw value.
func NewIDIsInvalidError(paramName string, value any) *IDIsInvalidError {
	return &IDIsInvalidError{
		ParamName: paramName,
		Value:     value,
	}
}

// NewIDIsInvalidErrorWithCause creates an IDIsInvalidError that carries the underlying parse failure.
func NewIDIsInvalidErrorWithCause(paramName string, value any, cause error) *IDIsInvalidError {
	return &IDIsInvalidError{
		ParamName: paramName,
		Value:     value,
		Cause:     cause,
	}
}

func (e *IDIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %q (cause: %v)",
			ErrIDIsInvalid, e.ParamName, sanitize(e.Value), e.Cause)
	}
	return fmt.Sprintf("%s: %s is %q", ErrIDIsInvalid, e.ParamName, sanitize(e.Value))
}

func (e *IDIsInvalidError) Unwrap() []error {
	return unwrap(ErrIDIsInvalid, e.Cause)
}

// IDAlreadyExistsError is returned when an identifier is already present where uniqueness is required.
type IDAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewIDAlreadyExistsError creates an IDAlreadyExistsError.
func NewIDAlreadyExistsError(paramName string, id any) *IDAlreadyExistsError {
	return &IDAlreadyExistsError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewIDAlreadyExistsErrorWithCause creates an IDAlreadyExistsError with a cause.
func NewIDAlreadyExistsErrorWithCause(paramName string, id any, cause error) *IDAlreadyExistsError {
	return &IDAlreadyExistsError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *IDAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrIDAlreadyExists, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrIDAlreadyExists, e.ID)
}

func (e *IDAlreadyExistsError) Unwrap() []error {
	return unwrap(ErrIDAlreadyExists, e.Cause)
}

// IDNotFoundError is returned when an identifier was expected to be present but is absent.
type IDNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewIDNotFoundError creates an IDNotFoundError.
func NewIDNotFoundError(paramName string, id any) *IDNotFoundError {
	return &IDNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewIDNotFoundErrorWithCause creates an IDNotFoundError with a cause.
func NewIDNotFoundErrorWithCause(paramName string, id any, cause error) *IDNotFoundError {
	return &IDNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *IDNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrIDNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrIDNotFound, e.ID)
}

func (e *IDNotFoundError) Unwrap() []error {
	return unwrap(ErrIDNotFound, e.Cause)
}

// ValueIsInvalidError is returned when a value fails a business rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with a cause.
// Domain packages pass their own sentinel as (part of) the cause so that
// errors.Is matches both the domain sentinel and ErrValueIsInvalid.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() []error {
	return unwrap(ErrValueIsInvalid, e.Cause)
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
	}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() []error {
	return unwrap(ErrValueIsRequired, e.Cause)
}

func unwrap(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}

// sanitize keeps user supplied values on a single line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprint(v), "\n", " ")
}
