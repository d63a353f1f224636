package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ValidationError represents a rejected request: a missing or malformed
// required field, a future date of birth, an oversize upload.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return e.Message
}

func (e ValidationError) Is(target error) bool {
	_, ok := target.(ValidationError)
	if ok {
		return true
	}
	_, ok = target.(*ValidationError)
	return ok
}

// ErrValidation is the sentinel error for validation failures.
var ErrValidation = ValidationError{}

// Invalid builds a ValidationError from a format string.
func Invalid(format string, args ...any) error {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UnavailableError signals that an optional collaborator (email provider,
// object storage) is not configured.
type UnavailableError struct {
	Message string
}

func (e UnavailableError) Error() string {
	if e.Message == "" {
		return "service unavailable"
	}
	return e.Message
}

func (e UnavailableError) Is(target error) bool {
	_, ok := target.(UnavailableError)
	if ok {
		return true
	}
	_, ok = target.(*UnavailableError)
	return ok
}

// ErrUnavailable is the sentinel error for unconfigured collaborators.
var ErrUnavailable = UnavailableError{}

// ErrUnauthorized is returned when a bearer token is missing or invalid.
var ErrUnauthorized = fmt.Errorf("unauthorized")
