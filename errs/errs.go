package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotImplemented     = errors.New("E0000: not implemented")
	ErrUsernameRequired   = errors.New("E0001: username is required")
	ErrPasswordRequired   = errors.New("E0002: password is required")
	ErrInvalidCredentials = errors.New("E0003: invalid username or password")
	ErrDatabase           = errors.New("E0004: database error")
	ErrCryptographic      = errors.New("E0005: cryptographic failure")
	ErrJWT                = errors.New("E0006: JWT failure")
	ErrTokenExpired       = errors.New("E0007: token expired")
	ErrUnauthorized       = errors.New("E0008: unauthorized")
	ErrNotFound           = errors.New("E0009: not found")
	ErrInvalidID          = errors.New("E0010: invalid ID")
	ErrNotOrganizer       = errors.New("E0011: not organizer")
	ErrWindowClosed       = errors.New("E0012: submission window is closed")
	ErrValidation         = errors.New("E0013: validation failed")
	ErrTeamNameTaken      = errors.New("E0014: team name already taken")
	ErrUsernameTaken      = errors.New("E0015: username already taken")
	ErrQueue              = errors.New("E0016: queue error")
	ErrCache              = errors.New("E0017: cache error")
)

// ValidationError describes a rejected input field. It matches ErrValidation
// under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func Invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
