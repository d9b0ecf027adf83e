package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAuthRequired    = errors.New("auth required")
	ErrInvalidArgument = errors.New("invalid argument")
)

type AuthRequiredError struct{ err error }

func (e *AuthRequiredError) Error() string        { return e.err.Error() }
func (e *AuthRequiredError) Unwrap() error        { return e.err }
func (e *AuthRequiredError) Is(target error) bool { return target == ErrAuthRequired }

func AuthRequired(err error) error {
	if err == nil {
		return nil
	}
	return &AuthRequiredError{err: err}
}

// InvalidArgumentError is returned when a caller supplied value is rejected
// before any request is made.
type InvalidArgumentError struct {
	Argument string
	err      error
}

func (e *InvalidArgumentError) Error() string        { return e.err.Error() }
func (e *InvalidArgumentError) Unwrap() error        { return e.err }
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

func InvalidArgumentf(argument, format string, args ...any) error {
	return &InvalidArgumentError{Argument: argument, err: fmt.Errorf(format, args...)}
}
