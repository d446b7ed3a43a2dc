package apperr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error codes
const (
	CodeUnknown = iota + 1000
	CodeOutput
	CodeConfig
)

// AppError is an error carrying a stable code and a human readable message.
type AppError struct {
	Code    int
	Message string
	cause   error
}

// New creates an AppError. cause may be nil.
func New(code int, msg string, cause error) *AppError {
	return &AppError{Code: code, Message: msg, cause: cause}
}

// Wrap annotates err with a code and message. Returns nil if err is nil.
func Wrap(err error, code int, msg string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: msg, cause: errors.WithStack(err)}
}

func (e *AppError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("[%d] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.cause)
}

// Unwrap returns the wrapped error.
func (e *AppError) Unwrap() error { return e.cause }

// Cause returns the root cause, following pkg/errors causer chains.
func (e *AppError) Cause() error {
	if e.cause == nil {
		return nil
	}
	return errors.Cause(e.cause)
}

// Is matches AppErrors by code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// CodeOf returns the code of the first AppError in err's chain, or CodeUnknown.
func CodeOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}
