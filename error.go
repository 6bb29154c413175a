package wikitoc

import (
	"errors"
	"fmt"
)

// Application error codes. Policy rejections are not errors; they travel
// as Verdict values.
const (
	EINTERNAL    = "internal"    // unexpected failure
	EINVALID     = "invalid"     // input or document cannot be processed
	ETIMEOUT     = "timeout"     // deadline exceeded
	EUNAVAILABLE = "unavailable" // connection to the upstream site failed
	EUPSTREAM    = "upstream"    // upstream site answered with an error status
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description safe to show to callers.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("wikitoc error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of an error, EINTERNAL for non-application
// errors, and the empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of an error, a generic message for
// non-application errors, and the empty string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error has occurred."
}
