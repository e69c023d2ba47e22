package brochure

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID  = "invalid"   // malformed input or unparseable markup
	ENOTFOUND = "not_found" // entity does not exist
	EINTERNAL = "internal"  // internal error
	ENETWORK  = "network"   // connection failure or timeout
	EHTTP     = "http"      // non-2xx HTTP response
	ESCHEMA   = "schema"    // LLM response violates the declared output contract
)

// Error represents an application error with a machine-readable code and
// a human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("brochure error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper for constructing an *Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
