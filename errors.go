package recipeclip

import (
	"errors"
	"fmt"
)

// Application error codes. Each code maps to a distinct, stable category of
// user-visible failure so callers can tell "bad URL" from "site unreachable"
// from "the model could not parse this page".
const (
	ECONFLICT    = "conflict"          // conflicting write
	EINCOMPLETE  = "incomplete"        // extracted record misses required fields
	EINTERNAL    = "internal"          // unexpected internal error
	EINVALID     = "invalid"           // invalid input
	EMALFORMED   = "malformed"         // model output could not be parsed or repaired
	EMODEL       = "model_unavailable" // model call failed (auth, rate limit, timeout)
	ENOTFOUND    = "not_found"         // record does not exist
	ETOOLARGE    = "too_large"         // response exceeded the size cap
	EUNAVAILABLE = "unavailable"       // network failure (DNS, connection, timeout)
	EUPSTREAM    = "upstream"          // non-2xx HTTP status from the source site
)

// Error represents an application error with a machine-readable code and a
// human-readable message. Raw causes are folded into the message; stack
// traces are never surfaced to callers.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("recipeclip error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of err if it is an *Error, EINTERNAL for any
// other non-nil error, and the empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of err if it is an *Error, a generic
// message for any other non-nil error, and the empty string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
