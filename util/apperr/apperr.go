// Package apperr carries the error codes services hand to controllers.
package apperr

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeMissingField        Code = "MISSING_FIELD"
	CodeInvalid             Code = "INVALID"
	CodeInvalidDuration     Code = "INVALID_DURATION"
	CodeNoAvailableInstance Code = "NO_AVAILABLE_INSTANCE"
	CodeQueueBlocked        Code = "QUEUE_BLOCKED"
	CodeConflict            Code = "CONFLICT"
	CodeNotFound            Code = "NOT_FOUND"
)

type codedError struct {
	code Code
	msg  string
}

func (e codedError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return string(e.code)
}

func (e codedError) Code() Code { return e.code }

func New(c Code, msg string) error { return codedError{code: c, msg: msg} }

// CodeOf extracts the error code, or "" for uncoded errors.
func CodeOf(err error) Code {
	var ce interface{ Code() Code }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Status maps an error to the HTTP status the controllers respond with.
// Uncoded errors are internal.
func Status(err error) int {
	switch CodeOf(err) {
	case CodeMissingField, CodeInvalid, CodeInvalidDuration,
		CodeNoAvailableInstance, CodeQueueBlocked:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message is the client-facing message. Uncoded errors are masked.
func Message(err error) string {
	if CodeOf(err) == "" {
		return "internal error"
	}
	return err.Error()
}
