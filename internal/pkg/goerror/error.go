// Package goerror carries the user-facing message and HTTP mapping of
// errors returned by use cases.
package goerror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned by stores when the requested record does not exist.
var ErrNotFound = errors.New("resource not found")

// Code is a stable identifier mapped to an HTTP status by Error.StatusCode.
type Code int

const (
	CodeInternal Code = iota
	CodeInvalidFormat
	CodeInvalidInput
	CodeNotFound
)

func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeNotFound:
		return "ERROR_CODE_NOT_FOUND"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error wraps an optional cause with the message shown to the client.
type Error struct {
	err  error
	msg  string
	code Code
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	if e.msg != "" {
		return e.msg
	}
	return "Internal error"
}

// String is the verbose form used in logs.
func (e *Error) String() string {
	return fmt.Sprintf("Code: %s, Message: %s, Underlying Error: %v", e.code, e.msg, e.err)
}

// Msg returns the user-facing message.
func (e *Error) Msg() string { return e.msg }

// Code returns the error code.
func (e *Error) Code() Code { return e.code }

// Unwrap returns the cause, if any.
func (e *Error) Unwrap() error { return e.err }

// StatusCode maps the code to an HTTP status.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidFormat:
		return http.StatusBadRequest
	case CodeInvalidInput:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewServer hides err behind a generic message.
func NewServer(err error) error {
	return &Error{err: err, msg: "Internal server error", code: CodeInternal}
}

// NewBusiness reports a rule the request broke, e.g. a missing record.
func NewBusiness(msg string, code Code) error {
	return &Error{msg: msg, code: code}
}

// NewInvalidInput wraps a struct validation failure.
func NewInvalidInput(err error) error {
	return &Error{err: err, msg: "Validation error", code: CodeInvalidInput}
}

// NewInvalidFormat reports input that could not be parsed. The message
// defaults to "Invalid request body".
func NewInvalidFormat(msgs ...string) error {
	msg := "Invalid request body"
	if len(msgs) > 0 {
		msg = msgs[0]
	}
	return &Error{msg: msg, code: CodeInvalidFormat}
}
