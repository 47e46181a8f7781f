package eval

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes evaluation errors.
type ErrorCode string

const (
	// ErrCodeUnknownOp indicates the operation name is not registered.
	ErrCodeUnknownOp ErrorCode = "UNKNOWN_OP"

	// ErrCodeMissingArg indicates a required parameter was not supplied.
	ErrCodeMissingArg ErrorCode = "MISSING_ARG"

	// ErrCodeBadArg indicates a parameter that does not decode, is out of
	// range, or is not accepted by the operation.
	ErrCodeBadArg ErrorCode = "BAD_ARG"

	// ErrCodeContract indicates a violated operation precondition, such as
	// projecting onto an empty interval.
	ErrCodeContract ErrorCode = "CONTRACT"
)

// Error is returned for every failed evaluation.
type Error struct {
	Code    ErrorCode
	Op      string
	Arg     string
	Message string

	// Err is the underlying decode or contract error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Arg != "":
		return fmt.Sprintf("%s: %s (op=%s, arg=%s)", e.Code, e.Message, e.Op, e.Arg)
	case e.Op != "":
		return fmt.Sprintf("%s: %s (op=%s)", e.Code, e.Message, e.Op)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsErrorCode reports whether err carries the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

func badArg(op, arg string, err error) *Error {
	return &Error{Code: ErrCodeBadArg, Op: op, Arg: arg, Message: err.Error(), Err: err}
}
