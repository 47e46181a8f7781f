package s1

import (
	"errors"
	"fmt"
	"math"
)

// ContractCode identifies the kind of precondition a caller violated.
type ContractCode string

const (
	// CodeOutOfRange marks an angle outside [-π, π] or NaN.
	CodeOutOfRange ContractCode = "OUT_OF_RANGE"

	// CodeEmptyInterval marks an operation that requires a non-empty interval.
	CodeEmptyInterval ContractCode = "EMPTY_INTERVAL"

	// CodeInternal marks a broken internal invariant (algorithm or precision bug).
	CodeInternal ContractCode = "INTERNAL"
)

// ContractError reports a violated precondition or internal invariant.
//
// NewInterval returns it as an ordinary error. Everywhere else it is only
// raised, as a panic value, when the package is built with the s1debug tag.
type ContractError struct {
	Code    ContractCode
	Op      string
	Message string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("s1: %s: %s: %s", e.Op, e.Code, e.Message)
}

// IsContractError reports whether err is (or wraps) a *ContractError.
func IsContractError(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}

// ContractCodeOf returns the code of a wrapped *ContractError, or "" if err
// does not carry one.
func ContractCodeOf(err error) ContractCode {
	var ce *ContractError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// ChecksEnabled reports whether contract checks were compiled in.
func ChecksEnabled() bool { return contractChecks }

// validAngle reports whether p lies in [-π, π]. NaN is rejected.
func validAngle(p float64) bool {
	return math.Abs(p) <= math.Pi
}

func checkAngle(op string, p float64) {
	if contractChecks && !validAngle(p) {
		panic(&ContractError{
			Code:    CodeOutOfRange,
			Op:      op,
			Message: fmt.Sprintf("angle %v outside [-π, π]", p),
		})
	}
}

func checkf(cond bool, code ContractCode, op, format string, args ...any) {
	if contractChecks && !cond {
		panic(&ContractError{Code: code, Op: op, Message: fmt.Sprintf(format, args...)})
	}
}
