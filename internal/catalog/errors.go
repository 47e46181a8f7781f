package catalog

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue/token"
)

// Error codes. The E00x range matches the CLI's loader codes.
const (
	ErrCodeGeneric     = "E001"
	ErrCodeScanError   = "E002"
	ErrCodeNoFiles     = "E003"
	ErrCodeLoadFailed  = "E004"
	ErrCodeNotFound    = "E005"
	ErrCodeBuildFailed = "E006"

	ErrCodeSchema     = "E201" // entry does not match #Interval
	ErrCodeOutOfRange = "E202" // endpoint or point outside [-π, π]
	ErrCodeBadAngle   = "E203" // angle string does not parse
	ErrCodeDuplicate  = "E204" // name defined twice
)

// LoadError is a catalog error with an optional CUE source position.
type LoadError struct {
	Code    string
	Name    string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Name != "" {
		msg = fmt.Sprintf("interval.%s: %s", e.Name, e.Message)
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, msg)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// CodeOf returns the code of the first *LoadError in err's chain, or "".
func CodeOf(err error) string {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}
