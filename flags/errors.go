package flags

import (
	"errors"
)

// ErrorType represents the category of a parse failure.
// Categories drive exit-code mapping (see ExitCode) and errors.Is matching.
type ErrorType string

const (
	// ErrorTypeInvalidConfig: the caller passed structurally invalid input,
	// e.g no flags or no arguments
	ErrorTypeInvalidConfig ErrorType = "invalid_config"
	// ErrorTypeDuplicateFlag: two flags share a short or a long name
	ErrorTypeDuplicateFlag ErrorType = "duplicate_flag"
	// ErrorTypeTooManyArgs: more arguments than the mask can represent
	ErrorTypeTooManyArgs ErrorType = "too_many_arguments"
	// ErrorTypeUnknownFlag: a flag-shaped token matched nothing
	ErrorTypeUnknownFlag ErrorType = "unknown_flag"
	// ErrorTypeMissingValue: a string flag was last with no value after it
	ErrorTypeMissingValue ErrorType = "missing_value"
)

// Messages passed to ErrorCallback
const (
	msgTooManyArgs  = "too many arguments"
	msgInvalidInput = "one or more arguments are invalid"
	msgUnknownFlag  = "unknown flag"
	msgNoValue      = "no value provided"
)

// Sentinels for errors.Is. A *ParseError matches the sentinel of its type.
var (
	ErrInvalidConfig = &ParseError{Type: ErrorTypeInvalidConfig, Message: msgInvalidInput, Index: -1}
	ErrDuplicateFlag = &ParseError{Type: ErrorTypeDuplicateFlag, Message: "duplicate flag", Index: -1}
	ErrTooManyArgs   = &ParseError{Type: ErrorTypeTooManyArgs, Message: msgTooManyArgs, Index: -1}
	ErrUnknownFlag   = &ParseError{Type: ErrorTypeUnknownFlag, Message: msgUnknownFlag, Index: -1}
	ErrMissingValue  = &ParseError{Type: ErrorTypeMissingValue, Message: msgNoValue, Index: -1}
)

// ParseError describes why a parse failed. Parsing always stops at the first
// error, so there is never more than one.
type ParseError struct {
	Type ErrorType
	// Cause is what the error is about: the offending short character or
	// long name, or "argc" / "Parse()" for input-level errors.
	Cause   string
	Message string
	// Index is the argument the error refers to, -1 if none
	Index int
	// Long is set when Cause is a long flag name
	Long bool
	// Suggestion is the closest known long name, when suggestions are enabled
	Suggestion string
}

func newParseError(typ ErrorType, cause, message string, index int) *ParseError {
	return &ParseError{
		Type:    typ,
		Cause:   cause,
		Message: message,
		Index:   index,
	}
}

// Error renders "cause: message", the format the demo program prints
func (e *ParseError) Error() string {
	if e.Cause == "" {
		return e.Message
	}
	return e.Cause + ": " + e.Message
}

// Is matches another *ParseError of the same type, so the sentinels work
// with errors.Is
func (e *ParseError) Is(target error) bool {
	var pe *ParseError
	if !errors.As(target, &pe) {
		return false
	}
	return pe.Type == e.Type
}

// Flag returns the flag name as it appeared on the command line,
// e.g "-k" or "--key"
func (e *ParseError) Flag() string {
	switch e.Type {
	case ErrorTypeUnknownFlag, ErrorTypeMissingValue:
		if e.Long {
			return "--" + e.Cause
		}
		return "-" + e.Cause
	default:
		return ""
	}
}

// ErrorCallback receives the cause and message of a failed parse. It is
// called exactly once per failure, before Parse returns the error.
type ErrorCallback func(cause, message string)
