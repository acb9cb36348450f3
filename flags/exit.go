package flags

import "errors"

// Process exit codes for parse outcomes
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitMisusage     = 2
)

// ExitCode maps a Parse error to a process exit code:
//
//	nil                           -> ExitSuccess
//	unknown flag, missing value   -> ExitMisusage
//	anything else                 -> ExitGeneralError
//
// Configuration and capacity errors are the program's fault, not the user's,
// so they do not count as misusage.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		return ExitGeneralError
	}

	switch pe.Type {
	case ErrorTypeUnknownFlag, ErrorTypeMissingValue:
		return ExitMisusage
	case ErrorTypeInvalidConfig, ErrorTypeDuplicateFlag, ErrorTypeTooManyArgs:
		return ExitGeneralError
	default:
		return ExitGeneralError
	}
}
