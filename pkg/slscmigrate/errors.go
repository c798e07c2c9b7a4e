package slscmigrate

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	result, err := service.Run(ctx, config)
//	if errors.Is(err, slscmigrate.ErrUnknownModuleKind) {
//	    // Document contains a module this tool cannot migrate
//	}
var (
	// ErrAlreadyMigrated indicates the document is already at or above the
	// target schema version. It is an outcome, not a failure: callers report it
	// and write nothing.
	ErrAlreadyMigrated = errors.New("document is already up to date")

	// ErrStructuralMismatch indicates a node or property the migration depends
	// on is absent or unparsable.
	ErrStructuralMismatch = errors.New("structural mismatch")

	// ErrMalformedBinaryProperty indicates a base64 binary property could not be decoded.
	ErrMalformedBinaryProperty = errors.New("malformed binary property")

	// ErrUnknownModuleKind indicates a module whose schema kind has no migration rule.
	ErrUnknownModuleKind = errors.New("unknown module kind")

	// ErrMixedState indicates a target that holds both the legacy and the native
	// SLSC device. It wraps ErrStructuralMismatch.
	ErrMixedState = fmt.Errorf("target is partially migrated: %w", ErrStructuralMismatch)

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInputNotFound indicates the input document could not be read.
	ErrInputNotFound = errors.New("input document not found")

	// ErrInvalidDocument indicates the input is not well-formed XML.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrApprovalDenied indicates the user denied overwriting an existing output file.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrOutputLocked indicates another process is writing the same output file.
	ErrOutputLocked = errors.New("output file is locked")
)

// usageErrorPatterns are message fragments cobra and pflag produce for command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"arg(s), received",
	"required flag",
	"invalid argument",
	"missing required argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors and ErrAlreadyMigrated, semantic codes
// for known errors, and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrAlreadyMigrated):
		return ExitSuccess
	case errors.Is(err, ErrUnknownModuleKind):
		return ExitUnknownModuleKind
	case errors.Is(err, ErrMalformedBinaryProperty):
		return ExitMalformedBinary
	case errors.Is(err, ErrStructuralMismatch):
		return ExitStructuralMismatch
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInputNotFound):
		return ExitInputError
	case errors.Is(err, ErrInvalidDocument):
		return ExitInvalidDocument
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrOutputLocked):
		return ExitOutputLocked
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
