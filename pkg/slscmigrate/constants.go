package slscmigrate

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success (including documents that are already current)
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess            = 0  // Migration completed or nothing to do
	ExitGeneralError       = 1  // Unknown or unclassified error
	ExitUsageError         = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic              = 3  // Internal panic (unexpected crash)
	ExitConfigError        = 10 // Invalid configuration
	ExitInputError         = 11 // Input document missing or unreadable
	ExitApprovalDenied     = 12 // User denied overwriting the output file
	ExitInvalidDocument    = 13 // Input is not a well-formed XML document
	ExitOutputLocked       = 14 // Another process holds the output lock
	ExitStructuralMismatch = 20 // Document does not have the shape migration expects
	ExitMalformedBinary    = 21 // Binary property could not be decoded
	ExitUnknownModuleKind  = 22 // Module kind has no migration rule
)

const (
	// TargetSchemaMajor is the first system definition major version that already
	// uses the native Hardware schema for SLSC chassis.
	TargetSchemaMajor = 2017

	// DefaultOutputSuffix is appended to the input file stem when no output path is given.
	DefaultOutputSuffix = "_migrated"

	// BackupSuffix is appended to the input path when an in-place migration keeps a backup.
	BackupSuffix = ".bak"

	// LockSuffix names the lock file held next to the output while it is written.
	LockSuffix = ".lock"

	// ConfigFileName is the optional per-directory configuration file.
	ConfigFileName = "slscmigrate.yaml"

	// EnvPrefix is the prefix for environment variable overrides (SLSCMIGRATE_OUTPUT_INDENT, ...).
	EnvPrefix = "SLSCMIGRATE"
)
