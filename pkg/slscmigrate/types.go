package slscmigrate

import (
	"errors"
	"fmt"
)

// MigrationConfig contains all parameters needed for a migration run.
type MigrationConfig struct {
	// InputPath is the system definition file to migrate
	InputPath string

	// OutputPath is where the migrated document is written.
	// Ignored when InPlace is set.
	OutputPath string

	// InPlace replaces the input file with the migrated document
	InPlace bool

	// Backup keeps a copy of the original bytes next to the input (InPlace only)
	Backup bool

	// Force skips the confirmation prompt when the output file already exists
	Force bool

	// DryRun performs the full migration but writes nothing
	DryRun bool

	// Indent re-indents the whole document with this many spaces; 0 keeps the original layout
	Indent int

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the MigrationConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *MigrationConfig) Validate() error {
	var errs []error

	if c.InputPath == "" {
		errs = append(errs, fmt.Errorf("InputPath is required: %w", ErrInvalidConfig))
	}

	if !c.InPlace && !c.DryRun && c.OutputPath == "" {
		errs = append(errs, fmt.Errorf("OutputPath is required unless migrating in place: %w", ErrInvalidConfig))
	}

	if c.InPlace && c.OutputPath != "" && c.OutputPath != c.InputPath {
		errs = append(errs, fmt.Errorf("in-place migration cannot also name a different output: %w", ErrInvalidConfig))
	}

	if c.Backup && !c.InPlace {
		errs = append(errs, fmt.Errorf("backup requires in-place migration: %w", ErrInvalidConfig))
	}

	if c.Indent < 0 {
		errs = append(errs, fmt.Errorf("indent cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Destination returns the path the migrated document is written to.
func (c *MigrationConfig) Destination() string {
	if c.InPlace {
		return c.InputPath
	}
	return c.OutputPath
}

// Outcome classifies how a run ended when it did not fail.
type Outcome int

const (
	// OutcomeMigrated means the document was migrated and written.
	OutcomeMigrated Outcome = iota
	// OutcomeAlreadyCurrent means the document needed no migration; nothing was written.
	OutcomeAlreadyCurrent
	// OutcomeDryRun means the document was migrated in memory only.
	OutcomeDryRun
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMigrated:
		return "migrated"
	case OutcomeAlreadyCurrent:
		return "already-current"
	case OutcomeDryRun:
		return "dry-run"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Report summarizes what a migration run did to one document.
type Report struct {
	RunID          string `yaml:"run_id"`
	InputChecksum  string `yaml:"input_sha256"`
	OutputChecksum string `yaml:"output_sha256,omitempty"`
	Version        string `yaml:"version"`
	Targets        int    `yaml:"targets"`
	Devices        int    `yaml:"devices"`
	Chassis        int    `yaml:"chassis"`
	Modules        int    `yaml:"modules"`
	FillerModules  int    `yaml:"filler_modules"`
	Aliases        int    `yaml:"aliases_rewritten"`
}

// Result is returned by a successful run, including the already-current case.
type Result struct {
	Outcome    Outcome
	OutputPath string
	BackupPath string
	Report     Report
}
