package slscmigrate_test

import (
	"errors"
	"testing"

	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

func TestMigrationConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    slscmigrate.MigrationConfig
		wantError bool
	}{
		{
			name:   "valid config",
			config: slscmigrate.MigrationConfig{InputPath: "in.nivssdf", OutputPath: "out.nivssdf"},
		},
		{
			name:   "valid in place with backup",
			config: slscmigrate.MigrationConfig{InputPath: "in.nivssdf", InPlace: true, Backup: true},
		},
		{
			name:   "dry run needs no output",
			config: slscmigrate.MigrationConfig{InputPath: "in.nivssdf", DryRun: true},
		},
		{
			name:      "missing input",
			config:    slscmigrate.MigrationConfig{OutputPath: "out.nivssdf"},
			wantError: true,
		},
		{
			name:      "missing output",
			config:    slscmigrate.MigrationConfig{InputPath: "in.nivssdf"},
			wantError: true,
		},
		{
			name:      "in place with different output",
			config:    slscmigrate.MigrationConfig{InputPath: "in.nivssdf", OutputPath: "other.nivssdf", InPlace: true},
			wantError: true,
		},
		{
			name:      "backup without in place",
			config:    slscmigrate.MigrationConfig{InputPath: "in.nivssdf", OutputPath: "out.nivssdf", Backup: true},
			wantError: true,
		},
		{
			name:      "negative indent",
			config:    slscmigrate.MigrationConfig{InputPath: "in.nivssdf", OutputPath: "out.nivssdf", Indent: -1},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if !errors.Is(err, slscmigrate.ErrInvalidConfig) {
					t.Errorf("Expected ErrInvalidConfig, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestMigrationConfig_Destination(t *testing.T) {
	inPlace := slscmigrate.MigrationConfig{InputPath: "a.nivssdf", InPlace: true}
	if got := inPlace.Destination(); got != "a.nivssdf" {
		t.Errorf("Destination() = %q, want a.nivssdf", got)
	}

	separate := slscmigrate.MigrationConfig{InputPath: "a.nivssdf", OutputPath: "b.nivssdf"}
	if got := separate.Destination(); got != "b.nivssdf" {
		t.Errorf("Destination() = %q, want b.nivssdf", got)
	}
}

func TestOutcome_String(t *testing.T) {
	tests := map[slscmigrate.Outcome]string{
		slscmigrate.OutcomeMigrated:       "migrated",
		slscmigrate.OutcomeAlreadyCurrent: "already-current",
		slscmigrate.OutcomeDryRun:         "dry-run",
		slscmigrate.Outcome(42):           "Outcome(42)",
	}
	for outcome, want := range tests {
		if got := outcome.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
