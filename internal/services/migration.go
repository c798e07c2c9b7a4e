package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/vvka-141/slscmigrate/internal/checksum"
	"github.com/vvka-141/slscmigrate/internal/files/filesystem"
	"github.com/vvka-141/slscmigrate/internal/migrate"
	"github.com/vvka-141/slscmigrate/internal/retry"
	"github.com/vvka-141/slscmigrate/internal/sysdef"
	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

// outputPerm is the mode of a newly created output or backup file.
const outputPerm fs.FileMode = 0644

// DefaultLockRetries is how many times a run retries taking a held output lock.
const DefaultLockRetries = 5

// Option configures a MigrationService.
type Option func(*MigrationService)

// WithLockBackoff sets how long a run waits for an output lock held by another process.
func WithLockBackoff(strategy slscmigrate.BackoffStrategy) Option {
	return func(s *MigrationService) {
		s.lockRetry = retry.NewExecutor(retry.NewLockClassifier(), strategy)
	}
}

// MigrationService implements the Runner interface.
// Thread-Safety: safe for concurrent Run() calls on different outputs; runs that
// target the same output are serialized by the output lock and the loser fails
// with ErrOutputLocked.
type MigrationService struct {
	fs       filesystem.FileSystemProvider
	approver slscmigrate.Approver
	logger   slscmigrate.Logger
	checksum checksum.Calculator

	lockRetry *retry.Executor
}

// NewMigrationService creates a new MigrationService with all dependencies injected.
//
// Panics on nil dependencies: these are wiring mistakes that should fail at
// startup. Everything that can go wrong while a document is processed is
// returned as an error.
func NewMigrationService(
	fsys filesystem.FileSystemProvider,
	approver slscmigrate.Approver,
	logger slscmigrate.Logger,
	calculator checksum.Calculator,
	opts ...Option,
) *MigrationService {
	if fsys == nil {
		panic("filesystem cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if calculator == nil {
		panic("calculator cannot be nil")
	}

	s := &MigrationService{
		fs:        fsys,
		approver:  approver,
		logger:    logger,
		checksum:  calculator,
		lockRetry: retry.NewExecutor(retry.NewLockClassifier(), retry.NewExponentialBackoff(DefaultLockRetries)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run migrates config.InputPath and writes the result to config.Destination().
//
// Nothing is written unless the whole migration succeeds. The output is
// replaced atomically while its lock is held.
func (s *MigrationService) Run(ctx context.Context, config slscmigrate.MigrationConfig) (*slscmigrate.Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	input, err := s.read(config.InputPath)
	if err != nil {
		return nil, err
	}
	inputSum := s.checksum.Calculate(input)

	s.logger.Info("Parsing %s", config.InputPath)
	doc, err := sysdef.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.InputPath, err)
	}

	stats, err := migrate.New(s.logger).Migrate(doc)
	report := migrate.NewReport(stats, inputSum)
	if errors.Is(err, slscmigrate.ErrAlreadyMigrated) {
		s.logger.Info("%s is already up to date (version %s). Nothing to do.", config.InputPath, stats.Version)
		return &slscmigrate.Result{Outcome: slscmigrate.OutcomeAlreadyCurrent, Report: report}, nil
	}
	if err != nil {
		return nil, err
	}

	output, err := doc.Bytes(config.Indent)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize migrated document: %w", err)
	}
	report.OutputChecksum = s.checksum.Calculate(output)

	destination := config.Destination()
	if config.DryRun {
		s.logger.Info("Dry run: %s was not written", destination)
		return &slscmigrate.Result{Outcome: slscmigrate.OutcomeDryRun, OutputPath: destination, Report: report}, nil
	}

	backup, err := s.write(ctx, config, input, output)
	if err != nil {
		return nil, err
	}

	s.logRunReport(report)
	return &slscmigrate.Result{
		Outcome:    slscmigrate.OutcomeMigrated,
		OutputPath: destination,
		BackupPath: backup,
		Report:     report,
	}, nil
}

// Inspect reports what a migration of path would convert without writing anything.
func (s *MigrationService) Inspect(path string) (migrate.Inspection, error) {
	input, err := s.read(path)
	if err != nil {
		return migrate.Inspection{}, err
	}
	doc, err := sysdef.Parse(input)
	if err != nil {
		return migrate.Inspection{}, fmt.Errorf("%s: %w", path, err)
	}
	return migrate.Inspect(doc)
}

func (s *MigrationService) read(path string) ([]byte, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", slscmigrate.ErrInputNotFound, path, err)
	}
	return data, nil
}

// write holds the destination lock while it asks for approval, keeps the
// backup and replaces the destination. It returns the backup path, if any.
func (s *MigrationService) write(ctx context.Context, config slscmigrate.MigrationConfig, input, output []byte) (string, error) {
	destination := config.Destination()

	lock, err := s.lock(ctx, destination)
	if err != nil {
		return "", err
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			s.logger.Error("failed to release lock for %s: %v", destination, unlockErr)
		}
	}()

	if !config.InPlace {
		if err := s.confirmOverwrite(ctx, destination); err != nil {
			return "", err
		}
	}

	var backup string
	if config.InPlace && config.Backup {
		backup = config.InputPath + slscmigrate.BackupSuffix
		s.logger.Verbose("Backing up %s to %s", config.InputPath, backup)
		if err := s.fs.WriteFile(backup, input, outputPerm); err != nil {
			return "", fmt.Errorf("failed to write backup %s: %w", backup, err)
		}
	}

	s.logger.Info("Writing %s", destination)
	if err := s.fs.WriteFile(destination, output, outputPerm); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", destination, err)
	}
	return backup, nil
}

// lock takes the destination lock, waiting with backoff while another process holds it.
func (s *MigrationService) lock(ctx context.Context, destination string) (filesystem.Unlocker, error) {
	var lock filesystem.Unlocker
	err := s.lockRetry.
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			s.logger.Verbose("%s is locked by another process, retrying in %s", destination, delay.Round(time.Millisecond))
		}).
		Execute(ctx, func(ctx context.Context) error {
			var err error
			lock, err = s.fs.Lock(destination)
			return err
		})
	if err != nil {
		return nil, err
	}
	return lock, nil
}

// confirmOverwrite asks the approver before an existing destination is replaced.
func (s *MigrationService) confirmOverwrite(ctx context.Context, destination string) error {
	if _, err := s.fs.Stat(destination); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", destination, err)
	}

	approved, err := s.approver.RequestApproval(ctx, destination)
	if err != nil {
		return fmt.Errorf("approval failed: %w", err)
	}
	if !approved {
		return fmt.Errorf("%w: %s was not overwritten", slscmigrate.ErrApprovalDenied, destination)
	}
	return nil
}

func (s *MigrationService) logRunReport(r slscmigrate.Report) {
	s.logger.Verbose("Run %s: %d target(s), %d device(s), %d chassis, %d module(s), %d filler(s), %d alias(es) rewritten",
		r.RunID, r.Targets, r.Devices, r.Chassis, r.Modules, r.FillerModules, r.Aliases)
}

// DefaultOutputPath derives the output path for input by appending suffix to
// the file stem: "dir/system.nivssdf" becomes "dir/system_migrated.nivssdf".
func DefaultOutputPath(input, suffix string) string {
	if suffix == "" {
		suffix = slscmigrate.DefaultOutputSuffix
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}
