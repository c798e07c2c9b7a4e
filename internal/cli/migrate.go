package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/slscmigrate/internal/checksum"
	"github.com/vvka-141/slscmigrate/internal/config"
	"github.com/vvka-141/slscmigrate/internal/files/filesystem"
	"github.com/vvka-141/slscmigrate/internal/logging"
	"github.com/vvka-141/slscmigrate/internal/services"
	"github.com/vvka-141/slscmigrate/internal/ui"
	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <input> [output]",
	Short: "Migrate a system definition to the native SLSC hardware schema",
	Long: `Migrate reads a system definition, converts every legacy SLSC custom device
into native Hardware sections and writes the result.

The migration is all-or-nothing: if any chassis or module cannot be converted,
nothing is written.

Arguments:
  input     System definition file to migrate
  output    Where to write the migrated document (optional)
            Defaults to <input-stem>_migrated<ext> next to the input

Configuration:
  An optional slscmigrate.yaml in the input's directory sets defaults for
  output.indent, output.backup, output.suffix, log.file and log.verbose.
  SLSCMIGRATE_* environment variables (also read from .env) override the file,
  and flags override both.

Examples:
  # Write system_migrated.nivssdf next to the input
  slscmigrate migrate ./system.nivssdf

  # Replace the input, keeping system.nivssdf.bak
  slscmigrate migrate ./system.nivssdf --in-place --backup

  # See what would change without writing anything
  slscmigrate migrate ./system.nivssdf --dry-run --report`,
	Args: RequireInputAndOptionalOutput,
	RunE: runMigrate,
}

type migrateFlagValues struct {
	output  string
	inPlace bool
	force   bool
	dryRun  bool
	backup  bool
	indent  int
	logFile string
	report  bool
}

var migrateFlags migrateFlagValues

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().StringVarP(&migrateFlags.output, "output", "o", "",
		"Output file (same as the second argument)")
	migrateCmd.Flags().BoolVar(&migrateFlags.inPlace, "in-place", false,
		"Replace the input file with the migrated document")
	migrateCmd.Flags().BoolVar(&migrateFlags.force, "force", false,
		"Overwrite an existing output file without asking")
	migrateCmd.Flags().BoolVar(&migrateFlags.dryRun, "dry-run", false,
		"Run the whole migration but write nothing")
	migrateCmd.Flags().BoolVar(&migrateFlags.backup, "backup", false,
		"Keep the original as <input>.bak (requires --in-place)\n"+
			"Precedence: --backup > $SLSCMIGRATE_OUTPUT_BACKUP > output.backup")
	migrateCmd.Flags().IntVar(&migrateFlags.indent, "indent", 0,
		"Re-indent the whole document with this many spaces; 0 keeps the original layout\n"+
			"Precedence: --indent > $SLSCMIGRATE_OUTPUT_INDENT > output.indent")
	migrateCmd.Flags().StringVar(&migrateFlags.logFile, "log-file", "",
		"Also append log lines to this file (rotated at 10 MB)\n"+
			"Precedence: --log-file > $SLSCMIGRATE_LOG_FILE > log.file")
	migrateCmd.Flags().BoolVar(&migrateFlags.report, "report", false,
		"Print the run report as YAML on stdout")
}

// migrationSetup is everything runMigrate needs, resolved from flags, environment and slscmigrate.yaml.
type migrationSetup struct {
	config  slscmigrate.MigrationConfig
	logFile string
}

// buildMigrationConfig resolves the run configuration.
// Precedence: flag > environment > slscmigrate.yaml > default.
func buildMigrationConfig(cmd *cobra.Command, args []string, verbose bool) (migrationSetup, error) {
	_ = godotenv.Load()

	input := args[0]
	projectCfg, err := config.Load(filepath.Dir(input))
	if err != nil {
		return migrationSetup{}, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}

	output := migrateFlags.output
	if len(args) > 1 {
		if output != "" && output != args[1] {
			return migrationSetup{}, fmt.Errorf("output given both as argument and --output: %w", slscmigrate.ErrInvalidConfig)
		}
		output = args[1]
	}
	if output == "" && !migrateFlags.inPlace {
		output = services.DefaultOutputPath(input, projectCfg.Output.Suffix)
	}

	indent := projectCfg.Output.Indent
	if cmd.Flags().Changed("indent") {
		indent = migrateFlags.indent
	}

	backup := migrateFlags.backup
	if !cmd.Flags().Changed("backup") && migrateFlags.inPlace {
		backup = projectCfg.Output.Backup
	}

	logFile := projectCfg.Log.File
	if cmd.Flags().Changed("log-file") {
		logFile = migrateFlags.logFile
	}

	if verbose && projectCfg.Path != "" {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Using configuration %s\n", projectCfg.Path)
	}

	return migrationSetup{
		config: slscmigrate.MigrationConfig{
			InputPath:  input,
			OutputPath: output,
			InPlace:    migrateFlags.inPlace,
			Backup:     backup,
			Force:      migrateFlags.force,
			DryRun:     migrateFlags.dryRun,
			Indent:     indent,
			Verbose:    verbose || projectCfg.Log.Verbose,
		},
		logFile: logFile,
	}, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	setup, err := buildMigrationConfig(cmd, args, getVerboseFlag(cmd))
	if err != nil {
		return err
	}
	cfg := setup.config

	logger, closeLog := newLogger(cfg.Verbose, setup.logFile)
	defer closeLog()

	approver := ui.NewApprover(cfg.Force, cfg.Verbose, ui.DetectMode())
	migrator := services.NewMigrationService(
		filesystem.NewOSFileSystem(),
		approver,
		logger,
		checksum.New(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals (Ctrl+C, SIGTERM) while waiting for approval
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling migration...")
			cancel()
		case <-ctx.Done():
		}
	}()

	result, err := migrator.Run(ctx, cfg)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Failure("Migration failed"))
		return fmt.Errorf("migration failed: %w", err)
	}

	printResult(cmd.ErrOrStderr(), cfg, result)
	if migrateFlags.report {
		return writeReport(cmd.OutOrStdout(), result.Report)
	}
	return nil
}

// newLogger builds the console logger, teed into a rotating file when logFile is set.
// The returned func closes the file.
func newLogger(verbose bool, logFile string) (slscmigrate.Logger, func()) {
	console := logging.NewConsoleLogger(verbose)
	if logFile == "" {
		return console, func() {}
	}
	file := logging.NewFileLogger(logFile, verbose)
	return logging.NewTeeLogger(console, file), func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file %s: %v\n", logFile, err)
		}
	}
}

func printResult(w io.Writer, cfg slscmigrate.MigrationConfig, result *slscmigrate.Result) {
	r := result.Report
	switch result.Outcome {
	case slscmigrate.OutcomeAlreadyCurrent:
		fmt.Fprintln(w, ui.Success(fmt.Sprintf("%s is already up to date (version %s)", cfg.InputPath, r.Version)))
		return
	case slscmigrate.OutcomeDryRun:
		fmt.Fprintln(w, ui.Warning(fmt.Sprintf("Dry run: %s was not written", result.OutputPath)))
	default:
		fmt.Fprintln(w, ui.Success(fmt.Sprintf("Migrated %s %s %s", cfg.InputPath, ui.SymbolArrowRight, result.OutputPath)))
	}

	if result.BackupPath != "" {
		fmt.Fprintln(w, ui.Field("Backup", result.BackupPath))
	}
	if !cfg.Verbose {
		return
	}
	fmt.Fprintln(w, ui.Field("Run ID", r.RunID))
	fmt.Fprintln(w, ui.Field("Version", r.Version))
	fmt.Fprintln(w, ui.Field("Targets", strconv.Itoa(r.Targets)))
	fmt.Fprintln(w, ui.Field("Devices", strconv.Itoa(r.Devices)))
	fmt.Fprintln(w, ui.Field("Chassis", strconv.Itoa(r.Chassis)))
	fmt.Fprintln(w, ui.Field("Modules", strconv.Itoa(r.Modules)))
	fmt.Fprintln(w, ui.Field("Filler modules", strconv.Itoa(r.FillerModules)))
	fmt.Fprintln(w, ui.Field("Aliases rewritten", strconv.Itoa(r.Aliases)))
}

func writeReport(w io.Writer, report slscmigrate.Report) error {
	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = w.Write(data)
	return err
}
