package cli

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/slscmigrate/internal/checksum"
	"github.com/vvka-141/slscmigrate/internal/files/filesystem"
	"github.com/vvka-141/slscmigrate/internal/logging"
	"github.com/vvka-141/slscmigrate/internal/services"
	"github.com/vvka-141/slscmigrate/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check <input>",
	Short: "Report whether a system definition needs migration",
	Long: `Check reads a system definition and reports its version and the legacy SLSC
devices, chassis and modules a migration would convert. Nothing is written.

Examples:
  slscmigrate check ./system.nivssdf`,
	Args: RequireInput,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	input := args[0]

	svc := services.NewMigrationService(
		filesystem.NewOSFileSystem(),
		ui.NonInteractiveApprover{},
		logging.NewConsoleLogger(getVerboseFlag(cmd)),
		checksum.New(),
	)

	in, err := svc.Inspect(input)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	w := cmd.OutOrStdout()
	if in.NeedsMigration {
		fmt.Fprintln(w, ui.Warning(fmt.Sprintf("%s needs migration", input)))
	} else {
		fmt.Fprintln(w, ui.Success(fmt.Sprintf("%s is up to date", input)))
	}
	fmt.Fprintln(w, ui.Field("Version", in.Version.String()))
	if in.NeedsMigration {
		fmt.Fprintln(w, ui.Field("Targets", strconv.Itoa(in.Targets)))
		fmt.Fprintln(w, ui.Field("Legacy devices", strconv.Itoa(in.LegacyDevices)))
		fmt.Fprintln(w, ui.Field("Chassis", strconv.Itoa(in.Chassis)))
		fmt.Fprintln(w, ui.Field("Modules", strconv.Itoa(in.Modules)))
	}
	return nil
}
