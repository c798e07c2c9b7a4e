package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/slscmigrate/internal/config"
	"github.com/vvka-141/slscmigrate/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage slscmigrate.yaml project configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default slscmigrate.yaml",
	Long: `Init writes slscmigrate.yaml with the default settings into dir (default:
the current directory). Migrations of files in that directory pick it up.

Examples:
  # Create config in the current directory
  slscmigrate config init

  # Replace an existing config
  slscmigrate config init ./projects/rig-a --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configInitForce bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing slscmigrate.yaml")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	path, err := config.Write(dir, config.Default(), configInitForce)
	if err != nil {
		return fmt.Errorf("config init failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Created "+path))
	return nil
}
