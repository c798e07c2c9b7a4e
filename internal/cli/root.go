package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "slscmigrate",
	Short: "Migrate SLSC system definitions to the native hardware schema",
	Long: `slscmigrate converts a VeriStand system definition that still uses the
legacy SLSC custom device into the native Hardware schema: chassis, modules,
sensors and aliases are moved in one all-or-nothing pass.

A document whose version is 2017 or newer is already current and is left alone.

Exit Codes:
  0  - Success (including documents that are already current)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Input document missing or unreadable
  12 - User denied overwriting the output file
  13 - Input is not a well-formed XML document
  14 - Output file is locked by another process
  20 - Document does not have the expected structure
  21 - Binary property could not be decoded
  22 - Module kind has no migration rule`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
