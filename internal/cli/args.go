package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireInput validates that exactly one input argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireInput(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return missingInput(cmd)
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireInputAndOptionalOutput validates an input argument followed by an optional output argument.
func RequireInputAndOptionalOutput(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return missingInput(cmd)
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts between 1 and 2 arg(s), received %d", len(args))
	}
	return nil
}

func missingInput(cmd *cobra.Command) error {
	return fmt.Errorf(`missing required argument: <input>

Usage: %s

Example:
  %s ./system.nivssdf`, cmd.UseLine(), cmd.CommandPath())
}
