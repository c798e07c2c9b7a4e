package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

// ForcedApprover implements the Approver interface for forced (non-interactive)
// approval, used when the --force flag is provided. It announces the overwrite
// and approves without asking.
type ForcedApprover struct {
	verbose bool
	output  io.Writer
}

// NewForcedApprover creates a new ForcedApprover writing to stderr.
func NewForcedApprover(verbose bool) slscmigrate.Approver {
	return &ForcedApprover{verbose: verbose, output: os.Stderr}
}

// RequestApproval approves immediately unless ctx is already done.
func (a *ForcedApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if a.verbose {
		fmt.Fprintln(a.output, Warning(fmt.Sprintf("Overwriting existing file %s (--force)", path)))
	}
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ slscmigrate.Approver = (*ForcedApprover)(nil)
