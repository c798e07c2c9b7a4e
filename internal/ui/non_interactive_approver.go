package ui

import (
	"context"

	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

// NonInteractiveApprover denies every overwrite. It is used when nobody is at
// the terminal to answer and --force was not given.
type NonInteractiveApprover struct{}

// RequestApproval always denies.
func (NonInteractiveApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return false, nil
}

// NewApprover picks the approver for a run: forced when force is set,
// interactive when a user is at the terminal, otherwise one that denies.
func NewApprover(force, verbose bool, mode Mode) slscmigrate.Approver {
	switch {
	case force:
		return NewForcedApprover(verbose)
	case mode == ModeInteractive:
		return NewInteractiveApprover(verbose)
	default:
		return NonInteractiveApprover{}
	}
}

var _ slscmigrate.Approver = NonInteractiveApprover{}
