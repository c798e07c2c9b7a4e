package slscmigrate

import "context"

// Approver handles user interaction before an existing file is replaced.
//
// Implementations:
//   - ForcedApprover: approves immediately (--force)
//   - InteractiveApprover: asks the user on the terminal
type Approver interface {
	// RequestApproval prompts for confirmation before overwriting path.
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, path string) (bool, error)
}
