package slscmigrate

import "context"

// Runner performs one migration run: read, migrate, write.
type Runner interface {
	// Run migrates the document named by config.InputPath.
	//
	// A document that is already current yields OutcomeAlreadyCurrent and a nil error;
	// any failure leaves the destination untouched.
	Run(ctx context.Context, config MigrationConfig) (*Result, error)
}
