// Package retry repeats an operation with exponential backoff while it fails
// with a transient error.
//
// The migration service uses it to wait briefly for the output lock when
// another slscmigrate process is writing the same file.
//
// # Example Usage
//
//	executor := retry.NewExecutor(retry.NewLockClassifier(), retry.NewExponentialBackoff(4))
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    lock, err = fsys.Lock(path)
//	    return err
//	})
//
// # Thread Safety
//
// Executor instances are safe for concurrent use. Use WithOnRetry() to create
// independent configurations per goroutine.
package retry
