package retry

import (
	"errors"

	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

// LockClassifier treats lock contention as transient. Every other error is fatal.
type LockClassifier struct{}

// NewLockClassifier creates a LockClassifier.
func NewLockClassifier() LockClassifier {
	return LockClassifier{}
}

// IsTransient reports whether err means another process holds the output lock.
func (LockClassifier) IsTransient(err error) bool {
	return errors.Is(err, slscmigrate.ErrOutputLocked)
}

var _ slscmigrate.ErrorClassifier = LockClassifier{}
