package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Calculator computes content checksums for run reports.
type Calculator interface {
	// Calculate returns the hex-encoded checksum of content.
	Calculate(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// Calculate computes SHA-256 of the exact bytes of content.
func (c SHA256) Calculate(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
