// Package checksum hashes document bytes for run reports.
//
// The input checksum identifies the document a run started from and seeds
// the run ID; the output checksum identifies what was written. Both are taken
// over the exact bytes, so re-indenting a document changes its checksum.
//
// # Example Usage
//
//	calculator := checksum.New()
//	sum := calculator.Calculate(data)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
