// Package frame provides a minimal labeled column table: the decoded-output
// format of dataset.Decode and a convenient encode input via Rows.
//
// A Frame is an ordered list of named, equal-length columns of raw values.
// It is immutable once built and safe for concurrent readers. Zero-row
// frames are legal; they carry column labels without data.
package frame
