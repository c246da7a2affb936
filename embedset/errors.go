// Package embedset: sentinel error set.
// All algorithms in this package MUST return these sentinels and tests MUST
// check them via errors.Is, matching the teacher's matrix/errors.go
// convention of one sentinel file per package.
package embedset

import "errors"

var (
	// ErrInvalidRange indicates a requested sub-range falls outside the
	// bounds of its parent provider, or has start > end.
	ErrInvalidRange = errors.New("embedset: invalid range")

	// ErrDimensionMismatch indicates rows of differing length, or rows of
	// zero length, were supplied to NewDense.
	ErrDimensionMismatch = errors.New("embedset: dimension mismatch")

	// ErrEmptyCorpus indicates zero rows were supplied where at least one is
	// required.
	ErrEmptyCorpus = errors.New("embedset: corpus is empty")
)
