// Package tree: sentinel error set, matching the teacher's one-file-per-package
// convention for errors (matrix/errors.go, core/types.go).
package tree

import "errors"

var (
	// ErrInvalidParameter indicates a non-positive MaxNodeSize or a
	// negative k (k == 0 is not an error; Search returns no results).
	ErrInvalidParameter = errors.New("tree: invalid parameter")

	// ErrEmptyProvider indicates a build was requested over an empty corpus
	// range.
	ErrEmptyProvider = errors.New("tree: provider range is empty")
)
