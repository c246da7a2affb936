// Package forest: sentinel error set, matching the teacher's one-file-per-package
// convention for errors (matrix/errors.go, core/types.go).
package forest

import "errors"

var (
	// ErrInvalidRange indicates min_tree > max_tree or either is non-positive.
	ErrInvalidRange = errors.New("forest: invalid slab range parameters")

	// ErrInvalidParameter indicates a malformed build or persistence parameter.
	ErrInvalidParameter = errors.New("forest: invalid parameter")

	// ErrFingerprintMismatch indicates a loaded tree's (fingerprint, distance_name)
	// does not match the provider it is being adopted into.
	ErrFingerprintMismatch = errors.New("forest: tree was built for a different provider")

	// ErrNotBuilt indicates a save was requested for a slab whose tree has
	// never been built.
	ErrNotBuilt = errors.New("forest: tree has not been built")

	// ErrPersistenceFailure wraps an underlying archive or encoding error
	// during save/load.
	ErrPersistenceFailure = errors.New("forest: persistence operation failed")
)
