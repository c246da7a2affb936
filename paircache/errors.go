package paircache

import "errors"

// ErrInvalidCapacity indicates a non-positive capacity was given to NewLRU.
var ErrInvalidCapacity = errors.New("paircache: capacity must be > 0")
