package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStoreNotFound is returned when the password store file does not exist.
	ErrStoreNotFound = errors.New("password store not found")

	// ErrReadStore wraps any other failure while reading the store.
	ErrReadStore = errors.New("error reading password store")

	// ErrWriteStore wraps failures while creating, writing or replacing the store.
	ErrWriteStore = errors.New("error writing password store")
)
