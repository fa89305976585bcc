package store

import "errors"

// ErrNotFound is returned by Load when the slot is empty.
var ErrNotFound = errors.New("session slot is empty")

// Repository is the durable slot holding the serialised session state.
type Repository interface {
	// Load returns the stored bytes or ErrNotFound
	Load() ([]byte, error)
	// Save overwrites the slot
	Save(value []byte) error
	// Clear removes the slot. Clearing an empty slot is not an error
	Clear() error
	// Close releases the underlying storage
	Close() error
}
