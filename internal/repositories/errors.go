package repositories

import "errors"

// ErrDuplicateContact is returned when a write trips the unique index on
// contact email or phone. Callers treat it as the "already registered"
// outcome, not a failure.
var ErrDuplicateContact = errors.New("contact already registered")

// ErrNotFound is the repository-neutral wrapper for a missing record.
var ErrNotFound = errors.New("record not found")
