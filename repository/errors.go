package repository

import "errors"

var (
	// ErrNotFound covers both "does not exist" and "exists but is not
	// yours"; callers must not be able to tell them apart.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is the authoritative duplicate-email signal, raised
	// by the unique index on users.email.
	ErrEmailTaken = errors.New("email already registered")
)
