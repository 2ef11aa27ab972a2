package store

import "errors"

var (
	// ErrConnection means the database could not be reached at all.
	ErrConnection = errors.New("store: connection failed")

	// ErrDuplicateEmail is returned by RegisterUser when the email
	// uniqueness constraint is violated.
	ErrDuplicateEmail = errors.New("store: email already registered")

	// ErrProductNotFound is returned by UpdateProduct/DeleteProduct when no
	// row matches the given id. Callers that treat a missing id as a no-op
	// can log it and move on.
	ErrProductNotFound = errors.New("store: product not found")

	// ErrStore covers every other query failure.
	ErrStore = errors.New("store: query failed")
)
