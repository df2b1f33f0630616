package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found or is
	// not owned by the caller.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when a user is not authorized to perform an action
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDuplicate is returned when an identical request was recently accepted.
	ErrDuplicate = errors.New("duplicate request")
)
