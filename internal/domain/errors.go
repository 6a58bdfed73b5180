package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID indicates an identifier string is not a 24 character hex ObjectID.
	ErrInvalidID = errors.New("invalid identifier")
)
