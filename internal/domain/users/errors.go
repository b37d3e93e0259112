package users

import "errors"

var (
	// ErrNotFound is returned when no user exists with the given id or username.
	ErrNotFound = errors.New("user not found")
	// ErrUsernameTaken signals a username uniqueness violation.
	ErrUsernameTaken = errors.New("username already registered")
	// ErrEmailTaken signals an email uniqueness violation.
	ErrEmailTaken = errors.New("email already registered")
)
