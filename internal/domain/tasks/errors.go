package tasks

import "errors"

var (
	// ErrNotFound is returned when no task exists with the given id.
	ErrNotFound = errors.New("task not found")
	// ErrUserNotFound signals a create attempt referencing a missing user.
	ErrUserNotFound = errors.New("task user does not exist")
)
