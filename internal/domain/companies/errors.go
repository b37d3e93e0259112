package companies

import "errors"

var (
	// ErrNotFound is returned when no company exists with the given id.
	ErrNotFound = errors.New("company not found")
	// ErrNameTaken signals a company name uniqueness violation.
	ErrNameTaken = errors.New("company name already exists")
	// ErrHasUsers signals a delete attempt on a company with registered users.
	ErrHasUsers = errors.New("company still has registered users")
)
