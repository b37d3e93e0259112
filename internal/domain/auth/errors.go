package auth

import "errors"

var (
	// ErrUnknownUser is returned when the username does not resolve to a user.
	ErrUnknownUser = errors.New("unknown user")
	// ErrInvalidPassword is returned when the password does not match the
	// stored hash. Callers presenting errors externally must not distinguish
	// this from ErrUnknownUser.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrInvalidToken is returned when a token is malformed, unsigned, expired
	// or its subject does not resolve to an existing user.
	ErrInvalidToken = errors.New("invalid token")
)

// IsCredentialFailure reports whether err is one of the two login failure
// modes. Both must surface identically to the caller.
func IsCredentialFailure(err error) bool {
	return errors.Is(err, ErrUnknownUser) || errors.Is(err, ErrInvalidPassword)
}
