package auth

import "time"

// TokenTypeBearer is the token_type value returned by the login endpoint.
const TokenTypeBearer = "bearer"

// AccessToken is a signed, time-limited credential issued after a successful
// login.
type AccessToken struct {
	Token string
	Type  string
}

// Claims carries the verified content of an access token.
type Claims struct {
	Subject   string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
