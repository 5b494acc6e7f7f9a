package domain

import "time"

// Identity is the authenticated caller as supplied by the authentication provider.
type Identity struct {
	UserID string
	Email  string
}

// TokenIssuer issues tokens (e.g. JWT) for an identity. Used for local tooling;
// production tokens come from the authentication provider.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the identity it was issued for.
type TokenVerifier interface {
	Verify(token string) (*Identity, error)
}
