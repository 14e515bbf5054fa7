// Package identity verifies bearer credentials against the external identity
// provider and exchanges refresh tokens. No session state is kept; every
// request re-verifies with the provider.
package identity

import "context"

// Identity is the provider-attested identity behind a verified token.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

// TokenPair is the result of a refresh-token exchange.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Verifier validates a bearer token and yields the identity it attests.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

// Refresher rotates a refresh token into a fresh token pair.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}
