package identity

import "errors"

var (
	// ErrInvalidToken indicates the provider rejected the credential:
	// expired, revoked, malformed, or signature mismatch.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrProviderUnavailable indicates the identity provider could not be
	// reached.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)
