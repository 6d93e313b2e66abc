// Package auth authenticates bearer tokens.
//
// Verification and caching are separate: a Verifier checks a token's
// signature and claims, a Cache remembers recently verified tokens for a
// bounded time, and the Authenticator composes the two.
package auth

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNoToken is returned when the request carries no bearer token.
	ErrNoToken = errors.New("auth: access token required")

	// ErrInvalidToken is returned when a token fails verification.
	ErrInvalidToken = errors.New("auth: invalid or expired token")
)

// Identity is the authenticated caller.
type Identity struct {
	UserID int64
	Email  string
}

type identityKey struct{}

// WithIdentity stores id in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity attached by the auth middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// ParseBearer extracts the token from an Authorization header value of the
// form "Bearer <token>". It returns "" when no token is present.
func ParseBearer(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
