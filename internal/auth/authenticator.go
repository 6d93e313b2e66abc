package auth

import (
	"fmt"

	"github.com/carson-networks/finance-server/internal/observability"
)

// Authenticator resolves the identity behind an Authorization header,
// consulting the cache before paying for verification.
type Authenticator struct {
	verifier Verifier
	cache    *Cache
}

func NewAuthenticator(verifier Verifier, cache *Cache) *Authenticator {
	return &Authenticator{
		verifier: verifier,
		cache:    cache,
	}
}

// Authenticate returns ErrNoToken when header carries no token and wraps
// ErrInvalidToken when verification fails. A failed token is evicted from
// the cache.
func (a *Authenticator) Authenticate(header string) (Identity, error) {
	token := ParseBearer(header)
	if token == "" {
		observability.RecordAuthFailure("missing_token")
		return Identity{}, ErrNoToken
	}

	if id, ok := a.cache.Get(token); ok {
		observability.RecordCacheLookup(true)
		return id, nil
	}
	observability.RecordCacheLookup(false)

	id, err := a.verifier.Verify(token)
	if err != nil {
		a.cache.Delete(token)
		observability.RecordAuthFailure("invalid_token")
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	a.cache.Put(token, id)
	return id, nil
}
