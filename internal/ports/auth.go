package ports

import "context"

// TokenSource supplies the bearer token attached to every API request.
// Acquiring the token (OAuth flows) is outside this module.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenStore persists a bearer token between CLI invocations.
type TokenStore interface {
	TokenSource
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}
