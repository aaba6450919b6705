// Package auth supplies the bearer token attached to Power BI requests.
//
// Tokens come either from configuration (auth.token, usually set through
// PBI_AUTH_TOKEN) or from the OS keyring where `pbi auth login` stored them.
// Acquiring a token through an OAuth flow is left to the caller.
//
//	tokens := auth.Chain(auth.StaticToken(cfg.Auth.Token), auth.NewKeyringStore(service, user))
//	token, err := tokens.Token(ctx)
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/go-powerbi/internal/ports"
)

// ErrNoToken is returned when a source has no token to offer.
var ErrNoToken = errors.New("no access token configured")

// StaticToken is a fixed token, typically read from configuration.
// An empty StaticToken reports ErrNoToken.
type StaticToken string

var _ ports.TokenSource = StaticToken("")

// Token implements ports.TokenSource.
func (s StaticToken) Token(_ context.Context) (string, error) {
	if s == "" {
		return "", ErrNoToken
	}
	return string(s), nil
}

type chain []ports.TokenSource

// Chain returns a TokenSource that asks each source in order and returns
// the first token found. Sources reporting ErrNoToken are skipped; any
// other error stops the search.
func Chain(sources ...ports.TokenSource) ports.TokenSource {
	return chain(sources)
}

func (c chain) Token(ctx context.Context) (string, error) {
	for _, src := range c {
		token, err := src.Token(ctx)
		if errors.Is(err, ErrNoToken) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("reading access token: %w", err)
		}
		return token, nil
	}
	return "", ErrNoToken
}
