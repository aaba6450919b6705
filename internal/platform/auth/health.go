package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/go-powerbi/internal/ports"
)

var _ ports.HealthChecker = (*Checker)(nil)

// Checker reports whether a usable, unexpired token is available.
type Checker struct {
	tokens ports.TokenSource
	now    func() time.Time
}

// NewChecker returns a health checker over tokens.
func NewChecker(tokens ports.TokenSource) *Checker {
	return &Checker{tokens: tokens, now: time.Now}
}

// Name implements ports.HealthChecker.
func (c *Checker) Name() string {
	return "token"
}

// HealthCheck fails when no token is available, the token is not a JWT, or
// it has expired.
func (c *Checker) HealthCheck(ctx context.Context) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}
	claims, err := Inspect(token)
	if err != nil {
		return err
	}
	if claims.Expired(c.now()) {
		return fmt.Errorf("%w at %s", errExpired, claims.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}
