package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of an Entra ID access token the CLI reports on.
type Claims struct {
	Subject   string    `json:"subject,omitempty"`
	UPN       string    `json:"upn,omitempty"`
	AppID     string    `json:"appId,omitempty"`
	TenantID  string    `json:"tenantId,omitempty"`
	Audience  []string  `json:"audience,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
}

// Expired reports whether the token has expired at now. Tokens without an
// exp claim never expire.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

type entraClaims struct {
	UPN      string `json:"upn"`
	AppID    string `json:"appid"`
	TenantID string `json:"tid"`
	jwt.RegisteredClaims
}

// Inspect decodes the claims of a JWT access token without verifying its
// signature. Power BI verifies the token; this is for display and expiry
// checks only.
func Inspect(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	var ec entraClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &ec); err != nil {
		return nil, fmt.Errorf("parsing access token: %w", err)
	}

	c := &Claims{
		Subject:  ec.Subject,
		UPN:      ec.UPN,
		AppID:    ec.AppID,
		TenantID: ec.TenantID,
		Audience: ec.Audience,
	}
	if ec.ExpiresAt != nil {
		c.ExpiresAt = ec.ExpiresAt.UTC()
	}
	return c, nil
}

// errExpired is wrapped by the health check when the token has expired.
var errExpired = errors.New("access token expired")
