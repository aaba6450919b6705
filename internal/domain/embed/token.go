// Package embed defines embed tokens and the request used to generate them.
package embed

import (
	"time"

	"github.com/jsamuelsen11/go-powerbi/internal/domain"
)

// JSON keys used by the generate token endpoints.
const (
	KeyToken       = "token"
	KeyTokenID     = "tokenId"
	KeyExpiration  = "expiration"
	KeyAccessLevel = "accessLevel"
	KeyDatasetID   = "datasetId"
	KeyAllowSaveAs = "allowSaveAs"
	KeyIdentities  = "identities"
	KeyUsername    = "username"
	KeyRoles       = "roles"
	KeyDatasets    = "datasets"
)

// Token is a short-lived token that authorizes embedding a single item.
type Token struct {
	Token      string    `json:"token"`
	TokenID    string    `json:"tokenId"`
	Expiration time.Time `json:"expiration"`
}

// FromMap builds a Token from a decoded JSON object. The token key is required.
func FromMap(m map[string]any) (Token, error) {
	var t Token
	if err := domain.Decode(m, &t, KeyToken); err != nil {
		return Token{}, err
	}
	return t, nil
}

// Expired reports whether the token has expired at now.
func (t Token) Expired(now time.Time) bool {
	return !t.Expiration.IsZero() && !now.Before(t.Expiration)
}

// AccessLevel is the permission an embed token grants.
type AccessLevel string

const (
	AccessView   AccessLevel = "View"
	AccessEdit   AccessLevel = "Edit"
	AccessCreate AccessLevel = "Create"
)

// IsValid returns true if the access level is one of the defined constants.
func (a AccessLevel) IsValid() bool {
	switch a {
	case AccessView, AccessEdit, AccessCreate:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (a AccessLevel) String() string {
	return string(a)
}

// EffectiveIdentity applies row-level security to an embed token.
type EffectiveIdentity struct {
	Username string
	Roles    []string
	Datasets []string
}

// TokenRequest is the body of a generate token call.
type TokenRequest struct {
	AccessLevel AccessLevel
	DatasetID   string
	AllowSaveAs bool
	Identities  []EffectiveIdentity
}

// Validate checks that the access level is known.
func (r TokenRequest) Validate() error {
	if !r.AccessLevel.IsValid() {
		return &domain.ValidationError{Fields: map[string]string{
			KeyAccessLevel: "must be one of View, Edit, Create",
		}}
	}
	return nil
}

// SetValues projects the request into a request body. The dataset id and
// identities are omitted when empty; allowSaveAs is only sent when true.
func (r TokenRequest) SetValues() map[string]any {
	m := map[string]any{
		KeyAccessLevel: r.AccessLevel.String(),
	}
	if r.DatasetID != "" {
		m[KeyDatasetID] = r.DatasetID
	}
	if r.AllowSaveAs {
		m[KeyAllowSaveAs] = true
	}
	if len(r.Identities) > 0 {
		ids := make([]map[string]any, 0, len(r.Identities))
		for _, id := range r.Identities {
			ids = append(ids, map[string]any{
				KeyUsername: id.Username,
				KeyRoles:    id.Roles,
				KeyDatasets: id.Datasets,
			})
		}
		m[KeyIdentities] = ids
	}
	return m
}
