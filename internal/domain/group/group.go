// Package group defines the Group (workspace) record and its user entries.
package group

import (
	"github.com/jsamuelsen11/go-powerbi/internal/domain"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/principal"
)

// JSON keys used by the groups endpoints.
const (
	KeyID              = "id"
	KeyName            = "name"
	KeyUserAccessRight = "groupUserAccessRight"
)

// Group is a Power BI workspace.
type Group struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	IsReadOnly            bool   `json:"isReadOnly"`
	IsOnDedicatedCapacity bool   `json:"isOnDedicatedCapacity"`
	CapacityID            string `json:"capacityId"`
	Description           string `json:"description"`
	Type                  string `json:"type"`
	State                 string `json:"state"`
}

// FromMap builds a Group from a decoded JSON object. The id key is required.
func FromMap(m map[string]any) (Group, error) {
	var g Group
	if err := domain.Decode(m, &g, KeyID); err != nil {
		return Group{}, err
	}
	return g, nil
}

// AccessRight is the role a principal holds in a workspace.
type AccessRight string

const (
	AccessNone        AccessRight = "None"
	AccessMember      AccessRight = "Member"
	AccessAdmin       AccessRight = "Admin"
	AccessContributor AccessRight = "Contributor"
	AccessViewer      AccessRight = "Viewer"
)

// IsValid returns true if the access right is one of the defined constants.
func (a AccessRight) IsValid() bool {
	switch a {
	case AccessNone, AccessMember, AccessAdmin, AccessContributor, AccessViewer:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (a AccessRight) String() string {
	return string(a)
}

// User is a principal's membership in a workspace.
type User struct {
	AccessRight AccessRight `json:"groupUserAccessRight"`
	principal.Identity
}

// UserFromMap builds a User from a decoded JSON object.
func UserFromMap(m map[string]any) (User, error) {
	var u User
	if err := domain.Decode(m, &u, KeyUserAccessRight, principal.KeyIdentifier); err != nil {
		return User{}, err
	}
	return u, nil
}

// SetValues projects the user into a request body containing only the
// non-empty fields.
func (u User) SetValues() map[string]any {
	m := make(map[string]any)
	if u.AccessRight != "" {
		m[KeyUserAccessRight] = u.AccessRight.String()
	}
	u.PutSetValues(m)
	return m
}
