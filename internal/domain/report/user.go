package report

import (
	"github.com/jsamuelsen11/go-powerbi/internal/domain"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/principal"
)

// KeyUserAccessRight is the access-right key on report user entries.
const KeyUserAccessRight = "reportUserAccessRight"

// AccessRight is the permission a principal holds on a report.
type AccessRight string

const (
	AccessNone        AccessRight = "None"
	AccessRead        AccessRight = "Read"
	AccessReadWrite   AccessRight = "ReadWrite"
	AccessReadReshare AccessRight = "ReadReshare"
	AccessReadCopy    AccessRight = "ReadCopy"
	AccessOwner       AccessRight = "Owner"
)

// IsValid returns true if the access right is one of the defined constants.
func (a AccessRight) IsValid() bool {
	switch a {
	case AccessNone, AccessRead, AccessReadWrite, AccessReadReshare, AccessReadCopy, AccessOwner:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (a AccessRight) String() string {
	return string(a)
}

// User is a principal's access entry on a report.
type User struct {
	AccessRight AccessRight `json:"reportUserAccessRight"`
	principal.Identity
}

// UserFromMap builds a User from a decoded JSON object. The access right and
// identifier keys are required; emailAddress defaults to "".
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
