// Package dataset defines the Dataset record and its per-user access entries.
package dataset

import (
	"time"

	"github.com/jsamuelsen11/go-powerbi/internal/domain"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/principal"
)

// JSON keys used by the datasets endpoints.
const (
	KeyID              = "id"
	KeyName            = "name"
	KeyUserAccessRight = "datasetUserAccessRight"
)

// Dataset is a Power BI dataset (semantic model).
type Dataset struct {
	ID                               string    `json:"id"`
	Name                             string    `json:"name"`
	ConfiguredBy                     string    `json:"configuredBy"`
	WebURL                           string    `json:"webUrl"`
	AddRowsAPIEnabled                bool      `json:"addRowsAPIEnabled"`
	IsRefreshable                    bool      `json:"isRefreshable"`
	IsEffectiveIdentityRequired      bool      `json:"isEffectiveIdentityRequired"`
	IsEffectiveIdentityRolesRequired bool      `json:"isEffectiveIdentityRolesRequired"`
	IsOnPremGatewayRequired          bool      `json:"isOnPremGatewayRequired"`
	TargetStorageMode                string    `json:"targetStorageMode"`
	CreatedDate                      time.Time `json:"createdDate"`
}

// FromMap builds a Dataset from a decoded JSON object. The id key is required.
func FromMap(m map[string]any) (Dataset, error) {
	var d Dataset
	if err := domain.Decode(m, &d, KeyID); err != nil {
		return Dataset{}, err
	}
	return d, nil
}

// AccessRight is the permission a principal holds on a dataset.
type AccessRight string

const (
	AccessNone                    AccessRight = "None"
	AccessRead                    AccessRight = "Read"
	AccessReadWrite               AccessRight = "ReadWrite"
	AccessReadReshare             AccessRight = "ReadReshare"
	AccessReadWriteReshare        AccessRight = "ReadWriteReshare"
	AccessReadExplore             AccessRight = "ReadExplore"
	AccessReadReshareExplore      AccessRight = "ReadReshareExplore"
	AccessReadWriteExplore        AccessRight = "ReadWriteExplore"
	AccessReadWriteReshareExplore AccessRight = "ReadWriteReshareExplore"
)

// IsValid returns true if the access right is one of the defined constants.
func (a AccessRight) IsValid() bool {
	switch a {
	case AccessNone, AccessRead, AccessReadWrite, AccessReadReshare, AccessReadWriteReshare,
		AccessReadExplore, AccessReadReshareExplore, AccessReadWriteExplore, AccessReadWriteReshareExplore:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (a AccessRight) String() string {
	return string(a)
}

// User is a principal's access entry on a dataset.
type User struct {
	AccessRight AccessRight `json:"datasetUserAccessRight"`
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
