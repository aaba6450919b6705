// Package principal holds the identity fields shared by the group, report,
// and dataset user records.
package principal

// Type identifies what kind of principal a user entry refers to.
type Type string

const (
	TypeNone  Type = "None"
	TypeUser  Type = "User"
	TypeGroup Type = "Group"
	TypeApp   Type = "App"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeNone, TypeUser, TypeGroup, TypeApp:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// JSON keys shared by every user record.
const (
	KeyEmailAddress  = "emailAddress"
	KeyDisplayName   = "displayName"
	KeyIdentifier    = "identifier"
	KeyPrincipalType = "principalType"
)

// Identity is embedded by the per-entity user records.
type Identity struct {
	EmailAddress  string `json:"emailAddress,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	Identifier    string `json:"identifier,omitempty"`
	PrincipalType Type   `json:"principalType,omitempty"`
}

// PutSetValues writes the non-empty identity fields into dst.
func (i Identity) PutSetValues(dst map[string]any) {
	if i.EmailAddress != "" {
		dst[KeyEmailAddress] = i.EmailAddress
	}
	if i.DisplayName != "" {
		dst[KeyDisplayName] = i.DisplayName
	}
	if i.Identifier != "" {
		dst[KeyIdentifier] = i.Identifier
	}
	if i.PrincipalType != "" {
		dst[KeyPrincipalType] = i.PrincipalType.String()
	}
}
