package report

import (
	"errors"
	"maps"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-powerbi/internal/domain"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/principal"
)

func TestFromMap(t *testing.T) {
	t.Parallel()

	m := map[string]any{
		"id":               "5b218778-e7a5-4d73-8187-f10824047715",
		"name":             "SalesMarketing",
		"webUrl":           "https://app.powerbi.com//reports/5b218778",
		"embedUrl":         "https://app.powerbi.com/reportEmbed?reportId=5b218778",
		"datasetId":        "cfafbeb1-8037-4d0c-896e-a46fb27ff229",
		"reportType":       "PowerBIReport",
		"createdDateTime":  "2023-05-02T10:15:00.523Z",
		"modifiedDateTime": "2023-05-03T08:00:00Z",
		"unknownKey":       "ignored",
	}

	got, err := FromMap(m)
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}

	want := Report{
		ID:               "5b218778-e7a5-4d73-8187-f10824047715",
		Name:             "SalesMarketing",
		WebURL:           "https://app.powerbi.com//reports/5b218778",
		EmbedURL:         "https://app.powerbi.com/reportEmbed?reportId=5b218778",
		DatasetID:        "cfafbeb1-8037-4d0c-896e-a46fb27ff229",
		ReportType:       "PowerBIReport",
		CreatedDateTime:  time.Date(2023, 5, 2, 10, 15, 0, 523000000, time.UTC),
		ModifiedDateTime: time.Date(2023, 5, 3, 8, 0, 0, 0, time.UTC),
	}
	if got != want {
		t.Errorf("FromMap() = %+v, want %+v", got, want)
	}
}

func TestFromMap_MissingID(t *testing.T) {
	t.Parallel()

	_, err := FromMap(map[string]any{"name": "no id"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("FromMap() error = %v, want ErrValidation", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(*ValidationError) = false, got %T", err)
	}
	if verr.Fields[KeyID] != domain.MsgRequired {
		t.Errorf("Fields[%q] = %q, want %q", KeyID, verr.Fields[KeyID], domain.MsgRequired)
	}
}

func TestFromMap_OptionalKeysDefault(t *testing.T) {
	t.Parallel()

	got, err := FromMap(map[string]any{"id": "r1"})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	if got.Name != "" || got.DatasetID != "" || !got.CreatedDateTime.IsZero() {
		t.Errorf("FromMap() optional fields = %+v, want zero values", got)
	}
}

func TestCloneRequest_SetValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  CloneRequest
		want map[string]any
	}{
		{
			name: "my workspace omits target workspace",
			req:  CloneRequest{Name: "copy", TargetModelID: "ds1"},
			want: map[string]any{"name": "copy", "targetModelId": "ds1"},
		},
		{
			name: "target workspace included when set",
			req:  CloneRequest{Name: "copy", TargetModelID: "ds1", TargetWorkspaceID: "g2"},
			want: map[string]any{"name": "copy", "targetModelId": "ds1", "targetWorkspaceId": "g2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.req.SetValues(); !maps.Equal(got, tt.want) {
				t.Errorf("SetValues() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserFromMap(t *testing.T) {
	t.Parallel()

	got, err := UserFromMap(map[string]any{
		"reportUserAccessRight": "Owner",
		"displayName":           "Jane Doe",
		"identifier":            "jane@contoso.com",
		"principalType":         "User",
	})
	if err != nil {
		t.Fatalf("UserFromMap() error = %v", err)
	}

	want := User{
		AccessRight: AccessOwner,
		Identity: principal.Identity{
			DisplayName:   "Jane Doe",
			Identifier:    "jane@contoso.com",
			PrincipalType: principal.TypeUser,
		},
	}
	if got != want {
		t.Errorf("UserFromMap() = %+v, want %+v", got, want)
	}
	if got.EmailAddress != "" {
		t.Errorf("EmailAddress = %q, want empty default", got.EmailAddress)
	}
}

func TestUserFromMap_MissingRequired(t *testing.T) {
	t.Parallel()

	_, err := UserFromMap(map[string]any{"displayName": "nobody"})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("UserFromMap() error = %v, want *ValidationError", err)
	}
	for _, key := range []string{KeyUserAccessRight, principal.KeyIdentifier} {
		if _, ok := verr.Fields[key]; !ok {
			t.Errorf("Fields missing %q, got %v", key, verr.Fields)
		}
	}
}

func TestUser_SetValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		user User
		want map[string]any
	}{
		{
			name: "only non-empty fields",
			user: User{
				AccessRight: AccessRead,
				Identity:    principal.Identity{Identifier: "jane@contoso.com", PrincipalType: principal.TypeUser},
			},
			want: map[string]any{
				"reportUserAccessRight": "Read",
				"identifier":            "jane@contoso.com",
				"principalType":         "User",
			},
		},
		{
			name: "all fields",
			user: User{
				AccessRight: AccessReadWrite,
				Identity: principal.Identity{
					EmailAddress:  "jane@contoso.com",
					DisplayName:   "Jane",
					Identifier:    "jane@contoso.com",
					PrincipalType: principal.TypeUser,
				},
			},
			want: map[string]any{
				"reportUserAccessRight": "ReadWrite",
				"emailAddress":          "jane@contoso.com",
				"displayName":           "Jane",
				"identifier":            "jane@contoso.com",
				"principalType":         "User",
			},
		},
		{
			name: "zero user is empty",
			user: User{},
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.user.SetValues(); !maps.Equal(got, tt.want) {
				t.Errorf("SetValues() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccessRight_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		right AccessRight
		want  bool
	}{
		{AccessNone, true},
		{AccessRead, true},
		{AccessReadWrite, true},
		{AccessReadReshare, true},
		{AccessReadCopy, true},
		{AccessOwner, true},
		{"", false},
		{"owner", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.right), func(t *testing.T) {
			t.Parallel()
			if got := tt.right.IsValid(); got != tt.want {
				t.Errorf("AccessRight(%q).IsValid() = %v, want %v", tt.right, got, tt.want)
			}
		})
	}
}
