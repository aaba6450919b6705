package datasets

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-powerbi/internal/domain"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/dataset"
)

func TestToDomainDatasets(t *testing.T) {
	t.Parallel()

	dto := ListResponseDTO{Value: []map[string]any{
		{"id": "d1", "name": "Sales", "isRefreshable": true, "configuredBy": "john@contoso.com"},
		{"id": "d2", "name": "Finance", "targetStorageMode": "Abf"},
	}}

	got, err := ToDomainDatasets(dto)
	if err != nil {
		t.Fatalf("ToDomainDatasets() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if !got[0].IsRefreshable || got[0].ConfiguredBy != "john@contoso.com" {
		t.Errorf("got[0] = %+v, want refreshable dataset configured by john", got[0])
	}
	if got[1].TargetStorageMode != "Abf" {
		t.Errorf("got[1].TargetStorageMode = %q, want %q", got[1].TargetStorageMode, "Abf")
	}
}

func TestToDomainDatasets_MissingID(t *testing.T) {
	t.Parallel()

	_, err := ToDomainDatasets(ListResponseDTO{Value: []map[string]any{{"name": "x"}}})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("ToDomainDatasets() error = %v, want ErrValidation", err)
	}
}

func TestToDomainUsers(t *testing.T) {
	t.Parallel()

	got, err := ToDomainUsers(ListResponseDTO{Value: []map[string]any{
		{"datasetUserAccessRight": "ReadReshare", "identifier": "g-1", "principalType": "Group"},
	}})
	if err != nil {
		t.Fatalf("ToDomainUsers() error = %v", err)
	}
	if len(got) != 1 || got[0].AccessRight != dataset.AccessReadReshare {
		t.Errorf("ToDomainUsers() = %+v, want one ReadReshare entry", got)
	}
}

func TestToRefreshRequest(t *testing.T) {
	t.Parallel()

	if got := ToRefreshRequest(""); got != nil {
		t.Errorf("ToRefreshRequest(\"\") = %+v, want nil", got)
	}
	if got := ToRefreshRequest("MailOnFailure"); got == nil || got.NotifyOption != "MailOnFailure" {
		t.Errorf("ToRefreshRequest(MailOnFailure) = %+v", got)
	}
}
