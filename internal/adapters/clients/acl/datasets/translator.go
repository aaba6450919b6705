package datasets

import (
	"fmt"

	"github.com/jsamuelsen11/go-powerbi/internal/domain/dataset"
)

// ToDomainDatasets converts every entry of the envelope, in order.
func ToDomainDatasets(dto ListResponseDTO) ([]dataset.Dataset, error) {
	out := make([]dataset.Dataset, 0, len(dto.Value))
	for i, m := range dto.Value {
		d, err := dataset.FromMap(m)
		if err != nil {
			return nil, fmt.Errorf("dataset value[%d]: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// ToDomainDataset converts a single dataset object.
func ToDomainDataset(m map[string]any) (*dataset.Dataset, error) {
	d, err := dataset.FromMap(m)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	return &d, nil
}

// ToDomainUsers converts a dataset users envelope.
func ToDomainUsers(dto ListResponseDTO) ([]dataset.User, error) {
	out := make([]dataset.User, 0, len(dto.Value))
	for i, m := range dto.Value {
		u, err := dataset.UserFromMap(m)
		if err != nil {
			return nil, fmt.Errorf("dataset user value[%d]: %w", i, err)
		}
		out = append(out, u)
	}
	return out, nil
}

// ToRefreshRequest builds the refresh body, or nil when no notify option is
// given so the request is sent without a body.
func ToRefreshRequest(notifyOption string) *RefreshRequestDTO {
	if notifyOption == "" {
		return nil
	}
	return &RefreshRequestDTO{NotifyOption: notifyOption}
}
