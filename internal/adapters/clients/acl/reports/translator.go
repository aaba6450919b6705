package reports

import (
	"fmt"

	"github.com/jsamuelsen11/go-powerbi/internal/domain/embed"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/report"
)

// ToDomainReports converts every entry of the envelope, in order. The first
// entry that fails to decode aborts the conversion.
func ToDomainReports(dto ListResponseDTO) ([]report.Report, error) {
	out := make([]report.Report, 0, len(dto.Value))
	for i, m := range dto.Value {
		r, err := report.FromMap(m)
		if err != nil {
			return nil, fmt.Errorf("report value[%d]: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// ToDomainReport converts a single report object.
func ToDomainReport(m map[string]any) (*report.Report, error) {
	r, err := report.FromMap(m)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	return &r, nil
}

// ToDomainUsers converts a report users envelope.
func ToDomainUsers(dto ListResponseDTO) ([]report.User, error) {
	out := make([]report.User, 0, len(dto.Value))
	for i, m := range dto.Value {
		u, err := report.UserFromMap(m)
		if err != nil {
			return nil, fmt.Errorf("report user value[%d]: %w", i, err)
		}
		out = append(out, u)
	}
	return out, nil
}

// ToDomainToken converts a generate token response.
func ToDomainToken(m map[string]any) (*embed.Token, error) {
	t, err := embed.FromMap(m)
	if err != nil {
		return nil, fmt.Errorf("embed token: %w", err)
	}
	return &t, nil
}

// ToRebindRequest builds the rebind body.
func ToRebindRequest(datasetID string) RebindRequestDTO {
	return RebindRequestDTO{DatasetID: datasetID}
}
