package report

import (
	"time"

	"github.com/jsamuelsen11/go-powerbi/internal/domain"
)

// JSON keys used by the reports endpoints.
const (
	KeyID                = "id"
	KeyName              = "name"
	KeyWebURL            = "webUrl"
	KeyEmbedURL          = "embedUrl"
	KeyDatasetID         = "datasetId"
	KeyTargetModelID     = "targetModelId"
	KeyTargetWorkspaceID = "targetWorkspaceId"
)

// Report is a Power BI report as returned by the reports and admin APIs.
type Report struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	WebURL           string    `json:"webUrl"`
	EmbedURL         string    `json:"embedUrl"`
	DatasetID        string    `json:"datasetId"`
	ReportType       string    `json:"reportType"`
	Description      string    `json:"description"`
	AppID            string    `json:"appId"`
	CreatedBy        string    `json:"createdBy"`
	ModifiedBy       string    `json:"modifiedBy"`
	CreatedDateTime  time.Time `json:"createdDateTime"`
	ModifiedDateTime time.Time `json:"modifiedDateTime"`
}

// FromMap builds a Report from a decoded JSON object. The id key is required.
func FromMap(m map[string]any) (Report, error) {
	var r Report
	if err := domain.Decode(m, &r, KeyID); err != nil {
		return Report{}, err
	}
	return r, nil
}

// MyWorkspaceID is the target workspace id that sends a clone to
// "My workspace". An empty target keeps the clone in the source workspace.
const MyWorkspaceID = "00000000-0000-0000-0000-000000000000"

// CloneRequest describes the copy made by a clone call.
type CloneRequest struct {
	Name string

	// TargetModelID is the dataset the clone binds to.
	TargetModelID string

	// TargetWorkspaceID is empty to clone within the source workspace, or
	// MyWorkspaceID for "My workspace".
	TargetWorkspaceID string
}

// SetValues projects the request into a clone body, omitting the target
// workspace when it is empty.
func (c CloneRequest) SetValues() map[string]any {
	m := map[string]any{
		KeyName:          c.Name,
		KeyTargetModelID: c.TargetModelID,
	}
	if c.TargetWorkspaceID != "" {
		m[KeyTargetWorkspaceID] = c.TargetWorkspaceID
	}
	return m
}
