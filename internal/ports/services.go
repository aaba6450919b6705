package ports

import (
	"context"

	"github.com/jsamuelsen11/go-powerbi/internal/domain/group"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/report"
)

// ReportService defines the service port for report workflows that span
// more than one API call. Implemented by the application layer; called by
// the CLI.
type ReportService interface {
	// Count returns the number of reports in a workspace.
	Count(ctx context.Context, groupID string) (int, error)

	// HasReport reports whether reportID is present in a workspace.
	HasReport(ctx context.Context, reportID, groupID string) (bool, error)

	// ExportReport downloads a report's .pbix file into dest, naming it
	// {filename}.pbix. An empty filename uses the report's name. Returns the
	// location written.
	ExportReport(ctx context.Context, reportID, groupID, dest, filename string) (string, error)

	// MoveReport copies a report into another workspace bound to datasetID
	// and deletes the original. If the delete fails the copy is removed.
	MoveReport(ctx context.Context, req MoveReportRequest) (*report.Report, error)
}

// MoveReportRequest describes a report move between workspaces.
type MoveReportRequest struct {
	ReportID    string
	FromGroupID string
	ToGroupID   string
	DatasetID   string

	// Name of the moved report. Empty keeps the original name.
	Name string
}

// AccessService defines the service port for access audits across many
// items. Each item is looked up independently and failures are reported
// per item.
type AccessService interface {
	ReportAccess(ctx context.Context, reportIDs []string) []ReportAccess
	GroupAccess(ctx context.Context, groupIDs []string) []GroupAccess
}

// ReportAccess holds the users of one report, or the error looking them up.
type ReportAccess struct {
	ReportID string        `json:"reportId"`
	Users    []report.User `json:"users,omitempty"`
	Err      error         `json:"-"`
	Error    string        `json:"error,omitempty"`
}

// GroupAccess holds the users of one workspace, or the error looking them up.
type GroupAccess struct {
	GroupID string       `json:"groupId"`
	Users   []group.User `json:"users,omitempty"`
	Err     error        `json:"-"`
	Error   string       `json:"error,omitempty"`
}
