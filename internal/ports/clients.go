package ports

import (
	"context"
	"io"

	"github.com/jsamuelsen11/go-powerbi/internal/domain/activity"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/dataset"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/embed"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/group"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/odata"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/report"
)

// Every client port method issues exactly one HTTP request. A response with
// any status other than the endpoint's success status is returned as a
// *domain.HTTPError. An empty groupID addresses "My workspace" (or, for the
// admin port, the whole organization).

// AdminClient defines the client port for the tenant-wide admin endpoints.
// The caller needs Power BI administrator rights.
type AdminClient interface {
	// GetGroups returns workspaces in the organization. Query.Top defaults
	// to 5000, which the endpoint requires.
	GetGroups(ctx context.Context, query odata.Query) ([]group.Group, error)

	// GetGroupUsers returns the members of a workspace.
	GetGroupUsers(ctx context.Context, groupID string) ([]group.User, error)

	// GetReports returns reports in the organization, or in one workspace.
	GetReports(ctx context.Context, groupID string) ([]report.Report, error)

	// GetReportUsers returns the principals with access to a report.
	GetReportUsers(ctx context.Context, reportID string) ([]report.User, error)

	// GetDatasets returns datasets in the organization, or in one workspace.
	GetDatasets(ctx context.Context, groupID string) ([]dataset.Dataset, error)

	// GetDatasetUsers returns the principals with access to a dataset.
	GetDatasetUsers(ctx context.Context, datasetID string) ([]dataset.User, error)

	// GetActivityEvents returns one page of audit events. The caller loops
	// with query.Next(page) while page.HasMore().
	GetActivityEvents(ctx context.Context, query activity.Query) (*activity.Page, error)
}

// ReportsClient defines the client port for workspace report endpoints.
type ReportsClient interface {
	GetReports(ctx context.Context, groupID string) ([]report.Report, error)
	GetReport(ctx context.Context, reportID, groupID string) (*report.Report, error)

	// CloneReport copies a report, optionally into another workspace and
	// bound to another dataset, and returns the copy.
	CloneReport(ctx context.Context, reportID, groupID string, req report.CloneRequest) (*report.Report, error)

	DeleteReport(ctx context.Context, reportID, groupID string) error

	// RebindReport points a report at another dataset.
	RebindReport(ctx context.Context, reportID, datasetID, groupID string) error

	// GenerateToken issues an embed token for a report in a workspace.
	GenerateToken(ctx context.Context, reportID, groupID string, req embed.TokenRequest) (*embed.Token, error)

	// ExportReport streams the report's .pbix file. The caller must close
	// the returned reader.
	ExportReport(ctx context.Context, reportID, groupID string) (io.ReadCloser, error)
}

// DatasetsClient defines the client port for workspace dataset endpoints.
type DatasetsClient interface {
	GetDatasets(ctx context.Context, groupID string) ([]dataset.Dataset, error)
	GetDataset(ctx context.Context, datasetID, groupID string) (*dataset.Dataset, error)
	DeleteDataset(ctx context.Context, datasetID, groupID string) error

	// RefreshDataset queues a refresh. notifyOption is one of
	// "NoNotification", "MailOnFailure", "MailOnCompletion"; empty sends no body.
	RefreshDataset(ctx context.Context, datasetID, groupID, notifyOption string) error

	// AddDatasetUser grants a principal access to a dataset.
	AddDatasetUser(ctx context.Context, datasetID, groupID string, user dataset.User) error
}

// GroupsClient defines the client port for workspace endpoints available to
// ordinary users.
type GroupsClient interface {
	GetGroups(ctx context.Context, query odata.Query) ([]group.Group, error)

	// CreateGroup creates a workspace. workspaceV2 requests the new
	// workspace experience.
	CreateGroup(ctx context.Context, name string, workspaceV2 bool) (*group.Group, error)

	DeleteGroup(ctx context.Context, groupID string) error
	GetGroupUsers(ctx context.Context, groupID string) ([]group.User, error)
	AddGroupUser(ctx context.Context, groupID string, user group.User) error

	// DeleteGroupUser removes a principal, identified by email address or
	// object id, from a workspace.
	DeleteGroupUser(ctx context.Context, groupID, user string) error
}
