package acl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-powerbi/internal/adapters/clients/acl/activityevents"
	"github.com/jsamuelsen11/go-powerbi/internal/adapters/clients/acl/datasets"
	"github.com/jsamuelsen11/go-powerbi/internal/adapters/clients/acl/groups"
	"github.com/jsamuelsen11/go-powerbi/internal/adapters/clients/acl/reports"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/activity"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/dataset"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/group"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/odata"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/report"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-powerbi/internal/ports"
)

var _ ports.AdminClient = (*AdminClient)(nil)

// AdminClient is the outbound adapter for the tenant-wide /admin endpoints.
// It implements [ports.AdminClient].
//
// Every method issues one request through the shared [httpclient.Client]
// and translates the OData envelope with the acl subpackage translators.
// Any status other than 200 is returned as a *domain.HTTPError.
type AdminClient struct {
	req     *Requester
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewAdminClient creates an AdminClient that sends requests through the
// given [httpclient.Client]. metrics may be nil.
func NewAdminClient(client *httpclient.Client, metrics *telemetry.Metrics, logger *slog.Logger) *AdminClient {
	return &AdminClient{
		req:     NewRequester(client, logger),
		metrics: metrics,
		logger:  logger,
	}
}

// GetGroups fetches workspaces from GET admin/groups. The endpoint requires
// $top, so an unset query.Top becomes odata.DefaultTop.
func (c *AdminClient) GetGroups(ctx context.Context, query odata.Query) ([]group.Group, error) {
	path := withQuery("admin/groups", query.WithDefaultTop().Encode())

	var dto groups.ListResponseDTO
	if err := c.req.Do(ctx, "Get Groups", http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return groups.ToDomainGroups(dto)
}

// GetGroupUsers fetches GET admin/groups/{id}/users.
func (c *AdminClient) GetGroupUsers(ctx context.Context, groupID string) ([]group.User, error) {
	if err := requireIDs("groupId", groupID); err != nil {
		return nil, err
	}

	var dto groups.ListResponseDTO
	path := join("admin", "groups", groupID, "users")
	if err := c.req.Do(ctx, "Get Group Users", http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return groups.ToDomainUsers(dto)
}

// GetReports fetches GET admin/reports, or admin/groups/{id}/reports when
// groupID is set.
func (c *AdminClient) GetReports(ctx context.Context, groupID string) ([]report.Report, error) {
	path := join("admin", "reports")
	if groupID != "" {
		path = join("admin", "groups", groupID, "reports")
	}

	var dto reports.ListResponseDTO
	if err := c.req.Do(ctx, "Get Reports", http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return reports.ToDomainReports(dto)
}

// GetReportUsers fetches GET admin/reports/{id}/users.
func (c *AdminClient) GetReportUsers(ctx context.Context, reportID string) ([]report.User, error) {
	if err := requireIDs("reportId", reportID); err != nil {
		return nil, err
	}

	var dto reports.ListResponseDTO
	path := join("admin", "reports", reportID, "users")
	if err := c.req.Do(ctx, "Get Report Users", http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return reports.ToDomainUsers(dto)
}

// GetDatasets fetches GET admin/datasets, or admin/groups/{id}/datasets when
// groupID is set.
func (c *AdminClient) GetDatasets(ctx context.Context, groupID string) ([]dataset.Dataset, error) {
	path := join("admin", "datasets")
	if groupID != "" {
		path = join("admin", "groups", groupID, "datasets")
	}

	var dto datasets.ListResponseDTO
	if err := c.req.Do(ctx, "Get Datasets", http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return datasets.ToDomainDatasets(dto)
}

// GetDatasetUsers fetches GET admin/datasets/{id}/users.
func (c *AdminClient) GetDatasetUsers(ctx context.Context, datasetID string) ([]dataset.User, error) {
	if err := requireIDs("datasetId", datasetID); err != nil {
		return nil, err
	}

	var dto datasets.ListResponseDTO
	path := join("admin", "datasets", datasetID, "users")
	if err := c.req.Do(ctx, "Get Dataset Users", http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return datasets.ToDomainUsers(dto)
}

// GetActivityEvents fetches one page of GET admin/activityevents. The query
// window is validated before any request is made. Power BI allows about 200
// calls per hour to this endpoint.
func (c *AdminClient) GetActivityEvents(ctx context.Context, query activity.Query) (*activity.Page, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var dto activityevents.PageResponseDTO
	path := withQuery("admin/activityevents", activityQuery(query))
	if err := c.req.Do(ctx, "Get ActivityEvents", http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}

	page, err := activityevents.ToDomainPage(dto)
	if err != nil {
		return nil, err
	}
	c.metrics.RecordActivityEvents(ctx, "Get ActivityEvents", len(page.Events))
	return page, nil
}
