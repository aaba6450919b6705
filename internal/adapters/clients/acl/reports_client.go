package acl

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-powerbi/internal/adapters/clients/acl/reports"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/embed"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/report"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-powerbi/internal/ports"
)

var _ ports.ReportsClient = (*ReportsClient)(nil)

// ReportsClient is the outbound adapter for the workspace report endpoints.
// It implements [ports.ReportsClient]. An empty groupID addresses
// "My workspace".
type ReportsClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewReportsClient creates a ReportsClient that sends requests through the
// given [httpclient.Client].
func NewReportsClient(client *httpclient.Client, logger *slog.Logger) *ReportsClient {
	return &ReportsClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// GetReports fetches GET [groups/{g}/]reports.
func (c *ReportsClient) GetReports(ctx context.Context, groupID string) ([]report.Report, error) {
	var dto reports.ListResponseDTO
	if err := c.req.Do(ctx, "Get reports", http.MethodGet, scoped(groupID, "reports"), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return reports.ToDomainReports(dto)
}

// GetReport fetches GET [groups/{g}/]reports/{id}.
func (c *ReportsClient) GetReport(ctx context.Context, reportID, groupID string) (*report.Report, error) {
	if err := requireIDs("reportId", reportID); err != nil {
		return nil, err
	}

	var m map[string]any
	path := scoped(groupID, "reports", reportID)
	if err := c.req.Do(ctx, "Get the specified report", http.MethodGet, path, http.StatusOK, nil, &m); err != nil {
		return nil, err
	}
	return reports.ToDomainReport(m)
}

// CloneReport sends POST [groups/{g}/]reports/{id}/clone and returns the
// new report.
func (c *ReportsClient) CloneReport(
	ctx context.Context,
	reportID, groupID string,
	cr report.CloneRequest,
) (*report.Report, error) {
	if err := requireIDs("reportId", reportID, report.KeyName, cr.Name); err != nil {
		return nil, err
	}

	var m map[string]any
	path := scoped(groupID, "reports", reportID, "clone")
	if err := c.req.Do(ctx, "Clone report", http.MethodPost, path, http.StatusOK, cr.SetValues(), &m); err != nil {
		return nil, err
	}
	return reports.ToDomainReport(m)
}

// DeleteReport sends DELETE [groups/{g}/]reports/{id}.
func (c *ReportsClient) DeleteReport(ctx context.Context, reportID, groupID string) error {
	if err := requireIDs("reportId", reportID); err != nil {
		return err
	}
	path := scoped(groupID, "reports", reportID)
	return c.req.Do(ctx, "Delete report", http.MethodDelete, path, http.StatusOK, nil, nil)
}

// RebindReport sends POST [groups/{g}/]reports/{id}/rebind.
func (c *ReportsClient) RebindReport(ctx context.Context, reportID, datasetID, groupID string) error {
	if err := requireIDs("reportId", reportID, "datasetId", datasetID); err != nil {
		return err
	}
	path := scoped(groupID, "reports", reportID, "rebind")
	body := reports.ToRebindRequest(datasetID)
	return c.req.Do(ctx, "Rebind report", http.MethodPost, path, http.StatusOK, body, nil)
}

// GenerateToken sends POST groups/{g}/reports/{id}/generatetoken. The
// endpoint only exists inside a workspace, so groupID is required.
func (c *ReportsClient) GenerateToken(
	ctx context.Context,
	reportID, groupID string,
	tr embed.TokenRequest,
) (*embed.Token, error) {
	if err := requireIDs("reportId", reportID, "groupId", groupID); err != nil {
		return nil, err
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	var m map[string]any
	path := scoped(groupID, "reports", reportID, "generatetoken")
	if err := c.req.Do(ctx, "Generate token for report", http.MethodPost, path, http.StatusOK, tr.SetValues(), &m); err != nil {
		return nil, err
	}
	return reports.ToDomainToken(m)
}

// ExportReport opens GET [groups/{g}/]reports/{id}/Export and returns the
// .pbix stream. The caller must close it.
func (c *ReportsClient) ExportReport(ctx context.Context, reportID, groupID string) (io.ReadCloser, error) {
	if err := requireIDs("reportId", reportID); err != nil {
		return nil, err
	}

	op := "Export Report"
	if groupID != "" {
		op = "Export Report in Group"
	}
	return c.req.Stream(ctx, op, scoped(groupID, "reports", reportID, "Export"))
}
