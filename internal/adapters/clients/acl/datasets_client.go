package acl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-powerbi/internal/adapters/clients/acl/datasets"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/dataset"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-powerbi/internal/ports"
)

var _ ports.DatasetsClient = (*DatasetsClient)(nil)

// Notify options accepted by RefreshDataset.
const (
	NotifyNone             = "NoNotification"
	NotifyMailOnFailure    = "MailOnFailure"
	NotifyMailOnCompletion = "MailOnCompletion"
)

// DatasetsClient is the outbound adapter for the workspace dataset
// endpoints. It implements [ports.DatasetsClient].
type DatasetsClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewDatasetsClient creates a DatasetsClient that sends requests through the
// given [httpclient.Client].
func NewDatasetsClient(client *httpclient.Client, logger *slog.Logger) *DatasetsClient {
	return &DatasetsClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// GetDatasets fetches GET [groups/{g}/]datasets.
func (c *DatasetsClient) GetDatasets(ctx context.Context, groupID string) ([]dataset.Dataset, error) {
	var dto datasets.ListResponseDTO
	if err := c.req.Do(ctx, "Get Datasets", http.MethodGet, scoped(groupID, "datasets"), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return datasets.ToDomainDatasets(dto)
}

// GetDataset fetches GET [groups/{g}/]datasets/{id}.
func (c *DatasetsClient) GetDataset(ctx context.Context, datasetID, groupID string) (*dataset.Dataset, error) {
	if err := requireIDs("datasetId", datasetID); err != nil {
		return nil, err
	}

	var m map[string]any
	path := scoped(groupID, "datasets", datasetID)
	if err := c.req.Do(ctx, "Get the specified dataset", http.MethodGet, path, http.StatusOK, nil, &m); err != nil {
		return nil, err
	}
	return datasets.ToDomainDataset(m)
}

// DeleteDataset sends DELETE [groups/{g}/]datasets/{id}.
func (c *DatasetsClient) DeleteDataset(ctx context.Context, datasetID, groupID string) error {
	if err := requireIDs("datasetId", datasetID); err != nil {
		return err
	}
	path := scoped(groupID, "datasets", datasetID)
	return c.req.Do(ctx, "Delete dataset", http.MethodDelete, path, http.StatusOK, nil, nil)
}

// RefreshDataset sends POST [groups/{g}/]datasets/{id}/refreshes. The
// refresh is queued; success is 202 Accepted.
func (c *DatasetsClient) RefreshDataset(ctx context.Context, datasetID, groupID, notifyOption string) error {
	if err := requireIDs("datasetId", datasetID); err != nil {
		return err
	}

	// A nil *RefreshRequestDTO must not reach Do as a non-nil interface.
	var body any
	if dto := datasets.ToRefreshRequest(notifyOption); dto != nil {
		body = dto
	}
	path := scoped(groupID, "datasets", datasetID, "refreshes")
	return c.req.Do(ctx, "Refresh dataset", http.MethodPost, path, http.StatusAccepted, body, nil)
}

// AddDatasetUser sends POST [groups/{g}/]datasets/{id}/users with the
// user's non-empty fields.
func (c *DatasetsClient) AddDatasetUser(ctx context.Context, datasetID, groupID string, user dataset.User) error {
	if err := requireIDs("datasetId", datasetID); err != nil {
		return err
	}
	path := scoped(groupID, "datasets", datasetID, "users")
	return c.req.Do(ctx, "Add dataset user", http.MethodPost, path, http.StatusOK, user.SetValues(), nil)
}
