package acl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-powerbi/internal/adapters/clients/acl/groups"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/group"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/odata"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-powerbi/internal/ports"
)

var _ ports.GroupsClient = (*GroupsClient)(nil)

// GroupsClient is the outbound adapter for the workspace endpoints available
// to ordinary users. It implements [ports.GroupsClient] and, through a live
// request, [ports.HealthChecker].
type GroupsClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewGroupsClient creates a GroupsClient that sends requests through the
// given [httpclient.Client].
func NewGroupsClient(client *httpclient.Client, logger *slog.Logger) *GroupsClient {
	return &GroupsClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// GetGroups fetches GET groups with optional OData parameters.
func (c *GroupsClient) GetGroups(ctx context.Context, query odata.Query) ([]group.Group, error) {
	var dto groups.ListResponseDTO
	path := withQuery("groups", query.Encode())
	if err := c.req.Do(ctx, "Get Groups", http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return groups.ToDomainGroups(dto)
}

// CreateGroup sends POST groups, adding workspaceV2=True when requested.
func (c *GroupsClient) CreateGroup(ctx context.Context, name string, workspaceV2 bool) (*group.Group, error) {
	if err := requireIDs(group.KeyName, name); err != nil {
		return nil, err
	}

	path := "groups"
	if workspaceV2 {
		path = withQuery(path, "workspaceV2=True")
	}

	var m map[string]any
	body := groups.CreateRequestDTO{Name: name}
	if err := c.req.Do(ctx, "Create group", http.MethodPost, path, http.StatusOK, body, &m); err != nil {
		return nil, err
	}
	return groups.ToDomainGroup(m)
}

// DeleteGroup sends DELETE groups/{id}.
func (c *GroupsClient) DeleteGroup(ctx context.Context, groupID string) error {
	if err := requireIDs("groupId", groupID); err != nil {
		return err
	}
	return c.req.Do(ctx, "Delete group", http.MethodDelete, join("groups", groupID), http.StatusOK, nil, nil)
}

// GetGroupUsers fetches GET groups/{id}/users.
func (c *GroupsClient) GetGroupUsers(ctx context.Context, groupID string) ([]group.User, error) {
	if err := requireIDs("groupId", groupID); err != nil {
		return nil, err
	}

	var dto groups.ListResponseDTO
	path := join("groups", groupID, "users")
	if err := c.req.Do(ctx, "Get Group Users", http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return groups.ToDomainUsers(dto)
}

// AddGroupUser sends POST groups/{id}/users with the user's non-empty fields.
func (c *GroupsClient) AddGroupUser(ctx context.Context, groupID string, user group.User) error {
	if err := requireIDs("groupId", groupID); err != nil {
		return err
	}
	path := join("groups", groupID, "users")
	return c.req.Do(ctx, "Add group user", http.MethodPost, path, http.StatusOK, user.SetValues(), nil)
}

// DeleteGroupUser sends DELETE groups/{id}/users/{user}.
func (c *GroupsClient) DeleteGroupUser(ctx context.Context, groupID, user string) error {
	if err := requireIDs("groupId", groupID, "user", user); err != nil {
		return err
	}
	path := join("groups", groupID, "users", user)
	return c.req.Do(ctx, "Delete group user", http.MethodDelete, path, http.StatusOK, nil, nil)
}
