package acl

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/go-powerbi/internal/domain/odata"
	"github.com/jsamuelsen11/go-powerbi/internal/ports"
)

var _ ports.HealthChecker = (*GroupsClient)(nil)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *GroupsClient) Name() string {
	return "powerbi-api"
}

// HealthCheck makes one live call, GET groups?$top=1, proving that the API
// is reachable and accepts the configured token. Unlike the circuit breaker
// check on [httpclient.Client], this spends a request.
func (c *GroupsClient) HealthCheck(ctx context.Context) error {
	if _, err := c.GetGroups(ctx, odata.Query{Top: 1}); err != nil {
		return fmt.Errorf("powerbi-api: %w", err)
	}
	return nil
}
