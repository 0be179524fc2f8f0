package apiclient

import (
	"context"
	"net/http"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
)

const opListDashboards = "list_dashboards"

type listResponse struct {
	Items types.Dashboards `json:"items"`
}

// ListDashboards returns the dashboards matching q in server order.
func (c *HTTPClient) ListDashboards(ctx context.Context, q types.DashboardsQuery) (types.Dashboards, error) {
	var resp listResponse
	err := c.sendRequest(ctx, apiRequest{
		op:        opListDashboards,
		method:    http.MethodGet,
		path:      "/api/dashboards",
		query:     q.Values(),
		retriable: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Items == nil {
		return types.Dashboards{}, nil
	}
	return resp.Items, nil
}
