package apiclient

import (
	"context"
	"net/http"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
)

const opCreateDashboard = "create_dashboard"

func (c *HTTPClient) CreateDashboard(ctx context.Context, req types.CreateDashboardRequest) (types.DashboardID, error) {
	var resp types.CreatedID
	err := c.sendRequest(ctx, apiRequest{
		op:     opCreateDashboard,
		method: http.MethodPost,
		path:   "/api/dashboards",
		body:   req,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}
