package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
)

const opUpdateDashboard = "update_dashboard"

func (c *HTTPClient) UpdateDashboard(ctx context.Context, req types.UpdateDashboardRequest) error {
	if req.ID == "" {
		return types.NewErrInvalidRequestField("empty dashboard id")
	}
	return c.sendRequest(ctx, apiRequest{
		op:     opUpdateDashboard,
		method: http.MethodPut,
		path:   "/api/dashboards/" + url.PathEscape(req.ID.String()),
		body:   req,
	}, nil)
}
