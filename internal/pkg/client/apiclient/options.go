package apiclient

import (
	"context"
	"net/http"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
)

const opGetOptions = "get_options"

type optionsResponse struct {
	types.OptionSet
}

func (c *HTTPClient) GetOptions(ctx context.Context) (types.OptionSet, error) {
	var resp optionsResponse
	err := c.sendRequest(ctx, apiRequest{
		op:        opGetOptions,
		method:    http.MethodGet,
		path:      "/api/options",
		retriable: true,
	}, &resp)
	if err != nil {
		return types.OptionSet{}, err
	}
	return normalizeOptions(resp.OptionSet), nil
}

// normalizeOptions turns missing keys into empty lists.
func normalizeOptions(o types.OptionSet) types.OptionSet {
	nonNil := func(s []string) []string {
		if s == nil {
			return []string{}
		}
		return s
	}
	return types.OptionSet{
		Categories:        nonNil(o.Categories),
		Clients:           nonNil(o.Clients),
		CreatedBys:        nonNil(o.CreatedBys),
		UpdatedBys:        nonNil(o.UpdatedBys),
		PublishedAccounts: nonNil(o.PublishedAccounts),
	}
}
