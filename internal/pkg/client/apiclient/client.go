package apiclient

//go:generate mockgen -source=client.go -destination=mock/client.go

import (
	"context"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mtmgroup/dashboards-ui/internal/app/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client talks to the dashboards REST backend.
type Client interface {
	GetOptions(context.Context) (types.OptionSet, error)
	ListDashboards(context.Context, types.DashboardsQuery) (types.Dashboards, error)
	CreateDashboard(context.Context, types.CreateDashboardRequest) (types.DashboardID, error)
	UpdateDashboard(context.Context, types.UpdateDashboardRequest) error
}

type ClientParams struct {
	BaseURL             string
	Timeout             time.Duration
	MaxRetries          int
	InitialRetryBackoff time.Duration
	MaxRetryBackoff     time.Duration
	// HTTPClient is optional; http.DefaultTransport is used when nil.
	HTTPClient *http.Client
}

type HTTPClient struct {
	baseURL             string
	http                *http.Client
	timeout             time.Duration
	initialRetryBackoff time.Duration
	maxRetryBackoff     time.Duration
	reqRetries          int
}

func New(params ClientParams) *HTTPClient {
	if params.BaseURL == "" {
		panic("base url is empty")
	}

	hc := params.HTTPClient
	if hc == nil {
		hc = &http.Client{Transport: http.DefaultTransport}
	}

	return &HTTPClient{
		baseURL:             strings.TrimRight(params.BaseURL, "/"),
		http:                hc,
		timeout:             params.Timeout,
		initialRetryBackoff: params.InitialRetryBackoff,
		maxRetryBackoff:     params.MaxRetryBackoff,
		reqRetries:          params.MaxRetries,
	}
}
