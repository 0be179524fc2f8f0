package service

//go:generate mockgen -source=service.go -destination=mock/service.go

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/cache"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/client/apiclient"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Service interface {
	GetOptions(context.Context) (types.OptionSet, error)
	ListDashboards(context.Context, types.DashboardsQuery) (types.Dashboards, error)
	GetDashboard(context.Context, types.DashboardID) (types.Dashboard, error)
	CreateDashboard(context.Context, types.CreateDashboardRequest) (types.DashboardID, error)
	UpdateDashboard(context.Context, types.UpdateDashboardRequest) error
}

type service struct {
	client     apiclient.Client
	cache      cache.Cache
	optionsTTL time.Duration
}

// New wraps the API client. c may be nil, then nothing is cached.
func New(client apiclient.Client, c cache.Cache, optionsTTL time.Duration) Service {
	return &service{
		client:     client,
		cache:      c,
		optionsTTL: optionsTTL,
	}
}
