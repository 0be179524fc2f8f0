package cli

import (
	"context"
	"net/url"

	"github.com/mtmgroup/dashboards-ui/internal/app/auth"
	"github.com/mtmgroup/dashboards-ui/internal/app/config"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/cache"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/client/apiclient"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/form"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/service"
)

// Deps is the wired program.
type Deps struct {
	Gate       auth.Gate
	Service    service.Service
	PageURL    string
	LocalHosts []string
	Forms      form.Options
	DebugAddr  string
}

func newDeps(ctx context.Context, cfg config.Config) (*Deps, error) {
	client := apiclient.New(apiclient.ClientParams{
		BaseURL:             cfg.API.BaseURL,
		Timeout:             cfg.API.Timeout,
		MaxRetries:          cfg.API.RequestRetries,
		InitialRetryBackoff: cfg.API.InitialRetryBackoff,
		MaxRetryBackoff:     cfg.API.MaxRetryBackoff,
	})

	c, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}

	return &Deps{
		Gate:       auth.NewGateFromConfig(cfg.Auth),
		Service:    service.New(client, c, cfg.Cache.OptionsTTL),
		PageURL:    cfg.App.PageURL,
		LocalHosts: cfg.Auth.LocalHosts,
		Forms:      form.Options{CheckDateOrder: cfg.Forms.CheckDateOrder},
		DebugAddr:  cfg.Debug.Addr,
	}, nil
}

func (d *Deps) isLocalPage() bool {
	u, err := url.Parse(d.PageURL)
	if err != nil {
		return false
	}
	return auth.IsLocalHost(u.Hostname(), d.LocalHosts)
}
