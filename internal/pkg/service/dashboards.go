package service

import (
	"context"
	"fmt"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
)

func (s *service) ListDashboards(ctx context.Context, q types.DashboardsQuery) (types.Dashboards, error) {
	return s.client.ListDashboards(ctx, q)
}

// GetDashboard looks the dashboard up in the unfiltered list.
func (s *service) GetDashboard(ctx context.Context, id types.DashboardID) (types.Dashboard, error) {
	if err := checkID(id); err != nil {
		return types.Dashboard{}, err
	}

	all, err := s.client.ListDashboards(ctx, types.DashboardsQuery{})
	if err != nil {
		return types.Dashboard{}, err
	}
	d, ok := all.Find(id)
	if !ok {
		return types.Dashboard{}, types.NewErrNotFound(fmt.Sprintf("dashboard %s", id))
	}
	return d, nil
}

// CreateDashboard creates the dashboard. New values may extend the options.
func (s *service) CreateDashboard(ctx context.Context, req types.CreateDashboardRequest) (types.DashboardID, error) {
	id, err := s.client.CreateDashboard(ctx, req)
	if err != nil {
		return "", err
	}
	s.invalidateOptions(ctx)
	return id, nil
}

func (s *service) UpdateDashboard(ctx context.Context, req types.UpdateDashboardRequest) error {
	if err := checkID(req.ID); err != nil {
		return err
	}
	if err := s.client.UpdateDashboard(ctx, req); err != nil {
		return err
	}
	s.invalidateOptions(ctx)
	return nil
}

func checkID(id types.DashboardID) error {
	if _, err := types.ParseDashboardID(id.String()); err != nil {
		return err
	}
	return nil
}
