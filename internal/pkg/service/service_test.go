package service

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/mtmgroup/dashboards-ui/internal/app/config"
	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/cache"
	mock_apiclient "github.com/mtmgroup/dashboards-ui/internal/pkg/client/apiclient/mock"
	"github.com/mtmgroup/dashboards-ui/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCache(t *testing.T) cache.Cache {
	t.Helper()

	c, err := cache.New(context.Background(), config.Cache{
		Inmemory: config.InmemoryCache{NumCounters: 100, MaxCost: 10, BufferItems: 64},
	})
	require.NoError(t, err)
	return c
}

func TestGetOptionsCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	client := mock_apiclient.NewMockClient(ctrl)

	first := types.OptionSet{Categories: []string{"Sales"}}
	second := types.OptionSet{Categories: []string{"Sales", "Ops"}}
	gomock.InOrder(
		client.EXPECT().GetOptions(gomock.Any()).Return(first, nil).Times(1),
		client.EXPECT().UpdateDashboard(gomock.Any(), gomock.Any()).Return(nil).Times(1),
		client.EXPECT().GetOptions(gomock.Any()).Return(second, nil).Times(1),
	)

	s := New(client, newTestCache(t), time.Minute)

	got, err := s.GetOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = s.GetOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	require.NoError(t, s.UpdateDashboard(ctx, types.UpdateDashboardRequest{ID: "1"}))

	got, err = s.GetOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestGetOptionsMalformedCacheEntry(t *testing.T) {
	var logs bytes.Buffer
	logger.SetOutput(&logs)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	client := mock_apiclient.NewMockClient(ctrl)

	want := types.OptionSet{Clients: []string{"Acme"}}
	client.EXPECT().GetOptions(gomock.Any()).Return(want, nil).Times(1)

	c := newTestCache(t)
	require.NoError(t, c.Set(ctx, optionsCacheKey, []byte("{not json"), time.Minute))

	got, err := New(client, c, time.Minute).GetOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Contains(t, logs.String(), "drop malformed cached options")
	assert.Contains(t, logs.String(), `"error":`)

	raw, err := c.Get(ctx, optionsCacheKey)
	require.NoError(t, err)
	var cached types.OptionSet
	require.NoError(t, json.Unmarshal(raw, &cached))
	assert.Equal(t, want, cached)
}

func TestGetOptionsWithoutCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_apiclient.NewMockClient(ctrl)
	client.EXPECT().GetOptions(gomock.Any()).Return(types.OptionSet{}, nil).Times(2)

	s := New(client, nil, 0)
	for i := 0; i < 2; i++ {
		_, err := s.GetOptions(context.Background())
		require.NoError(t, err)
	}
}

func TestGetDashboard(t *testing.T) {
	list := types.Dashboards{{ID: "1", Topic: "A"}, {ID: "2", Topic: "B"}}

	tCases := []struct {
		name     string
		id       types.DashboardID
		wantList bool
		want     types.Dashboard
		wantErr  error
	}{
		{name: "found", id: "2", wantList: true, want: list[1]},
		{name: "not_found", id: "3", wantList: true, wantErr: types.ErrNotFound},
		{name: "invalid_id", id: "", wantErr: types.ErrInvalidRequestField},
	}

	for _, tCase := range tCases {
		tCase := tCase
		t.Run(tCase.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			client := mock_apiclient.NewMockClient(ctrl)
			if tCase.wantList {
				client.EXPECT().ListDashboards(gomock.Any(), types.DashboardsQuery{}).Return(list, nil).Times(1)
			}

			got, err := New(client, nil, 0).GetDashboard(context.Background(), tCase.id)
			if tCase.wantErr != nil {
				assert.ErrorIs(t, err, tCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tCase.want, got)
		})
	}
}

func TestUpdateDashboardRejectsBadID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_apiclient.NewMockClient(ctrl)

	err := New(client, nil, 0).UpdateDashboard(context.Background(), types.UpdateDashboardRequest{ID: "a/b"})
	assert.ErrorIs(t, err, types.ErrInvalidRequestField)
}
