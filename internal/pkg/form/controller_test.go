package form

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	mock_apiclient "github.com/mtmgroup/dashboards-ui/internal/pkg/client/apiclient/mock"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var dashboard = types.Dashboard{
	ID:               "5",
	Topic:            "Revenue",
	Description:      "Monthly revenue",
	LastUpdatedDate:  "2024-03-01",
	UpdatedBy:        "ann",
	DataFrom:         "2024-01-01",
	DataTo:           "2024-02-29",
	PublishedAccount: "bi@acme.com",
}

func messages(q *notify.Queue) []string {
	var res []string
	for _, n := range q.Active() {
		res = append(res, string(n.Level)+": "+n.Message)
	}
	return res
}

func TestUpdateSubmit(t *testing.T) {
	netErr := types.NewNetworkError("update_dashboard", errors.New("connection refused"))

	tCases := []struct {
		name       string
		edit       map[string]string
		writeErr   error
		wantWrite  bool
		want       Outcome
		wantInline string
		wantToasts []string
		wantOpen   bool
	}{
		{
			name:       "validation_no_toast",
			edit:       map[string]string{FieldDescription: " "},
			want:       OutcomeInvalid,
			wantInline: MsgDescriptionRequired,
			wantOpen:   true,
		},
		{
			name:       "network_error",
			wantWrite:  true,
			writeErr:   netErr,
			want:       OutcomeFailed,
			wantInline: MsgNetworkError,
			wantToasts: []string{"error: " + MsgUpdateFailed},
			wantOpen:   true,
		},
		{
			name:       "application_error_with_message",
			wantWrite:  true,
			writeErr:   &types.ApplicationError{Op: "update_dashboard", StatusCode: 404, Message: "Dashboard not found"},
			want:       OutcomeFailed,
			wantInline: "Dashboard not found",
			wantToasts: []string{"error: " + MsgUpdateFailed},
			wantOpen:   true,
		},
		{
			name:       "application_error_without_message",
			wantWrite:  true,
			writeErr:   &types.ApplicationError{Op: "update_dashboard", StatusCode: 500},
			want:       OutcomeFailed,
			wantInline: MsgUpdateFailed,
			wantToasts: []string{"error: " + MsgUpdateFailed},
			wantOpen:   true,
		},
		{
			name:       "success",
			edit:       map[string]string{FieldDescription: "Quarterly revenue"},
			wantWrite:  true,
			want:       OutcomeSucceeded,
			wantToasts: []string{"success: " + MsgUpdateSucceeded},
		},
	}

	for _, tCase := range tCases {
		tCase := tCase
		t.Run(tCase.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			client := mock_apiclient.NewMockClient(ctrl)
			if tCase.wantWrite {
				client.EXPECT().UpdateDashboard(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req types.UpdateDashboardRequest) error {
						assert.Equal(t, dashboard.ID, req.ID)
						return tCase.writeErr
					}).Times(1)
			}

			q := notify.NewQueue(0)
			changed := 0
			c := NewUpdateController(client, q, Options{}, func() { changed++ })

			c.Open(dashboard)
			for f, v := range tCase.edit {
				require.NoError(t, c.Edit(f, v))
			}

			got := c.Submit(context.Background())
			assert.Equal(t, tCase.want, got)

			st := c.State()
			assert.Equal(t, tCase.wantOpen, st.IsOpen())
			assert.Equal(t, tCase.wantInline, st.Error)
			assert.Equal(t, tCase.wantToasts, messages(q))

			wantChanged := 0
			if tCase.want == OutcomeSucceeded {
				wantChanged = 1
			}
			assert.Equal(t, wantChanged, changed)
		})
	}
}

func TestCreateSubmit(t *testing.T) {
	identity := &types.Identity{UserID: "7", FirstName: "Ann", LastName: "Lee"}

	tCases := []struct {
		name       string
		fill       bool
		writeErr   error
		want       Outcome
		wantInline string
		wantToasts []string
	}{
		{
			name:       "blank_fields",
			want:       OutcomeInvalid,
			wantInline: MsgFillAllFields,
			wantToasts: []string{"error: " + MsgFillRequiredToast},
		},
		{
			name:       "network_error",
			fill:       true,
			writeErr:   types.NewNetworkError("create_dashboard", errors.New("timeout")),
			want:       OutcomeFailed,
			wantInline: MsgNetworkError,
			wantToasts: []string{"error: " + MsgNetworkError},
		},
		{
			name:       "application_error",
			fill:       true,
			writeErr:   &types.ApplicationError{Op: "create_dashboard", StatusCode: 400, Message: "'topic' is required"},
			want:       OutcomeFailed,
			wantInline: "'topic' is required",
			wantToasts: []string{"error: 'topic' is required"},
		},
		{
			name:       "application_error_fallback",
			fill:       true,
			writeErr:   &types.ApplicationError{Op: "create_dashboard", StatusCode: 500},
			want:       OutcomeFailed,
			wantInline: MsgCreateFailed,
			wantToasts: []string{"error: " + MsgCreateFailed},
		},
		{
			name:       "success",
			fill:       true,
			want:       OutcomeSucceeded,
			wantToasts: []string{"success: " + MsgCreateSucceeded},
		},
	}

	for _, tCase := range tCases {
		tCase := tCase
		t.Run(tCase.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			client := mock_apiclient.NewMockClient(ctrl)
			if tCase.fill {
				client.EXPECT().CreateDashboard(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req types.CreateDashboardRequest) (types.DashboardID, error) {
						assert.Equal(t, "7", req.UserID)
						assert.Equal(t, "Lee", req.UserLastName)
						if tCase.writeErr != nil {
							return "", tCase.writeErr
						}
						return "99", nil
					}).Times(1)
			}

			q := notify.NewQueue(0)
			changed := 0
			c := NewCreateController(client, q, identity, Options{}, func() { changed++ })

			c.Open()
			if tCase.fill {
				d := validCreateDraft()
				for _, f := range CreateFields {
					require.NoError(t, c.Edit(f, d.Get(f)))
				}
			}

			assert.Equal(t, tCase.want, c.Submit(context.Background()))
			assert.Equal(t, tCase.wantInline, c.State().Error)
			assert.Equal(t, tCase.wantToasts, messages(q))

			if tCase.want == OutcomeSucceeded {
				assert.False(t, c.State().IsOpen())
				assert.Equal(t, types.DashboardID("99"), c.LastCreatedID())
				assert.Equal(t, 1, changed)
				return
			}
			assert.True(t, c.State().IsOpen())
			assert.Zero(t, changed)
		})
	}
}

func TestDoubleSubmitWritesOnce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_apiclient.NewMockClient(ctrl)

	entered := make(chan struct{})
	release := make(chan struct{})
	client.EXPECT().UpdateDashboard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, types.UpdateDashboardRequest) error {
			close(entered)
			<-release
			return nil
		}).Times(1)

	c := NewUpdateController(client, notify.NewQueue(0), Options{}, nil)
	c.Open(dashboard)

	var wg sync.WaitGroup
	var first Outcome
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = c.Submit(context.Background())
	}()
	<-entered

	assert.Equal(t, PhaseSubmitting, c.State().Phase)
	assert.Equal(t, OutcomeIgnored, c.Submit(context.Background()))
	assert.False(t, c.Cancel(), "cancel ignored while submitting")

	close(release)
	wg.Wait()
	assert.Equal(t, OutcomeSucceeded, first)
	assert.False(t, c.State().IsOpen())
}

func TestSubmitClosedDialogIgnored(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_apiclient.NewMockClient(ctrl)

	c := NewCreateController(client, notify.NewQueue(0), nil, Options{}, nil)
	assert.Equal(t, OutcomeIgnored, c.Submit(context.Background()))
}
