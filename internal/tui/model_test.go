package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mtmgroup/dashboards-ui/internal/app/auth"
	mock_auth "github.com/mtmgroup/dashboards-ui/internal/app/auth/mock"
	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/filter"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/form"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/notify"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/page"
	mock_service "github.com/mtmgroup/dashboards-ui/internal/pkg/service/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const pageURL = "https://dashboards.example.com/dashboards"

var dashboards = types.Dashboards{
	{
		ID:               "5",
		Topic:            "Revenue",
		Category:         "Sales",
		Description:      "Monthly revenue",
		LastUpdatedDate:  "2024-03-01",
		UpdatedBy:        "ann",
		DataFrom:         "2024-01-01",
		DataTo:           "2024-02-29",
		PublishedAccount: "bi@acme.com",
	},
}

type fixture struct {
	gate   *mock_auth.MockGate
	svc    *mock_service.MockService
	toasts *notify.Queue
	m      model
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		gate:   mock_auth.NewMockGate(ctrl),
		svc:    mock_service.NewMockService(ctrl),
		toasts: notify.NewQueue(0),
	}
	f.m = newModel(context.Background(), Deps{
		Gate:    f.gate,
		PageURL: pageURL,
		NewPage: func(id types.Identity) *page.Page {
			return page.New(page.Params{Service: f.svc, Identity: id, Notifier: f.toasts})
		},
		Toasts: f.toasts,
	})
	return f
}

func (f *fixture) update(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()

	next, cmd := f.m.Update(msg)
	m, ok := next.(model)
	require.True(t, ok)
	f.m = m
	return cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// authorize resolves the gate with id and completes the first load.
func (f *fixture) authorize(t *testing.T) {
	t.Helper()
	f.authorizeWith(t, dashboards)
}

func (f *fixture) authorizeWith(t *testing.T, list types.Dashboards) {
	t.Helper()

	id := types.DevIdentity()
	f.gate.EXPECT().Authenticate(gomock.Any(), pageURL).Return(types.AuthResult{Identity: &id}, nil)
	f.svc.EXPECT().GetOptions(gomock.Any()).Return(types.OptionSet{Categories: []string{"Sales"}}, nil)
	f.svc.EXPECT().ListDashboards(gomock.Any(), types.DashboardsQuery{}).Return(list, nil)

	f.update(t, f.m.authenticate()())
	require.Equal(t, modeList, f.m.mode)
	f.update(t, f.m.load()())
}

func TestAuthorizingPlaceholder(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	assert.Contains(t, f.m.View(), auth.PendingMessage)
}

func TestRedirectShown(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	r := types.NewSigninRedirect("https://portal.example.com", pageURL)
	f.gate.EXPECT().Authenticate(gomock.Any(), pageURL).Return(types.AuthResult{Redirect: &r}, nil)

	f.update(t, f.m.authenticate()())
	assert.Equal(t, modeRedirect, f.m.mode)
	assert.Contains(t, f.m.View(), r.URL)
	assert.Nil(t, f.m.page)
}

func TestLoadFillsTable(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.authorize(t)

	assert.False(t, f.m.loading)
	require.Len(t, f.m.table.Rows(), 1)
	assert.Equal(t, "Revenue", f.m.table.Rows()[0][1])
	assert.Contains(t, f.m.View(), "1 dashboards")
}

func TestFilterApplyFetchesOnce(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.authorize(t)

	f.update(t, key("/"))
	require.Equal(t, modeFilter, f.m.mode)
	f.m.filterInputs[0].SetValue("Sales")

	f.svc.EXPECT().ListDashboards(gomock.Any(), types.DashboardsQuery{Category: "Sales"}).
		Return(dashboards, nil).Times(1)

	cmd := f.update(t, key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, modeList, f.m.mode)
	assert.True(t, f.m.loading)

	snap := f.m.page.Snapshot()
	f.update(t, f.m.fetch(filter.Request{Generation: snap.Generation, Query: snap.State.Query()})())
	assert.False(t, f.m.loading)
}

func TestUpdateDialogFlow(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.authorize(t)

	f.update(t, key("e"))
	require.Equal(t, modeDialog, f.m.mode)
	require.Equal(t, dialogUpdate, f.m.dialog)
	assert.Equal(t, "Monthly revenue", f.m.formInputs[0].Value())

	f.m.formInputs[0].SetValue("")
	require.NoError(t, f.m.editDialog(form.FieldDescription, ""))

	f.update(t, key("ctrl+s"))
	assert.True(t, f.m.submitting)

	f.update(t, key("esc"))
	assert.Equal(t, modeDialog, f.m.mode, "esc ignored while submitting")

	f.update(t, f.m.submit(dialogUpdate)())
	assert.False(t, f.m.submitting)
	assert.Equal(t, modeDialog, f.m.mode)
	assert.Contains(t, f.m.View(), form.MsgDescriptionRequired)

	require.NoError(t, f.m.editDialog(form.FieldDescription, "Quarterly revenue"))
	f.svc.EXPECT().UpdateDashboard(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.svc.EXPECT().ListDashboards(gomock.Any(), types.DashboardsQuery{}).Return(dashboards, nil).Times(1)

	f.update(t, f.m.submit(dialogUpdate)())
	assert.Equal(t, modeList, f.m.mode)
	assert.Contains(t, f.m.View(), form.MsgUpdateSucceeded)
}

func TestCreateDialogCancel(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.authorize(t)

	f.update(t, key("n"))
	require.Equal(t, dialogCreate, f.m.dialog)
	assert.Len(t, f.m.formInputs, len(form.CreateFields))

	f.update(t, key("esc"))
	assert.Equal(t, modeList, f.m.mode)
	assert.False(t, f.m.page.CreateDialog().State().IsOpen())
}

// runCmd executes cmd and returns the messages it produces.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestOpenLink(t *testing.T) {
	list := types.Dashboards{
		{ID: "5", Topic: "Revenue", Link: " https://bi.example.com/5 "},
		{ID: "6", Topic: "Costs"},
	}

	tCases := []struct {
		name       string
		cursor     int
		openErr    error
		wantOpened []string
		wantToast  string
	}{
		{
			name:       "opens_link",
			wantOpened: []string{"https://bi.example.com/5"},
			wantToast:  msgOpeningLink + "https://bi.example.com/5",
		},
		{
			name:       "browser_failure_shows_link",
			openErr:    assert.AnError,
			wantOpened: []string{"https://bi.example.com/5"},
			wantToast:  msgOpenLinkFailed + "https://bi.example.com/5",
		},
		{
			name:      "no_link",
			cursor:    1,
			wantToast: msgNoLink,
		},
	}

	for _, tCase := range tCases {
		tCase := tCase
		t.Run(tCase.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			f.authorizeWith(t, list)

			var opened []string
			f.m.deps.OpenURL = func(u string) error {
				opened = append(opened, u)
				return tCase.openErr
			}
			f.m.ticking = true
			f.m.table.SetCursor(tCase.cursor)

			for _, msg := range runCmd(f.update(t, key("o"))) {
				f.update(t, msg)
			}

			assert.Equal(t, tCase.wantOpened, opened)
			assert.Contains(t, f.m.View(), tCase.wantToast)
		})
	}
}

func TestFilteredStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.authorize(t)
	assert.NotContains(t, f.m.View(), "filtered")

	f.svc.EXPECT().ListDashboards(gomock.Any(), types.DashboardsQuery{Category: "Sales"}).Return(dashboards, nil)
	require.True(t, f.m.page.SetFilter(context.Background(), filter.FieldCategory, "Sales"))
	assert.Contains(t, f.m.View(), "(filtered, x: clear)")
}
