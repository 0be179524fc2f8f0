package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mtmgroup/dashboards-ui/internal/app/auth"
	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/filter"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/form"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/notify"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/page"
)

const toastTickInterval = 500 * time.Millisecond

type mode int

const (
	modeAuthorizing mode = iota
	modeRedirect
	modeFailed
	modeList
	modeFilter
	modeDialog
)

type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogCreate
	dialogUpdate
)

// Deps is what the TUI needs from the rest of the program.
type Deps struct {
	Gate    auth.Gate
	PageURL string
	// NewPage builds the dashboards page once the user is known.
	NewPage func(types.Identity) *page.Page
	Toasts  *notify.Queue
	// OnLoaded is called after the first page load; may be nil.
	OnLoaded func()
	// OpenURL opens a dashboard link; the desktop browser when nil.
	OpenURL func(string) error
}

type model struct {
	ctx  context.Context
	deps Deps

	mode        mode
	redirectURL string
	err         error

	page     *page.Page
	identity types.Identity

	table      table.Model
	spinner    spinner.Model
	loading    bool
	submitting bool
	ticking    bool

	filterInputs []textinput.Model
	filterFocus  int

	dialog     dialogKind
	formFields []string
	formInputs []textinput.Model
	formFocus  int

	width  int
	height int
}

func newModel(ctx context.Context, deps Deps) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	t := table.New(
		table.WithColumns(tableColumns()),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	inputs := make([]textinput.Model, len(filter.Fields))
	for i, f := range filter.Fields {
		in := textinput.New()
		in.Placeholder = fieldLabel(string(f))
		in.Prompt = ""
		in.Width = 16
		inputs[i] = in
	}

	return model{
		ctx:          ctx,
		deps:         deps,
		mode:         modeAuthorizing,
		table:        t,
		spinner:      sp,
		filterInputs: inputs,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.authenticate())
}

func (m model) authenticate() tea.Cmd {
	gate, ctx, pageURL := m.deps.Gate, m.ctx, m.deps.PageURL
	return func() tea.Msg {
		res, err := gate.Authenticate(ctx, pageURL)
		return authDoneMsg{result: res, err: err}
	}
}

func (m model) load() tea.Cmd {
	p, ctx := m.page, m.ctx
	return func() tea.Msg {
		return loadedMsg{err: p.Load(ctx)}
	}
}

func (m model) fetch(req filter.Request) tea.Cmd {
	p, ctx := m.page, m.ctx
	return func() tea.Msg {
		return fetchDoneMsg{published: p.Fetch(ctx, req)}
	}
}

func (m model) refresh() tea.Cmd {
	p, ctx := m.page, m.ctx
	return func() tea.Msg {
		p.Refresh(ctx)
		return fetchDoneMsg{published: true}
	}
}

func (m model) submit(kind dialogKind) tea.Cmd {
	p, ctx := m.page, m.ctx
	return func() tea.Msg {
		var o form.Outcome
		if kind == dialogCreate {
			o = p.SubmitCreate(ctx)
		} else {
			o = p.SubmitUpdate(ctx)
		}
		return submitDoneMsg{dialog: kind, outcome: o}
	}
}

// startToastTicker keeps redrawing while toasts are visible.
func (m *model) startToastTicker() tea.Cmd {
	if m.ticking || m.deps.Toasts == nil || len(m.deps.Toasts.Active()) == 0 {
		return nil
	}
	m.ticking = true
	return tickToasts()
}

func tickToasts() tea.Cmd {
	return tea.Tick(toastTickInterval, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

func (m model) busy() bool {
	return m.mode == modeAuthorizing || m.loading || m.submitting
}

func (m *model) syncTable() {
	if m.page == nil {
		return
	}
	dashboards := m.page.Snapshot().Dashboards
	rows := make([]table.Row, 0, len(dashboards))
	for _, d := range dashboards {
		rows = append(rows, tableRow(d))
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m *model) applyFilterSuggestions() {
	opts := m.page.Options()
	for i, f := range filter.Fields {
		if s := opts.For(string(f)); len(s) > 0 {
			m.filterInputs[i].ShowSuggestions = true
			m.filterInputs[i].SetSuggestions(s)
		}
	}
}

func (m *model) focusFilter(i int) {
	n := len(m.filterInputs)
	m.filterFocus = (i%n + n) % n
	for j := range m.filterInputs {
		if j == m.filterFocus {
			m.filterInputs[j].Focus()
		} else {
			m.filterInputs[j].Blur()
		}
	}
}

func (m *model) blurFilters() {
	for j := range m.filterInputs {
		m.filterInputs[j].Blur()
	}
}

// openDialog builds the inputs from the draft the controller was opened with.
func (m *model) openDialog(kind dialogKind) {
	var get func(string) string
	switch kind {
	case dialogCreate:
		m.formFields = form.CreateFields
		draft := m.page.CreateDialog().State().Draft
		get = draft.Get
	case dialogUpdate:
		m.formFields = form.UpdateFields
		draft := m.page.UpdateDialog().State().Draft
		get = draft.Get
	default:
		return
	}

	opts := m.page.Options()
	m.formInputs = make([]textinput.Model, len(m.formFields))
	for i, f := range m.formFields {
		in := textinput.New()
		in.Prompt = ""
		in.Width = 40
		in.SetValue(get(f))
		if form.IsDateField(f) {
			in.Placeholder = "YYYY-MM-DD"
			in.CharLimit = 10
		}
		if s := opts.For(f); len(s) > 0 {
			in.ShowSuggestions = true
			in.SetSuggestions(s)
		}
		m.formInputs[i] = in
	}

	m.dialog = kind
	m.mode = modeDialog
	m.focusForm(0)
}

func (m *model) focusForm(i int) {
	n := len(m.formInputs)
	if n == 0 {
		return
	}
	m.formFocus = (i%n + n) % n
	for j := range m.formInputs {
		if j == m.formFocus {
			m.formInputs[j].Focus()
		} else {
			m.formInputs[j].Blur()
		}
	}
}

func (m *model) closeDialog() {
	m.dialog = dialogNone
	m.formInputs = nil
	m.formFields = nil
	m.mode = modeList
}

// dialogState returns the phase and inline error of the open dialog.
func (m model) dialogState() (form.Phase, string) {
	switch m.dialog {
	case dialogCreate:
		st := m.page.CreateDialog().State()
		return st.Phase, st.Error
	case dialogUpdate:
		st := m.page.UpdateDialog().State()
		return st.Phase, st.Error
	default:
		return form.PhaseClosed, ""
	}
}

func (m model) editDialog(field, value string) error {
	if m.dialog == dialogCreate {
		return m.page.CreateDialog().Edit(field, value)
	}
	return m.page.UpdateDialog().Edit(field, value)
}

func (m model) cancelDialog() bool {
	if m.dialog == dialogCreate {
		return m.page.CreateDialog().Cancel()
	}
	return m.page.UpdateDialog().Cancel()
}
