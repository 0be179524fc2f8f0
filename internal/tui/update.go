package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/filter"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/form"
	"github.com/mtmgroup/dashboards-ui/logger"
	"go.uber.org/zap"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if h := msg.Height - 12; h > 3 {
			m.table.SetHeight(h)
		}
		m.table.SetWidth(msg.Width)
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case authDoneMsg:
		return m.onAuthDone(msg)

	case loadedMsg:
		m.loading = false
		m.applyFilterSuggestions()
		m.syncTable()
		if msg.err != nil {
			logger.Warn("initial dashboards load failed", zap.Error(msg.err))
		}
		if m.deps.OnLoaded != nil {
			m.deps.OnLoaded()
		}
		return m, nil

	case fetchDoneMsg:
		if m.page != nil {
			m.loading = m.page.Snapshot().Loading
		}
		m.syncTable()
		return m, nil

	case submitDoneMsg:
		m.submitting = false
		if phase, _ := m.dialogState(); phase == form.PhaseClosed {
			m.closeDialog()
		}
		m.syncTable()
		cmd := m.startToastTicker()
		return m, cmd

	case linkOpenedMsg:
		cmd := m.onLinkOpened(msg)
		return m, cmd

	case toastTickMsg:
		if m.deps.Toasts != nil && len(m.deps.Toasts.Active()) > 0 {
			return m, tickToasts()
		}
		m.ticking = false
		return m, nil

	case tea.KeyMsg:
		return m.onKey(msg)
	}
	return m, nil
}

func (m model) onAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.mode = modeFailed
		m.err = msg.err
		return m, nil
	}
	if !msg.result.Authorized() {
		m.mode = modeRedirect
		if msg.result.Redirect != nil {
			m.redirectURL = msg.result.Redirect.URL
		}
		return m, nil
	}

	m.identity = *msg.result.Identity
	m.page = m.deps.NewPage(m.identity)
	m.mode = modeList
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.load())
}

func (m model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case modeAuthorizing:
		return m, nil
	case modeRedirect, modeFailed:
		switch msg.String() {
		case "q", "esc", "enter":
			return m, tea.Quit
		}
		return m, nil
	case modeFilter:
		return m.onFilterKey(msg)
	case modeDialog:
		return m.onDialogKey(msg)
	default:
		return m.onListKey(msg)
	}
}

func (m model) onListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/", "f":
		m.mode = modeFilter
		m.table.Blur()
		m.focusFilter(len(filter.Fields) - 1)
		return m, nil
	case "x":
		req, ok := m.page.Dispatch(filter.ClearFilters{})
		if !ok {
			return m, nil
		}
		for i := range m.filterInputs {
			m.filterInputs[i].SetValue("")
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.fetch(req))
	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.refresh())
	case "n":
		m.page.OpenCreate()
		m.openDialog(dialogCreate)
		return m, nil
	case "o":
		cmd := m.openSelectedLink()
		return m, cmd
	case "e", "enter":
		row := m.table.SelectedRow()
		if len(row) == 0 {
			return m, nil
		}
		if err := m.page.OpenUpdate(types.DashboardID(row[0])); err != nil {
			logger.Warn("open update dialog", zap.Error(err))
			return m, nil
		}
		m.openDialog(dialogUpdate)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// onFilterKey edits the filter bar. Enter applies the values; only the
// request of the last changed field runs, the earlier ones are superseded.
func (m model) onFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.blurFilters()
		m.table.Focus()
		m.mode = modeList
		return m, nil
	case "tab", "down":
		m.focusFilter(m.filterFocus + 1)
		return m, nil
	case "shift+tab", "up":
		m.focusFilter(m.filterFocus - 1)
		return m, nil
	case "enter":
		var (
			last    filter.Request
			changed bool
		)
		for i, f := range filter.Fields {
			ev := filter.SetFilter{Field: f, Value: m.filterInputs[i].Value()}
			if req, ok := m.page.Dispatch(ev); ok {
				last, changed = req, true
			}
		}
		m.blurFilters()
		m.table.Focus()
		m.mode = modeList
		if !changed {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.fetch(last))
	}

	var cmd tea.Cmd
	m.filterInputs[m.filterFocus], cmd = m.filterInputs[m.filterFocus].Update(msg)
	return m, cmd
}

func (m model) onDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		if m.cancelDialog() {
			m.closeDialog()
		}
		return m, nil
	case "tab", "down":
		m.focusForm(m.formFocus + 1)
		return m, nil
	case "shift+tab", "up":
		m.focusForm(m.formFocus - 1)
		return m, nil
	case "enter":
		if m.formFocus < len(m.formInputs)-1 {
			m.focusForm(m.formFocus + 1)
			return m, nil
		}
		return m.startSubmit()
	case "ctrl+s":
		return m.startSubmit()
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	if err := m.editDialog(m.formFields[m.formFocus], m.formInputs[m.formFocus].Value()); err != nil {
		logger.Error("edit dialog field", zap.Error(err))
	}
	return m, cmd
}

func (m model) startSubmit() (tea.Model, tea.Cmd) {
	m.submitting = true
	return m, tea.Batch(m.spinner.Tick, m.submit(m.dialog))
}
