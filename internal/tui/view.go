package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mtmgroup/dashboards-ui/internal/app/auth"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/filter"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/notify"
)

func (m model) View() string {
	switch m.mode {
	case modeAuthorizing:
		return fmt.Sprintf("\n  %s %s\n", m.spinner.View(), auth.PendingMessage)
	case modeRedirect:
		return "\n  " + styleTitle().Render("Sign-in required") + "\n\n" +
			"  Open the portal to sign in:\n\n  " + m.redirectURL + "\n\n" +
			styleMuted().Render("  q: quit") + "\n"
	case modeFailed:
		return "\n  " + styleError().Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" +
			styleMuted().Render("  q: quit") + "\n"
	case modeDialog:
		return lipgloss.JoinVertical(lipgloss.Left, m.viewDialog(), m.viewToasts())
	default:
		return lipgloss.JoinVertical(lipgloss.Left, m.viewList(), m.viewToasts())
	}
}

func (m model) viewHeader() string {
	title := styleTitle().Render("Dashboards")
	who := styleMuted().Render(m.identity.FullName())
	if m.identity.Designation != "" {
		who = styleMuted().Render(m.identity.FullName() + " · " + m.identity.Designation)
	}
	return title + "  " + who
}

func (m model) viewFilters() string {
	parts := make([]string, 0, len(filter.Fields))
	for i, f := range filter.Fields {
		focused := m.mode == modeFilter && i == m.filterFocus
		label := fieldLabel(string(f)) + ":"
		if focused {
			label = styleTitle().Render(label)
		}
		parts = append(parts, label+" "+m.filterInputs[i].View())
	}
	return strings.Join(parts, "  ")
}

func (m model) viewList() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewFilters())
	b.WriteString("\n")

	status := ""
	if m.page != nil {
		snap := m.page.Snapshot()
		switch {
		case m.loading:
			status = m.spinner.View() + " Loading..."
		case snap.Err != nil:
			status = styleError().Render("Failed to load dashboards. Press r to retry.")
		case snap.State.IsEmpty():
			status = styleMuted().Render(fmt.Sprintf("%d dashboards", len(snap.Dashboards)))
		default:
			status = styleMuted().Render(fmt.Sprintf("%d dashboards (filtered, x: clear)", len(snap.Dashboards)))
		}
	}
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	help := "/: filter  x: clear filters  r: refresh  n: add  e/enter: update  o: open link  q: quit"
	if m.mode == modeFilter {
		help = "tab: next field  enter: apply  esc: back"
	}
	b.WriteString(styleMuted().Render(help))
	return b.String()
}

func (m model) viewDialog() string {
	title := "Add Dashboard"
	if m.dialog == dialogUpdate {
		title = "Update Dashboard"
		if d := m.page.UpdateDialog().State().Draft; d.Topic != "" {
			title += ": " + d.Topic
		}
	}

	var b strings.Builder
	b.WriteString(styleTitle().Render(title))
	b.WriteString("\n\n")
	for i, f := range m.formFields {
		b.WriteString(styleLabel(i == m.formFocus).Render(fieldLabel(f)))
		b.WriteString(m.formInputs[i].View())
		b.WriteString("\n")
	}

	_, errMsg := m.dialogState()
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styleError().Render(errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString(m.spinner.View() + " Saving...")
	} else {
		b.WriteString(styleMuted().Render("tab: next field  ctrl+s: save  esc: cancel"))
	}
	return styleDialog().Render(b.String())
}

func (m model) viewToasts() string {
	if m.deps.Toasts == nil {
		return ""
	}
	active := m.deps.Toasts.Active()
	if len(active) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(active))
	for _, n := range active {
		color := colorInfo
		switch n.Level {
		case notify.LevelSuccess:
			color = colorSuccess
		case notify.LevelError:
			color = colorError
		}
		rendered = append(rendered, styleToast(color).Render(n.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
