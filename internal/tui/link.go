package tui

import (
	"errors"
	"io"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/notify"
	"github.com/mtmgroup/dashboards-ui/logger"
	"go.uber.org/zap"
)

const (
	msgNoLink         = "This dashboard has no link"
	msgOpeningLink    = "Opening "
	msgOpenLinkFailed = "Could not open a browser, link: "
)

type linkOpenedMsg struct {
	link string
	err  error
}

// openBrowser hands u to the desktop URL handler.
func openBrowser(u string) error {
	u = strings.TrimSpace(u)
	if u == "" {
		return errors.New("empty url")
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", u)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", u)
	default:
		cmd = exec.Command("xdg-open", u)
	}
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Wait()
}

func (m *model) toast(n notify.Notification) tea.Cmd {
	if m.deps.Toasts == nil {
		return nil
	}
	m.deps.Toasts.Notify(n)
	return m.startToastTicker()
}

// openSelectedLink opens the link of the highlighted dashboard.
func (m *model) openSelectedLink() tea.Cmd {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return nil
	}
	d, ok := m.page.Snapshot().Dashboards.Find(types.DashboardID(row[0]))
	if !ok {
		return nil
	}

	link := strings.TrimSpace(d.Link)
	if link == "" {
		return m.toast(notify.Error(msgNoLink))
	}

	open := m.deps.OpenURL
	if open == nil {
		open = openBrowser
	}
	return tea.Batch(
		m.toast(notify.Info(msgOpeningLink+link)),
		func() tea.Msg {
			return linkOpenedMsg{link: link, err: open(link)}
		},
	)
}

func (m *model) onLinkOpened(msg linkOpenedMsg) tea.Cmd {
	if msg.err == nil {
		return nil
	}
	logger.Warn("open dashboard link", zap.String("link", msg.link), zap.Error(msg.err))
	return m.toast(notify.Error(msgOpenLinkFailed + msg.link))
}
