package provider

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update refreshes the snapshot on ChangedMsg and handles dismiss keys.
// Host models forward every message to it.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ChangedMsg:
		m.records = m.queue.Records()
		return m, m.Listen()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.DismissNewest):
			if len(m.records) == 0 {
				return m, nil
			}
			newest := m.records[len(m.records)-1]
			m.log.WithFields(map[string]any{"toast_id": newest.ID}).Debug("dismiss newest toast")
			return m, m.Dismiss(newest.ID)
		case key.Matches(msg, m.keys.DismissAll):
			m.log.Debug("dismiss all toasts")
			return m, m.DismissAll()
		}

	case tea.QuitMsg:
		m.Close()
		return m, nil
	}

	return m, nil
}
