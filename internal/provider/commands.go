package provider

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wisp-ui/wisp/internal/toast"
)

// Listen waits for the next queue change and delivers it as ChangedMsg.
// Update re-issues it after every ChangedMsg. It returns nil once the
// provider is closed.
func (m Model) Listen() tea.Cmd {
	b := m.bridge
	return func() tea.Msg {
		select {
		case <-b.changes:
			return ChangedMsg{}
		case <-b.done:
			return nil
		}
	}
}

// Enqueue adds a toast and reports its id as EnqueuedMsg.
func (m Model) Enqueue(opts toast.Options) tea.Cmd {
	q := m.queue
	return func() tea.Msg {
		return EnqueuedMsg{ID: q.Enqueue(opts)}
	}
}

// Dismiss removes the toast with id.
func (m Model) Dismiss(id string) tea.Cmd {
	q := m.queue
	return func() tea.Msg {
		q.Dismiss(id)
		return nil
	}
}

// DismissAll removes every toast.
func (m Model) DismissAll() tea.Cmd {
	q := m.queue
	return func() tea.Msg {
		q.DismissAll()
		return nil
	}
}
