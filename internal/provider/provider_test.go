package provider

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisp-ui/wisp/internal/clock"
	"github.com/wisp-ui/wisp/internal/toast"
	wisperrors "github.com/wisp-ui/wisp/pkg/errors"
)

var epoch = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newTestProvider(t *testing.T, position Position) (Model, *toast.Queue, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake(epoch)
	q := toast.New(toast.WithClock(fake))
	m, err := New(q, Config{Position: position})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m, q, fake
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func ordered(m Model) []string {
	records := m.Ordered()
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.ID
	}
	return out
}

func TestNewRequiresQueue(t *testing.T) {
	t.Parallel()

	_, err := New(nil, DefaultConfig())
	var usageErr *wisperrors.UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Equal(t, "usage error: toast provider must be used with a toast queue", err.Error())

	assert.Panics(t, func() { MustNew(nil, DefaultConfig()) })
}

func TestNewRejectsUnknownPosition(t *testing.T) {
	t.Parallel()

	_, err := New(toast.New(), Config{Position: "middle"})
	require.Error(t, err)
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	q := toast.New()
	defer q.Close()

	m := MustNew(q, Config{})
	defer m.Close()
	assert.Equal(t, TopRight, m.Config().Position)
	assert.Equal(t, 40, m.Config().Width)
	assert.Same(t, q, m.Queue())
}

func TestListenDeliversChanges(t *testing.T) {
	t.Parallel()

	m, q, _ := newTestProvider(t, TopRight)
	q.Enqueue(toast.Options{ID: "a", Title: "Hello"})

	msg := m.Listen()()
	require.IsType(t, ChangedMsg{}, msg)

	m, cmd := m.Update(msg)
	require.NotNil(t, cmd, "listening continues after a change")
	require.Len(t, m.Records(), 1)
	assert.Equal(t, "a", m.Records()[0].ID)
}

func TestListenStopsAfterClose(t *testing.T) {
	t.Parallel()

	m, q, fake := newTestProvider(t, TopRight)
	q.Enqueue(toast.Options{Title: "pending"})
	require.Equal(t, 1, fake.Pending())

	m.Listen()() // drain the enqueue notification
	m.Close()
	m.Close()

	assert.Nil(t, m.Listen()())
	assert.True(t, q.Closed())
	assert.Zero(t, fake.Pending(), "closing the provider cancels queue timers")
}

func TestExpiryReachesProgram(t *testing.T) {
	t.Parallel()

	m, q, fake := newTestProvider(t, TopRight)
	q.Enqueue(toast.Options{ID: "a", Duration: toast.Duration(time.Second)})
	m, _ = m.Update(m.Listen()())
	require.Len(t, m.Records(), 1)

	fake.Advance(time.Second)
	m, _ = m.Update(m.Listen()())
	assert.Empty(t, m.Records())
}

func TestDisplayOrderFollowsPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		position Position
		expected []string
	}{
		{TopLeft, []string{"c", "b", "a"}},
		{TopRight, []string{"c", "b", "a"}},
		{BottomLeft, []string{"a", "b", "c"}},
		{BottomRight, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.position), func(t *testing.T) {
			t.Parallel()
			m, q, _ := newTestProvider(t, tt.position)
			for _, id := range []string{"a", "b", "c"} {
				q.Enqueue(toast.Options{ID: id, Title: "toast " + id})
			}
			m, _ = m.Update(ChangedMsg{})
			assert.Equal(t, tt.expected, ordered(m))

			view := m.View()
			first := strings.Index(view, "toast "+tt.expected[0])
			last := strings.Index(view, "toast "+tt.expected[2])
			assert.Less(t, first, last)
		})
	}
}

func TestViewEmptyQueue(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestProvider(t, TopRight)
	assert.Empty(t, m.View())
	assert.Equal(t, "content", m.Overlay("content", 0, 0))
}

func TestDismissNewestKey(t *testing.T) {
	t.Parallel()

	m, q, _ := newTestProvider(t, TopRight)
	q.Enqueue(toast.Options{ID: "old"})
	q.Enqueue(toast.Options{ID: "new"})
	m, _ = m.Update(ChangedMsg{})

	_, cmd := m.Update(keyMsg('x'))
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())

	records := q.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "old", records[0].ID)
}

func TestDismissNewestKeyWithNoToasts(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestProvider(t, TopRight)
	_, cmd := m.Update(keyMsg('x'))
	assert.Nil(t, cmd)
}

func TestDismissAllKey(t *testing.T) {
	t.Parallel()

	m, q, fake := newTestProvider(t, TopRight)
	q.Enqueue(toast.Options{ID: "a"})
	q.Enqueue(toast.Options{ID: "b"})

	_, cmd := m.Update(keyMsg('X'))
	require.NotNil(t, cmd)
	cmd()

	assert.Zero(t, q.Len())
	assert.Zero(t, fake.Pending())
}

func TestCommands(t *testing.T) {
	t.Parallel()

	m, q, _ := newTestProvider(t, TopRight)

	msg := m.Enqueue(toast.Options{Title: "cmd"})()
	enqueued, ok := msg.(EnqueuedMsg)
	require.True(t, ok)
	assert.Equal(t, "1", enqueued.ID)

	m.Dismiss(enqueued.ID)()
	assert.Zero(t, q.Len())

	q.Enqueue(toast.Options{})
	m.DismissAll()()
	assert.Zero(t, q.Len())
}

func TestWindowSizeLimitsToastWidth(t *testing.T) {
	t.Parallel()

	m, q, _ := newTestProvider(t, TopRight)
	q.Enqueue(toast.Options{Title: "narrow"})
	m, _ = m.Update(ChangedMsg{})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})

	assert.Equal(t, 30, lipgloss.Width(m.View()))
}

func TestOverlayCorners(t *testing.T) {
	t.Parallel()

	tests := []struct {
		position Position
		row      func(lines []string) string
		check    func(t *testing.T, line string)
	}{
		{TopRight, func(l []string) string { return l[0] }, func(t *testing.T, line string) {
			assert.True(t, strings.HasPrefix(line, "...................."))
			assert.True(t, strings.HasSuffix(line, "╮"))
		}},
		{TopLeft, func(l []string) string { return l[0] }, func(t *testing.T, line string) {
			assert.True(t, strings.HasPrefix(line, "╭"))
			assert.True(t, strings.HasSuffix(line, "...................."))
		}},
		{BottomLeft, func(l []string) string { return l[len(l)-1] }, func(t *testing.T, line string) {
			assert.True(t, strings.HasPrefix(line, "╰"))
		}},
		{BottomRight, func(l []string) string { return l[len(l)-1] }, func(t *testing.T, line string) {
			assert.True(t, strings.HasSuffix(line, "╯"))
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.position), func(t *testing.T) {
			t.Parallel()
			m, q, _ := newTestProvider(t, tt.position)
			q.Enqueue(toast.Options{Title: "Saved"})
			m, _ = m.Update(ChangedMsg{})

			rows := make([]string, 10)
			for i := range rows {
				rows[i] = strings.Repeat(".", 60)
			}
			out := m.Overlay(strings.Join(rows, "\n"), 60, 10)
			lines := strings.Split(out, "\n")
			require.Len(t, lines, 10)
			for _, line := range lines {
				assert.Equal(t, 60, lipgloss.Width(line))
			}
			tt.check(t, tt.row(lines))
		})
	}
}

func TestHelpView(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestProvider(t, TopRight)
	assert.Contains(t, m.HelpView(), "dismiss all")
}

func TestParsePosition(t *testing.T) {
	t.Parallel()

	p, err := ParsePosition("bottom-right")
	require.NoError(t, err)
	assert.False(t, p.Top())
	assert.True(t, p.Right())

	_, err = ParsePosition("center")
	assert.Error(t, err)
}
