package components

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisp-ui/wisp/internal/toast"
)

func TestToastRendersRecord(t *testing.T) {
	t.Parallel()

	rec := toast.Record{
		ID:          "7",
		Title:       "Saved",
		Description: "All changes stored",
		Variant:     toast.VariantSuccess,
		Action:      toast.Action{Label: "Undo", ID: "undo"},
		Duration:    5 * time.Second,
	}

	view := NewToast(rec, nil).View()
	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "Saved")
	assert.Contains(t, view, "All changes stored")
	assert.Contains(t, view, "[Undo]")
	assert.Contains(t, view, "╭", "toasts use the rounded border")
	assert.Equal(t, DefaultToastWidth, lipgloss.Width(view))
}

func TestToastDefaultIcons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		variant  toast.Variant
		expected string
	}{
		{toast.VariantDefault, "•"},
		{toast.VariantSuccess, "✓"},
		{toast.VariantError, "✗"},
		{toast.VariantWarning, "⚠"},
		{toast.VariantInfo, "ℹ"},
		{toast.Variant("bogus"), "•"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.variant), func(t *testing.T) {
			t.Parallel()
			view := NewToast(toast.Record{ID: "1", Title: "t", Variant: tt.variant}, nil).View()
			assert.Contains(t, view, tt.expected)
		})
	}
}

func TestToastCustomIcon(t *testing.T) {
	t.Parallel()

	view := NewToast(toast.Record{ID: "1", Title: "Deployed", Icon: "🚀"}, nil).View()
	assert.Contains(t, view, "🚀")
	assert.NotContains(t, view, "•")
}

func TestToastDescriptionOnly(t *testing.T) {
	t.Parallel()

	view := NewToast(toast.Record{ID: "1", Description: "Copied"}, nil).View()
	assert.Contains(t, view, "Copied")
}

func TestToastWidth(t *testing.T) {
	t.Parallel()

	rec := toast.Record{ID: "1", Title: "Hi"}

	assert.Equal(t, 30, lipgloss.Width(NewToast(rec, nil).WithWidth(30).View()))
	assert.Equal(t, DefaultToastWidth, lipgloss.Width(NewToast(rec, nil).WithWidth(2).View()), "tiny widths are ignored")
	assert.Equal(t, 24, lipgloss.Width(NewToast(rec, nil).ViewWithContext(DefaultContext().WithMaxWidth(24))))
}

func TestToastDismissInvokesCallback(t *testing.T) {
	t.Parallel()

	var got []string
	view := NewToast(toast.Record{ID: "42", Title: "bye"}, func(id string) {
		got = append(got, id)
	})

	view.Dismiss()
	view.Dismiss()
	require.Equal(t, []string{"42", "42"}, got)
	assert.Equal(t, "42", view.Record().ID)

	assert.NotPanics(t, func() { NewToast(toast.Record{ID: "1"}, nil).Dismiss() })
}
