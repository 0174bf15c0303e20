package provider

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/wisp-ui/wisp/internal/toast"
	"github.com/wisp-ui/wisp/internal/ui/components"
)

// View renders the visible toasts as one block. Top positions show the
// newest toast first; bottom positions show it last, nearest the edge.
func (m Model) View() string {
	records := m.Ordered()
	if len(records) == 0 {
		return ""
	}

	ctx := components.DefaultContext().WithTheme(m.theme)
	if m.width > 0 {
		ctx = ctx.WithMaxWidth(m.width)
	}

	views := make([]string, 0, len(records))
	for _, rec := range records {
		views = append(views, components.NewToast(rec, m.queue.Dismiss).
			WithWidth(m.cfg.Width).
			ViewWithContext(ctx))
	}

	align := lipgloss.Left
	if m.cfg.Position.Right() {
		align = lipgloss.Right
	}
	return lipgloss.JoinVertical(align, views...)
}

// Ordered returns the records in display order for the configured position.
func (m Model) Ordered() []toast.Record {
	out := m.Records()
	if m.cfg.Position.Top() {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// HelpView renders the dismiss key hints.
func (m Model) HelpView() string {
	return m.help.View(m.keys)
}

// Overlay draws the toast block over content, anchored to the configured
// corner of a width by height area. Non-positive dimensions fall back to the
// size of content.
func (m Model) Overlay(content string, width, height int) string {
	block := m.View()
	if block == "" {
		return content
	}

	base := strings.Split(content, "\n")
	if height <= 0 {
		height = len(base)
	}
	for len(base) < height {
		base = append(base, "")
	}
	if width <= 0 {
		width = lipgloss.Width(content)
	}

	lines := strings.Split(block, "\n")
	blockWidth := lipgloss.Width(block)
	if width < blockWidth {
		width = blockWidth
	}

	top := 0
	if !m.cfg.Position.Top() {
		top = max(len(base)-len(lines), 0)
	}

	for i, line := range lines {
		row := top + i
		if row >= len(base) {
			break
		}
		under := base[row]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}
		if m.cfg.Position.Right() {
			base[row] = ansi.Truncate(under, width-blockWidth, "") + line
		} else {
			base[row] = line + ansi.TruncateLeft(under, blockWidth, "")
		}
	}

	return strings.Join(base, "\n")
}
