package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wisp-ui/wisp/internal/toast"
)

// Toast is the presentational view of a queued toast record. It never touches
// the queue; dismissal is handed back through the callback supplied by the
// owner.
type Toast struct {
	BaseComponent
	record    toast.Record
	onDismiss func(id string)
	width     int
}

// DefaultToastWidth is the rendered width of a toast in cells.
const DefaultToastWidth = 40

// NewToast creates a toast view for record. onDismiss may be nil.
func NewToast(record toast.Record, onDismiss func(id string)) *Toast {
	return &Toast{
		BaseComponent: NewBaseComponent(),
		record:        record,
		onDismiss:     onDismiss,
		width:         DefaultToastWidth,
	}
}

// Record returns the record being rendered.
func (t *Toast) Record() toast.Record {
	return t.record
}

// Dismiss invokes the dismiss callback with the record ID.
func (t *Toast) Dismiss() {
	if t.onDismiss != nil {
		t.onDismiss(t.record.ID)
	}
}

// WithWidth sets the outer width. Values below the border and padding
// overhead are ignored.
func (t *Toast) WithWidth(width int) *Toast {
	if width > 6 {
		t.width = width
	}
	return t
}

// WithAppliers applies theme-based style modifiers after the variant strategy.
func (t *Toast) WithAppliers(appliers ...StyleFunc) *Toast {
	t.AddAppliers(appliers...)
	return t
}

// View renders the toast with the default theme.
func (t *Toast) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the toast: icon and title on the first line, then
// the description and the action label.
func (t *Toast) ViewWithContext(ctx RenderContext) string {
	theme := ctx.themeOrDefault()

	width := t.width
	if ctx.MaxWidth > 0 && ctx.MaxWidth < width {
		width = ctx.MaxWidth
	}

	style := lipgloss.NewStyle()
	if strategy := theme.Variants.Get(t.variant()); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	style = t.applyOwn(style, theme)

	inner := width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	innerCtx := ctx.WithTheme(theme).WithMaxWidth(inner)

	icon := t.record.Icon
	if icon == "" {
		icon = ToastIcon(t.variant())
	}
	iconView := NewText(icon).WithAppliers(Foreground(toastSlot(t.variant()))).ViewWithContext(innerCtx)

	heading := t.record.Title
	if heading == "" {
		heading = t.record.Description
	}

	lines := []string{iconView + " " + EmphasisText(heading).ViewWithContext(innerCtx.WithMaxWidth(inner - 2))}
	if t.record.Title != "" && t.record.Description != "" {
		lines = append(lines, NewText(t.record.Description).ViewWithContext(innerCtx))
	}
	if t.record.Action.Label != "" {
		action := NewText("[" + t.record.Action.Label + "]").
			WithAppliers(Foreground(PalettePrimary), Typography(TypographyVariantEmphasis))
		lines = append(lines, action.ViewWithContext(innerCtx))
	}

	return style.Width(inner + style.GetHorizontalPadding()).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (t *Toast) applyOwn(style lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range t.appliers {
		style = fn(style, theme)
	}
	return style
}

func (t *Toast) variant() toast.Variant {
	if _, ok := toast.ParseVariant(string(t.record.Variant)); !ok {
		return toast.VariantDefault
	}
	return t.record.Variant
}

// ToastIcon returns the default glyph for a toast variant.
func ToastIcon(variant toast.Variant) string {
	switch variant {
	case toast.VariantSuccess:
		return "✓"
	case toast.VariantError:
		return "✗"
	case toast.VariantWarning:
		return "⚠"
	case toast.VariantInfo:
		return "ℹ"
	default:
		return "•"
	}
}

func toastSlot(variant toast.Variant) PaletteSlot {
	switch variant {
	case toast.VariantSuccess:
		return PaletteSuccess
	case toast.VariantError:
		return PaletteDanger
	case toast.VariantWarning:
		return PaletteWarning
	case toast.VariantInfo:
		return PaletteInfo
	default:
		return PaletteNeutral
	}
}
