package components

import "github.com/charmbracelet/lipgloss"

type AlertVariant int

const (
	AlertVariantSuccess AlertVariant = iota
	AlertVariantError
	AlertVariantWarning
	AlertVariantInfo
)

// Icon returns the glyph shown before an alert of this variant.
func (v AlertVariant) Icon() string {
	switch v {
	case AlertVariantSuccess:
		return "✓"
	case AlertVariantError:
		return "✗"
	case AlertVariantWarning:
		return "⚠"
	default:
		return "ℹ"
	}
}

// Alert is an inline, non-dismissable message block.
type Alert struct {
	BaseComponent
	message string
	title   string
	icon    string
	variant AlertVariant
}

// NewAlert creates an info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       AlertVariantInfo,
	}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	theme := ctx.themeOrDefault()

	icon := a.icon
	if icon == "" {
		icon = a.variant.Icon()
	}

	lines := make([]string, 0, 2)
	if a.title != "" {
		lines = append(lines, EmphasisText(a.title).ViewWithContext(ctx))
	}
	lines = append(lines, NewText(icon+" "+a.message).ViewWithContext(ctx))

	style := a.ComputeStyle(theme)
	if strategy := theme.Variants.Get(a.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	if ctx.MaxWidth > 0 {
		style = style.MaxWidth(ctx.MaxWidth)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithIcon overrides the variant icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a title line above the message.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithAppliers applies theme-based style modifiers.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}
