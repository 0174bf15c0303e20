package components

import "github.com/charmbracelet/lipgloss"

// Text renders a single run of styled content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.themeOrDefault())
	if ctx.MaxWidth > 0 {
		style = style.MaxWidth(ctx.MaxWidth)
	}
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// TitleText creates title text using theme typography.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// EmphasisText creates emphasized text using theme typography.
func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantEmphasis))
}

// CaptionText creates de-emphasised secondary text.
func CaptionText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantCaption))
}

// CodeText creates code-styled text using theme typography.
func CodeText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantCode))
}
