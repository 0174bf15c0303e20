package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wisp-ui/wisp/internal/ui"
)

// StyleStrategy turns a base style into a themed style.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a single theme-aware style transformation.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies StyleFuncs in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// BaseComponent carries the raw style and appliers shared by every component.
// Embed it in component structs.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the raw style with every applier run against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, theme)
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends style appliers. The slice is copied so components
// derived from the same base never share backing arrays.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}

// RenderContext carries the theme and available width into rendering.
type RenderContext struct {
	Theme Theme
	// MaxWidth limits rendered width in cells; zero or negative is unlimited.
	MaxWidth int
}

// DefaultContext returns a render context with the default theme and no
// width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of the context using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithMaxWidth returns a copy of the context limited to width cells.
func (r RenderContext) WithMaxWidth(width int) RenderContext {
	r.MaxWidth = width
	return r
}

// themeOrDefault guards against zero-valued contexts built by hand.
func (r RenderContext) themeOrDefault() Theme {
	if r.Theme.Variants == nil {
		return DefaultTheme()
	}
	return r.Theme
}

// ContextualRenderable is a component that renders against a RenderContext.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render renders r with ctx when it supports contexts.
func Render(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

// Background applies a slot's base colour with its matching foreground.
//
//	badge := NewBadge("beta").WithAppliers(Background(PaletteSecondary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a slot's base colour to text only.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if variant == BorderVariantNone {
			return base.BorderStyle(lipgloss.Border{})
		}
		return base.Border(BorderForVariant(theme, variant))
	}
}

// BorderColour tints the border with a slot's base colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(PaddingValue(theme, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(MarginValue(theme, size))
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := MarginValue(theme, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography layers a typography preset under the current style.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// Width fixes the rendered width in cells.
func Width(cells int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Width(cells)
	}
}
