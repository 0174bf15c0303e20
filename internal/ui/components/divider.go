package components

import "strings"

const defaultDividerWidth = 40

// Divider renders a horizontal rule.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider that fills the context width.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider at its explicit width, else the
// context width, else a fixed default.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.MaxWidth
	}
	if width <= 0 {
		width = defaultDividerWidth
	}
	style := d.ComputeStyle(ctx.themeOrDefault())
	if len(d.appliers) == 0 {
		style = Foreground(PaletteNeutral)(style, ctx.themeOrDefault())
	}
	return style.Render(strings.Repeat(d.char, width))
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}
