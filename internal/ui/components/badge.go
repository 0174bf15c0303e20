package components

// Badge is a small status indicator.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSecondary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantError
	BadgeVariantInfo
)

// NewBadge creates a default badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgeVariantDefault,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the variant strategy of the context theme.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	theme := ctx.themeOrDefault()
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	return style.Render(b.text)
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers applies theme-based style modifiers before the variant strategy.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Variant returns the badge variant.
func (b *Badge) Variant() BadgeVariant {
	return b.variant
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSuccess)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantWarning)
}

// ErrorBadge creates an error badge.
func ErrorBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantError)
}

// InfoBadge creates an info badge.
func InfoBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantInfo)
}
