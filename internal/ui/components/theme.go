package components

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/wisp-ui/wisp/internal/toast"
)

// Theme names accepted by ThemeByName.
const (
	ThemeDefault = "default"
	ThemeLight   = "light"
	ThemeDark    = "dark"
)

// VariantRegistry maps component variants to their styling strategies, so a
// theme decides how each variant looks.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable set of design tokens. Derive new themes by copying
// and calling Normalize rather than mutating a shared value.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Variants   *VariantRegistry
}

// Normalize fills unset spacing scales and rebuilds typography and variants
// from the current palette.
func (t Theme) Normalize() Theme {
	if t.Spacing.Padding == (spacingTable{}) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if t.Spacing.Margin == (spacingTable{}) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	t.Typography = defaultTypography(t.Palette)
	t.Variants = defaultVariants()
	return t
}

// ThemeNames lists the built-in themes.
func ThemeNames() []string {
	names := []string{ThemeDefault, ThemeLight, ThemeDark}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", ThemeDefault:
		return DefaultTheme(), nil
	case ThemeLight:
		return LightTheme(), nil
	case ThemeDark:
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// DefaultTheme returns the adaptive Wisp theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#5b5bd6", "#8e8cf0"),
			OnBase:   ac("#fdfcff", "#16152b"),
			Muted:    ac("#4746b8", "#3e3c8f"),
			Contrast: ac("#f5b041", "#f7c873"),
		},
		Secondary: ColourSet{
			Base:     ac("#0e9f9a", "#3cc8c2"),
			OnBase:   ac("#f2fffe", "#062a29"),
			Muted:    ac("#0b7f7b", "#1b5f5c"),
			Contrast: ac("#f06a8a", "#f58ea7"),
		},
		Surface: ColourSet{
			Base:     ac("#fbfbfd", "#17171c"),
			OnBase:   ac("#1c1c24", "#ececf1"),
			Muted:    ac("#e8e8ef", "#26262e"),
			Contrast: ac("#5b5bd6", "#8e8cf0"),
		},
		Success: ColourSet{
			Base:     ac("#2f9e5a", "#4cc47a"),
			OnBase:   ac("#f3fff7", "#06210f"),
			Muted:    ac("#237a45", "#1f5a36"),
			Contrast: ac("#fdfcff", "#fdfcff"),
		},
		Warning: ColourSet{
			Base:     ac("#d98b0b", "#f0b232"),
			OnBase:   ac("#2b1a00", "#2b1a00"),
			Muted:    ac("#b07008", "#7d5410"),
			Contrast: ac("#1c1c24", "#1c1c24"),
		},
		Danger: ColourSet{
			Base:     ac("#d6404e", "#f26d78"),
			OnBase:   ac("#fff5f6", "#2d070b"),
			Muted:    ac("#ad2f3b", "#7b2730"),
			Contrast: ac("#fdfcff", "#fdfcff"),
		},
		Info: ColourSet{
			Base:     ac("#2f7fd6", "#5fa6f0"),
			OnBase:   ac("#f4f9ff", "#071a2f"),
			Muted:    ac("#2465ad", "#23507d"),
			Contrast: ac("#fdfcff", "#fdfcff"),
		},
		Neutral: ColourSet{
			Base:     ac("#6b6b7b", "#9d9dad"),
			OnBase:   ac("#f6f6f9", "#15151b"),
			Muted:    ac("#52525f", "#3a3a45"),
			Contrast: ac("#fdfcff", "#fdfcff"),
		},
	}

	theme := Theme{
		Name:    ThemeDefault,
		Palette: palette,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
	}
	return theme.Normalize()
}

// DarkTheme pins surfaces to dark colours regardless of terminal background.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = ThemeDark
	theme.Palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#17171c", Dark: "#101014"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#ececf1", Dark: "#ececf1"},
		Muted:    lipgloss.AdaptiveColor{Light: "#26262e", Dark: "#1d1d24"},
		Contrast: lipgloss.AdaptiveColor{Light: "#8e8cf0", Dark: "#8e8cf0"},
	}
	theme.Palette.Neutral = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#3a3a45", Dark: "#3a3a45"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#dcdce4", Dark: "#dcdce4"},
		Muted:    lipgloss.AdaptiveColor{Light: "#26262e", Dark: "#26262e"},
		Contrast: lipgloss.AdaptiveColor{Light: "#fdfcff", Dark: "#fdfcff"},
	}
	return theme.Normalize()
}

// LightTheme pins surfaces to light colours regardless of terminal background.
func LightTheme() Theme {
	theme := DefaultTheme()
	theme.Name = ThemeLight
	theme.Palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#fbfbfd", Dark: "#fbfbfd"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#1c1c24", Dark: "#1c1c24"},
		Muted:    lipgloss.AdaptiveColor{Light: "#e8e8ef", Dark: "#e8e8ef"},
		Contrast: lipgloss.AdaptiveColor{Light: "#5b5bd6", Dark: "#5b5bd6"},
	}
	return theme.Normalize()
}

func defaultVariants() *VariantRegistry {
	registry := NewVariantRegistry()
	registerBadgeVariants(registry)
	registerAlertVariants(registry)
	registerToastVariants(registry)
	return registry
}

func registerBadgeVariants(registry *VariantRegistry) {
	slots := map[BadgeVariant]PaletteSlot{
		BadgeVariantDefault:   PaletteNeutral,
		BadgeVariantPrimary:   PalettePrimary,
		BadgeVariantSecondary: PaletteSecondary,
		BadgeVariantSuccess:   PaletteSuccess,
		BadgeVariantWarning:   PaletteWarning,
		BadgeVariantError:     PaletteDanger,
		BadgeVariantInfo:      PaletteInfo,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeSmall),
		))
	}
}

func registerAlertVariants(registry *VariantRegistry) {
	slots := map[AlertVariant]PaletteSlot{
		AlertVariantSuccess: PaletteSuccess,
		AlertVariantWarning: PaletteWarning,
		AlertVariantError:   PaletteDanger,
		AlertVariantInfo:    PaletteInfo,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Border(BorderVariantNormal),
			BorderColour(slot),
			PaddingX(SpacingSizeSmall),
		))
	}
}

// Toasts keep the surface background and carry the variant in the border and
// icon, so stacked toasts stay readable.
func registerToastVariants(registry *VariantRegistry) {
	slots := map[toast.Variant]PaletteSlot{
		toast.VariantDefault: PaletteNeutral,
		toast.VariantSuccess: PaletteSuccess,
		toast.VariantError:   PaletteDanger,
		toast.VariantWarning: PaletteWarning,
		toast.VariantInfo:    PaletteInfo,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(PaletteSurface),
			Border(BorderVariantRounded),
			BorderColour(slot),
			PaddingX(SpacingSizeSmall),
		))
	}
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Neutral.Base),
		Caption:  body.Faint(true),
		Code:     body.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: body.Bold(true),
	}
}

// BorderForVariant returns the border for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return lipgloss.Border{}
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin value for the given size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the typography preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Body
	}
}
