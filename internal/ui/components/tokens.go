package components

import "github.com/charmbracelet/lipgloss"

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// Terminal cells are coarse, so the scale grows by single cells.
func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
		SpacingSizeExtraLarge: 4,
	}
}

// TypographyVariant represents a typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantCaption
	TypographyVariantCode
	TypographyVariantEmphasis
)

// TypographyScale contains the typography presets of a theme.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Caption  lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// BorderVariant selects one of the theme borders.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// ColourSet is a semantic colour group:
//
//   - Base: background or brand colour
//   - OnBase: text colour legible on Base
//   - Muted: quieter Base for borders and accents
//   - Contrast: accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// PaletteSlot selects a ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// NamedSlot pairs a palette slot with its display name.
type NamedSlot struct {
	Name string
	Slot PaletteSlot
}

// NamedSlots lists every palette slot in swatch display order.
func NamedSlots() []NamedSlot {
	return []NamedSlot{
		{"primary", PalettePrimary},
		{"secondary", PaletteSecondary},
		{"surface", PaletteSurface},
		{"success", PaletteSuccess},
		{"warning", PaletteWarning},
		{"danger", PaletteDanger},
		{"info", PaletteInfo},
		{"neutral", PaletteNeutral},
	}
}
