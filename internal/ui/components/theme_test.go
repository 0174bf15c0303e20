package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisp-ui/wisp/internal/toast"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	assert.Equal(t, ThemeDefault, theme.Name)
	assert.Equal(t, "#5b5bd6", theme.Palette.Primary.Base.Light)
	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Equal(t, 2, theme.Spacing.Padding[SpacingSizeMedium])
	assert.Equal(t, 1, theme.Spacing.Margin[SpacingSizeSmall])
	assert.True(t, theme.Typography.Title.GetBold(), "title typography should be bold")
}

func TestThemeVariantsRegistered(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	for _, v := range []BadgeVariant{BadgeVariantDefault, BadgeVariantPrimary, BadgeVariantSecondary, BadgeVariantSuccess, BadgeVariantWarning, BadgeVariantError, BadgeVariantInfo} {
		assert.NotNil(t, theme.Variants.Get(v), "badge variant %d", v)
	}
	for _, v := range []AlertVariant{AlertVariantSuccess, AlertVariantError, AlertVariantWarning, AlertVariantInfo} {
		assert.NotNil(t, theme.Variants.Get(v), "alert variant %d", v)
	}
	for _, v := range toast.Variants() {
		assert.NotNil(t, theme.Variants.Get(v), "toast variant %s", v)
	}
	assert.Nil(t, theme.Variants.Get("missing"))
}

func TestNilVariantRegistry(t *testing.T) {
	t.Parallel()

	var registry *VariantRegistry
	assert.Nil(t, registry.Get(BadgeVariantDefault))
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected string
		wantErr  bool
	}{
		{"empty selects default", "", false},
		{"default", ThemeDefault, false},
		{"light", ThemeLight, false},
		{"dark", ThemeDark, false},
		{"unknown", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			input := tt.expected
			if tt.name == "unknown" {
				input = "neon"
			}
			theme, err := ThemeByName(input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			want := tt.expected
			if want == "" {
				want = ThemeDefault
			}
			assert.Equal(t, want, theme.Name)
		})
	}
}

func TestDarkThemePinsSurface(t *testing.T) {
	t.Parallel()

	def := DefaultTheme()
	dark := DarkTheme()
	light := LightTheme()

	assert.NotEqual(t, def.Palette.Surface.Base.Light, dark.Palette.Surface.Base.Light)
	assert.Equal(t, dark.Palette.Surface.OnBase.Light, dark.Palette.Surface.OnBase.Dark)
	assert.Equal(t, light.Palette.Surface.Base.Light, light.Palette.Surface.Base.Dark)
}

func TestThemeNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{ThemeDark, ThemeDefault, ThemeLight}, ThemeNames())
}

func TestNormalizeFillsSpacing(t *testing.T) {
	t.Parallel()

	theme := Theme{Palette: DefaultTheme().Palette}.Normalize()
	assert.Equal(t, 4, PaddingValue(theme, SpacingSizeExtraLarge))
	assert.Equal(t, 2, MarginValue(theme, SpacingSize(99)), "out of range sizes fall back to medium")
	assert.NotNil(t, theme.Variants)
}

func TestBorderForVariant(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, lipgloss.NormalBorder(), BorderForVariant(theme, BorderVariantNormal))
	assert.Equal(t, lipgloss.DoubleBorder(), BorderForVariant(theme, BorderVariantDouble))
	assert.Equal(t, lipgloss.Border{}, BorderForVariant(theme, BorderVariantNone))
}

func TestTypographyStyle(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.True(t, TypographyStyle(theme, TypographyVariantEmphasis).GetBold())
	assert.True(t, TypographyStyle(theme, TypographyVariantCaption).GetFaint())
}

func TestNamedSlots(t *testing.T) {
	t.Parallel()

	slots := NamedSlots()
	require.Len(t, slots, 8)
	assert.Equal(t, "primary", slots[0].Name)
	assert.Equal(t, DefaultTheme().Palette.Neutral, slots[7].Slot(DefaultTheme().Palette))
}
