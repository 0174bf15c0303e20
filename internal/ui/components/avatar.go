package components

import (
	"hash/fnv"
	"strings"
	"unicode"
)

// AvatarSize controls the horizontal padding around avatar initials.
type AvatarSize int

const (
	AvatarSizeSmall AvatarSize = iota
	AvatarSizeMedium
	AvatarSizeLarge
)

// Avatar renders up to two initials on a colour picked from the name, so the
// same name always gets the same colour.
type Avatar struct {
	BaseComponent
	name string
	size AvatarSize
	slot PaletteSlot
}

// NewAvatar creates a medium avatar for name.
func NewAvatar(name string) *Avatar {
	return &Avatar{
		BaseComponent: NewBaseComponent(),
		name:          name,
		size:          AvatarSizeMedium,
	}
}

// View renders the avatar.
func (a *Avatar) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the avatar with the context theme.
func (a *Avatar) ViewWithContext(ctx RenderContext) string {
	theme := ctx.themeOrDefault()
	slot := a.slot
	if slot == nil {
		slot = avatarSlot(a.name)
	}

	style := a.ComputeStyle(theme)
	style = Background(slot)(style, theme).Bold(true)
	switch a.size {
	case AvatarSizeSmall:
	case AvatarSizeLarge:
		style = style.Padding(1, 2)
	default:
		style = style.PaddingLeft(1).PaddingRight(1)
	}
	return style.Render(a.Initials())
}

// Initials returns the first letter of the first and last words of the name,
// upper-cased. Empty names render as "?".
func (a *Avatar) Initials() string {
	words := strings.FieldsFunc(a.name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_' || r == '.'
	})
	if len(words) == 0 {
		return "?"
	}

	initials := []rune{firstRune(words[0])}
	if len(words) > 1 {
		initials = append(initials, firstRune(words[len(words)-1]))
	}
	return strings.ToUpper(string(initials))
}

// WithSize sets the avatar size.
func (a *Avatar) WithSize(size AvatarSize) *Avatar {
	a.size = size
	return a
}

// WithSlot pins the avatar colour instead of deriving it from the name.
func (a *Avatar) WithSlot(slot PaletteSlot) *Avatar {
	a.slot = slot
	return a
}

// WithAppliers applies theme-based style modifiers.
func (a *Avatar) WithAppliers(appliers ...StyleFunc) *Avatar {
	a.AddAppliers(appliers...)
	return a
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}

var avatarSlots = []PaletteSlot{
	PalettePrimary,
	PaletteSecondary,
	PaletteSuccess,
	PaletteWarning,
	PaletteDanger,
	PaletteInfo,
}

func avatarSlot(name string) PaletteSlot {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(name))))
	return avatarSlots[h.Sum32()%uint32(len(avatarSlots))]
}
