package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wisp-ui/wisp/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Alignment positions children on the cross axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

func (a Alignment) position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		// Right for vertical stacks, bottom for horizontal ones; both are 1.0.
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Stack arranges children in one direction with an optional gap.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     Alignment
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children, direction: DirectionVertical}
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children, direction: DirectionHorizontal}
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context. Empty child views
// are skipped so they do not produce stray gaps.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := Render(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.themeOrDefault())
	if len(views) == 0 {
		return ""
	}

	if s.direction == DirectionHorizontal {
		if s.gap > 0 {
			views = interleave(views, strings.Repeat(" ", s.gap))
		}
		return style.Render(lipgloss.JoinHorizontal(s.align.position(), views...))
	}

	if s.gap > 0 {
		// A spacer of n-1 newlines is n blank rows.
		views = interleave(views, strings.Repeat("\n", s.gap-1))
	}
	return style.Render(lipgloss.JoinVertical(s.align.position(), views...))
}

func interleave(views []string, spacer string) []string {
	out := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			out = append(out, spacer)
		}
		out = append(out, view)
	}
	return out
}

// WithGap sets the spacing between children, in rows or columns.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// WithAlign sets cross-axis alignment.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// WithAppliers applies theme-based style modifiers to the whole stack.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Len returns the number of children.
func (s *Stack) Len() int {
	return len(s.children)
}
