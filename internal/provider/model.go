// Package provider hosts a toast queue inside a Bubble Tea program. The
// Model subscribes to queue events, re-renders when they arrive, and exposes
// enqueue and dismiss as commands.
package provider

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wisp-ui/wisp/internal/logger"
	"github.com/wisp-ui/wisp/internal/toast"
	"github.com/wisp-ui/wisp/internal/ui/components"
	wisperrors "github.com/wisp-ui/wisp/pkg/errors"
)

// Position is the screen corner toasts are anchored to.
type Position string

const (
	TopLeft     Position = "top-left"
	TopRight    Position = "top-right"
	BottomLeft  Position = "bottom-left"
	BottomRight Position = "bottom-right"
)

// ParsePosition maps a position name to a Position.
func ParsePosition(name string) (Position, error) {
	switch p := Position(name); p {
	case TopLeft, TopRight, BottomLeft, BottomRight:
		return p, nil
	default:
		return "", fmt.Errorf("unknown toast position %q", name)
	}
}

// Top reports whether toasts stack from the top edge.
func (p Position) Top() bool {
	return p == TopLeft || p == TopRight
}

// Right reports whether toasts hug the right edge.
func (p Position) Right() bool {
	return p == TopRight || p == BottomRight
}

// Config controls where and how wide toasts are rendered.
type Config struct {
	Position Position
	// Width is the toast width in cells; zero uses components.DefaultToastWidth.
	Width int
}

// DefaultConfig anchors toasts to the top-right corner.
func DefaultConfig() Config {
	return Config{Position: TopRight, Width: components.DefaultToastWidth}
}

// Option customises a Model.
type Option func(*Model)

// WithTheme sets the theme toasts render with.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) {
		m.theme = theme
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

// WithLogger attaches a logger for provider debug output.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// bridge carries queue notifications into the Bubble Tea event loop. It is
// shared by every copy of a Model.
type bridge struct {
	changes     chan struct{}
	done        chan struct{}
	closeOnce   sync.Once
	unsubscribe func()
}

func (b *bridge) notify(toast.Event) {
	select {
	case b.changes <- struct{}{}:
	default:
	}
}

// Model is the Bubble Tea component owning a toast queue.
type Model struct {
	queue   *toast.Queue
	cfg     Config
	theme   components.Theme
	keys    KeyMap
	help    help.Model
	log     *logger.Logger
	bridge  *bridge
	records []toast.Record
	width   int
	height  int
}

// New creates a provider for q. A nil queue is a usage error: toast
// operations have nothing to act on without one.
func New(q *toast.Queue, cfg Config, opts ...Option) (Model, error) {
	if q == nil {
		return Model{}, wisperrors.NewUsageError("toast provider", "toast queue")
	}

	if cfg.Position == "" {
		cfg.Position = TopRight
	}
	if _, err := ParsePosition(string(cfg.Position)); err != nil {
		return Model{}, err
	}
	if cfg.Width <= 0 {
		cfg.Width = components.DefaultToastWidth
	}

	m := Model{
		queue: q,
		cfg:   cfg,
		theme: components.DefaultTheme(),
		keys:  DefaultKeyMap(),
		help:  help.New(),
		bridge: &bridge{
			changes: make(chan struct{}, 1),
			done:    make(chan struct{}),
		},
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.bridge.unsubscribe = q.Subscribe(m.bridge.notify)
	m.records = q.Records()
	return m, nil
}

// MustNew is New for callers that cannot recover from a missing queue.
func MustNew(q *toast.Queue, cfg Config, opts ...Option) Model {
	m, err := New(q, cfg, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Init starts listening for queue changes.
func (m Model) Init() tea.Cmd {
	return m.Listen()
}

// Queue returns the queue the provider renders.
func (m Model) Queue() *toast.Queue {
	return m.queue
}

// Config returns the provider configuration.
func (m Model) Config() Config {
	return m.cfg
}

// Records returns the toasts as of the last ChangedMsg, oldest first.
func (m Model) Records() []toast.Record {
	out := make([]toast.Record, len(m.records))
	copy(out, m.records)
	return out
}

// Close unsubscribes from the queue and tears it down, cancelling every
// pending timer. Pending Listen commands return nil. Close is idempotent.
func (m Model) Close() {
	if m.bridge == nil {
		return
	}
	m.bridge.closeOnce.Do(func() {
		m.bridge.unsubscribe()
		close(m.bridge.done)
		m.queue.Close()
		m.log.Debug("toast provider closed")
	})
}
