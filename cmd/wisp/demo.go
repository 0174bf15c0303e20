package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wisp-ui/wisp/internal/events"
	"github.com/wisp-ui/wisp/internal/provider"
	"github.com/wisp-ui/wisp/internal/toast"
	"github.com/wisp-ui/wisp/internal/ui/components"
)

var errNoTerminal = errors.New("wisp demo needs an interactive terminal")

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

func newDemoCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive toast demo",
		Long: `Launch an interactive demo of the toast queue.

Keys: s success, e error, w warning, i info, p persistent toast,
x dismiss newest, X dismiss all, q quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !termIsTerminal(int(os.Stdout.Fd())) {
				return errNoTerminal
			}

			a, err := newApp(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			m, err := newDemoModel(cmd.Context(), a)
			if err != nil {
				return err
			}
			defer m.close()

			a.log.WithFields(map[string]any{
				"position": a.cfg.Toasts.Position,
				"max":      a.cfg.Toasts.Max,
				"theme":    a.theme.Name,
			}).Debug("starting demo")

			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
				return fmt.Errorf("demo failed: %w", err)
			}
			a.logMetrics()
			return nil
		},
	}

	return cmd
}

type demoKeys struct {
	Success    key.Binding
	Error      key.Binding
	Warning    key.Binding
	Info       key.Binding
	Persistent key.Binding
	Quit       key.Binding
}

func defaultDemoKeys() demoKeys {
	return demoKeys{
		Success:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "success")),
		Error:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "error")),
		Warning:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "warning")),
		Info:       key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Persistent: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "persistent")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k demoKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Success, k.Error, k.Warning, k.Info, k.Persistent, k.Quit}
}

func (k demoKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// demoModel hosts a toast provider over a static page.
type demoModel struct {
	app      *app
	toasts   provider.Model
	keys     demoKeys
	help     help.Model
	evicted  *atomic.Int64
	evictSub events.Subscription
	sent     int
	width    int
	height   int
}

func newDemoModel(ctx context.Context, a *app) (demoModel, error) {
	q := a.newQueue(ctx)
	toasts, err := provider.New(q, a.providerConfig(),
		provider.WithTheme(a.theme),
		provider.WithLogger(a.log.With("subsystem", "provider")),
	)
	if err != nil {
		q.Close()
		return demoModel{}, err
	}

	evicted := &atomic.Int64{}
	sub, err := a.publisher.Subscribe(events.TypeToastEvicted, func(context.Context, events.Event) error {
		evicted.Add(1)
		return nil
	})
	if err != nil {
		toasts.Close()
		return demoModel{}, err
	}

	return demoModel{
		app:      a,
		toasts:   toasts,
		keys:     defaultDemoKeys(),
		help:     help.New(),
		evicted:  evicted,
		evictSub: sub,
	}, nil
}

func (m demoModel) close() {
	m.evictSub.Unsubscribe()
	m.toasts.Close()
}

func (m demoModel) Init() tea.Cmd {
	return m.toasts.Init()
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Success):
			return m.send(toast.VariantSuccess, "Saved", "Your changes were stored.", nil)
		case key.Matches(msg, m.keys.Error):
			return m.send(toast.VariantError, "Upload failed", "The server rejected the file.", nil)
		case key.Matches(msg, m.keys.Warning):
			return m.send(toast.VariantWarning, "Low disk space", "Less than 1 GB remaining.", nil)
		case key.Matches(msg, m.keys.Info):
			return m.send(toast.VariantInfo, "Update available", "Version 2.0 is ready to install.", nil)
		case key.Matches(msg, m.keys.Persistent):
			return m.send(toast.VariantDefault, "Pinned", "Stays until dismissed.", toast.Persistent())
		}
	}

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.toasts, cmd = m.toasts.Update(msg)
	return m, cmd
}

func (m demoModel) send(variant toast.Variant, title, description string, duration *time.Duration) (tea.Model, tea.Cmd) {
	m.sent++
	opts := toast.Options{
		Title:       fmt.Sprintf("%s #%d", title, m.sent),
		Description: description,
		Variant:     variant,
		Duration:    duration,
	}
	if variant == toast.VariantError {
		opts.Action = toast.Action{Label: "Retry", ID: "retry"}
	}
	return m, m.toasts.Enqueue(opts)
}

func (m demoModel) View() string {
	ctx := components.DefaultContext().WithTheme(m.app.theme)
	if m.width > 0 {
		ctx = ctx.WithMaxWidth(m.width)
	}

	status := fmt.Sprintf("%d queued · max %d · %d evicted · %s",
		len(m.toasts.Records()), m.toasts.Queue().Max(), m.evicted.Load(), m.app.cfg.Toasts.Position)

	page := components.VStack(
		components.TitleText("Wisp toast demo"),
		components.NewDivider(),
		components.CaptionText(status),
		components.NewText(m.toasts.HelpView()),
		components.NewText(m.help.View(m.keys)),
	).WithGap(1).WithAppliers(components.Padding(components.SpacingSizeSmall)).ViewWithContext(ctx)

	return m.toasts.Overlay(page, m.width, m.height)
}
