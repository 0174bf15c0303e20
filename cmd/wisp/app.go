package main

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wisp-ui/wisp/internal/config"
	"github.com/wisp-ui/wisp/internal/events"
	"github.com/wisp-ui/wisp/internal/logger"
	"github.com/wisp-ui/wisp/internal/metrics"
	"github.com/wisp-ui/wisp/internal/provider"
	"github.com/wisp-ui/wisp/internal/toast"
	"github.com/wisp-ui/wisp/internal/ui/components"
)

// app bundles the services a command needs, built from flags and config.
type app struct {
	cfg       *config.Config
	log       *logger.Logger
	theme     components.Theme
	publisher *events.LoggingPublisher
	registry  *prometheus.Registry
	metrics   *metrics.Collector
}

func newApp(flags *rootFlags, logOut io.Writer) (*app, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: logOut, Component: "wisp"})
	if err != nil {
		return nil, err
	}

	theme, err := components.ThemeByName(cfg.Theme)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	return &app{
		cfg:       cfg,
		log:       log,
		theme:     theme,
		publisher: events.NewLoggingPublisher(log),
		registry:  registry,
		metrics:   metrics.New(metrics.WithRegistry(registry)),
	}, nil
}

// newQueue builds a queue from the toast settings with metrics and event
// publishing attached.
func (a *app) newQueue(ctx context.Context, extra ...toast.Option) *toast.Queue {
	opts := append(a.cfg.Toasts.QueueOptions(),
		toast.WithLogger(a.log.With("subsystem", "queue")),
		toast.WithObserver(a.metrics.Observe),
		toast.WithObserver(events.Observer(ctx, a.publisher)),
	)
	return toast.New(append(opts, extra...)...)
}

func (a *app) providerConfig() provider.Config {
	return provider.Config{
		Position: provider.Position(a.cfg.Toasts.Position),
		Width:    components.DefaultToastWidth,
	}
}

// logMetrics writes the gathered counter and gauge values at debug level.
func (a *app) logMetrics() {
	families, err := a.registry.Gather()
	if err != nil {
		a.log.Error(err, "failed to gather metrics")
		return
	}

	fields := make(map[string]any, len(families))
	for _, family := range families {
		var total float64
		for _, metric := range family.GetMetric() {
			if c := metric.GetCounter(); c != nil {
				total += c.GetValue()
			}
			if g := metric.GetGauge(); g != nil {
				total += g.GetValue()
			}
		}
		fields[family.GetName()] = total
	}
	a.log.WithFields(fields).Debug("toast metrics")
}
