package config

import (
	"time"

	"github.com/wisp-ui/wisp/internal/toast"
)

// Toast positions accepted by ToastsConfig.Position.
const (
	PositionTopLeft     = "top-left"
	PositionTopRight    = "top-right"
	PositionBottomLeft  = "bottom-left"
	PositionBottomRight = "bottom-right"
)

// ID strategies accepted by ToastsConfig.IDStrategy.
const (
	IDStrategyCounter = "counter"
	IDStrategyUUID    = "uuid"
)

// CurrentVersion is the config schema version written by Default.
const CurrentVersion = "1.0"

// Config represents the root of a Wisp configuration document.
type Config struct {
	Version  string       `yaml:"version" validate:"required,semver"`
	Theme    string       `yaml:"theme" validate:"omitempty,oneof=default light dark"`
	LogLevel string       `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Toasts   ToastsConfig `yaml:"toasts"`
}

// ToastsConfig configures the toast queue and its provider.
type ToastsConfig struct {
	Position   string `yaml:"position" validate:"required,position"`
	Max        int    `yaml:"max" validate:"min=1,max=100"`
	DurationMS int    `yaml:"duration_ms" validate:"min=0"`
	IDStrategy string `yaml:"id_strategy" validate:"omitempty,oneof=counter uuid"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Version:  CurrentVersion,
		Theme:    "default",
		LogLevel: "info",
		Toasts: ToastsConfig{
			Position:   PositionTopRight,
			Max:        toast.DefaultMax,
			DurationMS: int(toast.DefaultDuration / time.Millisecond),
			IDStrategy: IDStrategyCounter,
		},
	}
}

// Duration returns the default toast lifetime. Zero means toasts persist
// until dismissed.
func (t ToastsConfig) Duration() time.Duration {
	return time.Duration(t.DurationMS) * time.Millisecond
}

// IDGenerator returns the generator selected by IDStrategy.
func (t ToastsConfig) IDGenerator() toast.IDGenerator {
	if t.IDStrategy == IDStrategyUUID {
		return toast.UUIDs()
	}
	return toast.CounterIDs()
}

// QueueOptions translates the toast settings into queue options.
func (t ToastsConfig) QueueOptions() []toast.Option {
	return []toast.Option{
		toast.WithMax(t.Max),
		toast.WithDefaultDuration(t.Duration()),
		toast.WithIDGenerator(t.IDGenerator()),
	}
}
