package canopy

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/riordanpawley/canopy/alert"
	"github.com/riordanpawley/canopy/focus"
)

// consoleConfig holds mutable state during Console construction.
type consoleConfig struct {
	logger     *zap.Logger
	sched      alert.Scheduler
	surface    focus.Surface
	maxVisible int
	clock      func() time.Time
}

// Option configures a [Console] during construction.
//
// Options return an error if validation fails. Built-in options:
// [WithLogger], [WithScheduler], [WithSurface], [WithMaxVisibleAlerts],
// [WithClock].
type Option func(*consoleConfig) error

// WithLogger sets a custom logger for the console and its subsystems.
//
// If not specified, logging is disabled ([zap.NewNop]).
//
// Returns an error if the logger is nil.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *consoleConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithScheduler sets the timer scheduler used for alert auto-dismissal.
//
// Defaults to [host.NewSystemScheduler]. Pass [host.NewManualScheduler] in
// tests for deterministic time control.
//
// Returns an error if the scheduler is nil.
func WithScheduler(sched alert.Scheduler) Option {
	return func(cfg *consoleConfig) error {
		if sched == nil {
			return errors.New("scheduler cannot be nil")
		}
		cfg.sched = sched
		return nil
	}
}

// WithSurface sets the focus surface modals trap against.
//
// Defaults to a fresh [host.NewDocument]. Applications embedding canopy in
// their own focus model implement [focus.Surface] and pass it here.
//
// Returns an error if the surface is nil.
func WithSurface(surface focus.Surface) Option {
	return func(cfg *consoleConfig) error {
		if surface == nil {
			return errors.New("surface cannot be nil")
		}
		cfg.surface = surface
		return nil
	}
}

// WithMaxVisibleAlerts caps how many alerts are shown at once.
//
// Excess alerts wait in arrival order. Defaults to
// [alert.DefaultMaxVisible] (5).
//
// Returns an error if n is less than 1.
func WithMaxVisibleAlerts(n int) Option {
	return func(cfg *consoleConfig) error {
		if n < 1 {
			return errors.New("max visible alerts must be at least 1")
		}
		cfg.maxVisible = n
		return nil
	}
}

// WithClock overrides the timestamp source for alert promotion times.
// Intended for tests.
//
// Returns an error if now is nil.
func WithClock(now func() time.Time) Option {
	return func(cfg *consoleConfig) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		cfg.clock = now
		return nil
	}
}
