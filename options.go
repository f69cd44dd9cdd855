package latch

import "log/slog"

// Option defines a functional option for configuring a Machine.
type Option[S, E Tagger] func(*Machine[S, E])

// WithLogger sets a custom structured logger for the machine. The default
// logger discards everything; transitions and ignored events are recorded at
// Debug level.
func WithLogger[S, E Tagger](logger *slog.Logger) Option[S, E] {
	return func(m *Machine[S, E]) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks[S, E Tagger](hooks Hooks[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		m.hooks = hooks
	}
}
