package latch

import (
	"io"
	"log/slog"
)

// Tagger is the capability every state and event type must provide. It turns
// an enumerated value into a dense array index without a hashing scheme.
//
// Tags of distinct values must be distinct and must never exceed MaxTag, and
// MaxTag must be a constant for the type, answerable on the zero value. This
// is an unchecked precondition: the library trusts the implementation and a
// dishonest one indexes the transition table out of bounds.
type Tagger interface {
	// Tag returns the non-negative integer identifying this value.
	Tag() int
	// MaxTag returns the highest tag used by any value of the type.
	MaxTag() int
}

// Action is caller-supplied behavior run when a transition fires. It receives
// the outgoing state and the triggering event; the new state is committed
// only after the action returns, so Machine.Current still reports the old
// state during the call. Actions are side-effecting only and must not
// re-enter OnEvent on the same Machine.
type Action[S, E Tagger] func(from S, event E)

// Rule describes one registered transition.
type Rule[S, E Tagger] struct {
	From S
	On   E
	To   S
}

type cell[S, E Tagger] struct {
	rule   Rule[S, E]
	action Action[S, E]
	valid  bool
}

// Machine owns one current state and the transition table that drives it.
// A Machine is not safe for concurrent use; callers serialize access.
type Machine[S, E Tagger] struct {
	current S
	table   [][]cell[S, E]
	logger  *slog.Logger
	hooks   Hooks[S, E]
}

// New constructs a Machine whose current state is initial and whose table is
// sized from the MaxTag of both type parameters. The event axis is sized from
// the zero value of E, so E must answer MaxTag on its zero value (any
// value-receiver implementation does).
func New[S, E Tagger](initial S, opts ...Option[S, E]) *Machine[S, E] {
	var zero E
	return NewSized(initial, initial.MaxTag()+1, zero.MaxTag()+1, opts...)
}

// NewSized constructs a Machine with an explicit table size, for domains
// whose tag space is only known at run time (see pkg/blueprint). states and
// events are axis lengths, i.e. highest tag + 1. The table is allocated here
// once; nothing allocates after construction.
func NewSized[S, E Tagger](initial S, states, events int, opts ...Option[S, E]) *Machine[S, E] {
	m := &Machine[S, E]{
		current: initial,
		table:   make([][]cell[S, E], states),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for i := range m.table {
		m.table[i] = make([]cell[S, E], events)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddTransition registers the rule (from, on) -> (to, action). Registering
// the same (from, on) pair again silently replaces the earlier rule; no
// conflict is reported. A nil action is allowed and means the transition is
// applied without running anything.
func (m *Machine[S, E]) AddTransition(from S, on E, to S, action Action[S, E]) {
	m.table[from.Tag()][on.Tag()] = cell[S, E]{
		rule:   Rule[S, E]{From: from, On: on, To: to},
		action: action,
		valid:  true,
	}
}

// OnEvent advances the machine. If a rule is registered for (current, event)
// the action runs with the outgoing state, then the new state is committed
// and hooks fire. If no rule matches, the event is ignored: state unchanged,
// no action, no error.
func (m *Machine[S, E]) OnEvent(event E) {
	c := m.table[m.current.Tag()][event.Tag()]
	if !c.valid {
		m.logger.Debug("event ignored", "state", m.current, "event", event)
		if m.hooks.OnIgnored != nil {
			m.hooks.OnIgnored(m.current, event)
		}
		return
	}

	from := m.current
	if c.action != nil {
		c.action(from, event)
	}
	m.current = c.rule.To

	m.logger.Debug("transition applied", "from", from, "event", event, "to", m.current)
	if m.hooks.OnTransition != nil {
		m.hooks.OnTransition(from, event, m.current)
	}
}

// Current returns the state the machine is in.
func (m *Machine[S, E]) Current() S {
	return m.current
}

// Rules returns a snapshot of the registered transitions in table order,
// for introspection and graph export.
func (m *Machine[S, E]) Rules() []Rule[S, E] {
	var rules []Rule[S, E]
	for _, row := range m.table {
		for _, c := range row {
			if c.valid {
				rules = append(rules, c.rule)
			}
		}
	}
	return rules
}
