package blueprint

import (
	"fmt"

	"github.com/aretw0/latch"
)

// Action is the callback type bound to named actions in a definition.
type Action = latch.Action[Symbol, Symbol]

// Machine couples a compiled latch machine with its vocabularies so callers
// can drive it by name.
type Machine struct {
	fsm    *latch.Machine[Symbol, Symbol]
	states *Vocabulary
	events *Vocabulary
}

// Build compiles a definition into a runnable machine. actions maps the
// action names referenced by the definition to callbacks; every referenced
// name must be present. Duplicate (from, on) rows follow the core
// last-write-wins semantics. Options are forwarded to the underlying machine.
func Build(def *Definition, actions map[string]Action, opts ...latch.Option[Symbol, Symbol]) (*Machine, error) {
	states := NewVocabulary(def.States...)
	if states.Len() != len(def.States) {
		return nil, fmt.Errorf("duplicate state names in definition")
	}
	events := NewVocabulary(def.Events...)
	if events.Len() != len(def.Events) {
		return nil, fmt.Errorf("duplicate event names in definition")
	}

	initial, ok := states.Lookup(def.Initial)
	if !ok {
		return nil, fmt.Errorf("initial state %q is not declared", def.Initial)
	}

	fsm := latch.NewSized(initial, states.Len(), events.Len(), opts...)

	for _, rule := range def.Transitions {
		from, ok := states.Lookup(rule.From)
		if !ok {
			return nil, fmt.Errorf("transition from unknown state %q", rule.From)
		}
		on, ok := events.Lookup(rule.On)
		if !ok {
			return nil, fmt.Errorf("transition on unknown event %q", rule.On)
		}
		to, ok := states.Lookup(rule.To)
		if !ok {
			return nil, fmt.Errorf("transition to unknown state %q", rule.To)
		}

		var action Action
		if rule.Action != "" {
			action, ok = actions[rule.Action]
			if !ok {
				return nil, fmt.Errorf("transition %s+%s references unknown action %q", rule.From, rule.On, rule.Action)
			}
		}

		fsm.AddTransition(from, on, to, action)
	}

	return &Machine{fsm: fsm, states: states, events: events}, nil
}

// OnEvent dispatches an event by name. An unknown name is an error; a known
// event with no matching rule is the usual silent no-op.
func (m *Machine) OnEvent(name string) error {
	event, ok := m.events.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown event %q", name)
	}
	m.fsm.OnEvent(event)
	return nil
}

// Current returns the current state symbol.
func (m *Machine) Current() Symbol {
	return m.fsm.Current()
}

// FSM exposes the underlying machine for typed access.
func (m *Machine) FSM() *latch.Machine[Symbol, Symbol] {
	return m.fsm
}

// States returns the state vocabulary.
func (m *Machine) States() *Vocabulary { return m.states }

// Events returns the event vocabulary.
func (m *Machine) Events() *Vocabulary { return m.events }
