package latch

// Hooks defines optional callbacks for machine observability. Unlike the
// transition Action, hooks fire after the new state has been committed, so
// they observe the machine in its settled post-event shape. Nil fields are
// skipped.
type Hooks[S, E Tagger] struct {
	// OnTransition fires after a transition has been applied.
	OnTransition func(from S, event E, to S)
	// OnIgnored fires when an event had no rule from the current state.
	OnIgnored func(state S, event E)
}
