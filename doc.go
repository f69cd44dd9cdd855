/*
Package latch is a small deterministic finite-state-machine library. Given a
set of states, a set of events and a table of (state, event) -> (state, action)
rules, a Machine tracks one current state and advances it in response to
events, running a caller-supplied action on every transition it applies.

# Concept

States and events are caller-defined enumerated types that implement the
Tagger capability: each value maps to a small dense non-negative integer, and
the type declares the highest tag it uses. The transition table is a flat 2-D
array indexed by those tags, so dispatch is a single array lookup rather than
a hash probe. The cost of that guarantee is a contract: tags of distinct
values must be distinct and must not exceed MaxTag. The library does not (and
cannot) validate the contract at run time.

Events with no rule from the current state are ignored. Not every event is
meaningful in every state, so "nothing happened" is the default semantics, not
an error. Registering the same (state, event) pair twice silently replaces
the earlier rule.

# Usage

	package main

	import (
		"fmt"

		"github.com/aretw0/latch"
	)

	type DoorState int

	const (
		Locked DoorState = iota
		Unlocked
	)

	func (s DoorState) Tag() int  { return int(s) }
	func (DoorState) MaxTag() int { return int(Unlocked) }

	type DoorEvent int

	const (
		Push DoorEvent = iota
		InsertCoin
	)

	func (e DoorEvent) Tag() int  { return int(e) }
	func (DoorEvent) MaxTag() int { return int(InsertCoin) }

	func main() {
		m := latch.New[DoorState, DoorEvent](Locked)
		m.AddTransition(Locked, InsertCoin, Unlocked, func(from DoorState, e DoorEvent) {
			fmt.Println("unlocked")
		})
		m.AddTransition(Unlocked, Push, Locked, func(from DoorState, e DoorEvent) {
			fmt.Println("locked")
		})

		m.OnEvent(InsertCoin) // prints "unlocked"
		m.OnEvent(Push)       // prints "locked"
		m.OnEvent(Push)       // no rule from Locked: ignored
	}

# Caller obligations

  - Tags must be honest: distinct values get distinct tags, and no tag may
    exceed the declared MaxTag. Violations index the table out of bounds.
  - Actions observe the outgoing state. The new state is committed only after
    the action returns, so an action must not re-enter OnEvent on the same
    Machine.
  - A Machine has no internal locking. Concurrent callers must serialize
    access themselves, or hand the Machine to a single goroutine and feed it
    events over a channel.
*/
package latch
