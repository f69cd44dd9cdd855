package latch_test

import (
	"fmt"

	"github.com/aretw0/latch"
)

// ExampleMachine drives the classic coin-operated turnstile: inserting a
// coin unlocks it, pushing through locks it again, and anything else is
// silently ignored.
func ExampleMachine() {
	m := latch.New[TurnstileState, TurnstileEvent](Locked)

	m.AddTransition(Locked, InsertCoin, Unlocked, func(from TurnstileState, e TurnstileEvent) {
		fmt.Println("unlocked")
	})
	m.AddTransition(Unlocked, Push, Locked, func(from TurnstileState, e TurnstileEvent) {
		fmt.Println("locked")
	})

	m.OnEvent(Push) // locked turnstile ignores a push
	m.OnEvent(InsertCoin)
	m.OnEvent(Push)
	fmt.Println("final:", m.Current())

	// Output:
	// unlocked
	// locked
	// final: locked
}

// ExampleMachine_hooks shows observability hooks firing alongside the
// transition actions.
func ExampleMachine_hooks() {
	hooks := latch.Hooks[TurnstileState, TurnstileEvent]{
		OnTransition: func(from TurnstileState, e TurnstileEvent, to TurnstileState) {
			fmt.Printf("%s --%s--> %s\n", from, e, to)
		},
		OnIgnored: func(state TurnstileState, e TurnstileEvent) {
			fmt.Printf("%s ignored %s\n", state, e)
		},
	}

	m := latch.New(Locked, latch.WithHooks(hooks))
	m.AddTransition(Locked, InsertCoin, Unlocked, nil)

	m.OnEvent(Push)
	m.OnEvent(InsertCoin)

	// Output:
	// locked ignored push
	// locked --insert_coin--> unlocked
}
