// Package blueprint loads machine definitions from YAML and compiles them
// into runnable latch machines. It exists for tooling and configuration-driven
// setups where the state and event vocabularies are only known at run time;
// each name becomes a Symbol carrying its own dense tag, so the compiled
// machine keeps the same array-indexed dispatch as a hand-written enum.
package blueprint
