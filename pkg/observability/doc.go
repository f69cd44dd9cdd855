/*
Package observability exports machine activity as Prometheus metrics.

A Collector plugs into a machine through latch.Hooks, so the core stays free
of any metrics dependency: transitions and ignored events are counted at the
hook seam, labelled by state and event names.
*/
package observability
