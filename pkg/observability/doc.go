/*
Package observability provides tools for monitoring the coffee machine.

It turns the controller lifecycle hooks into Prometheus metrics and structured
log records, so hosts can audit which actions ran and when the machine changed
state.
*/
package observability
