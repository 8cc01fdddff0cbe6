// Package telemetry records lifecycle metrics and spans for arbor sessions.
//
// Recorder wraps a set of Prometheus collectors created through promauto
// against a caller-supplied registry. Every Recorder method is safe to call on
// a nil *Recorder, so instrumentation points never need to check whether
// metrics are enabled.
//
// Metrics collected (default namespace "arbor"):
//   - arbor_nodes_materialized_total: widgets produced, by description kind
//   - arbor_teardowns_total: cleanup callbacks invoked
//   - arbor_sweeps_total: sweeps started at a root widget
//   - arbor_region_swaps_total: reactive region replacements
//   - arbor_region_swap_duration_seconds: time spent replacing a region
//   - arbor_reconciliations_total: reactive properties restored by the guard
//   - arbor_invalid_children_total: function values found as content
//   - arbor_active_mounts: trees currently mounted into a target
//
// Spans are started from the global OpenTelemetry tracer provider; configure
// it in main() before creating sessions.
package telemetry
