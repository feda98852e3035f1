// Package metrics collects build and update metrics for the docs tools.
//
// Components receive a Recorder by injection and default to NoopRecorder, so
// nothing needs a nil check. When a metrics file is requested the commands
// swap in a PrometheusRecorder backed by a private registry and dump it with
// WriteTextfile once the operation finishes. The output follows the node
// exporter textfile collector format.
package metrics
