/*
Package observability provides Prometheus instrumentation for the xdomcp server.

It records per-tool invocation counts by outcome and invocation duration.
Metrics are exported on the SSE transport's /metrics endpoint; the stdio
transport records them but has no place to serve them.
*/
package observability
