// Package metrics provides observability primitives for the tlsalg
// negotiation library.
//
// # Overview
//
// The package offers:
//   - Counters for negotiation outcomes with Prometheus text export
//   - Distributed tracing support (OpenTelemetry-compatible interface)
//   - Structured logging with levels
//
// # Metrics Collection
//
// The Collector type aggregates counters from negotiation runs:
//
//	collector := metrics.NewCollector(metrics.Labels{
//		"instance": "node-1",
//	})
//
//	collector.NegotiationStarted()
//	collector.RecordSuitesOffered(len(suites))
//	collector.NegotiationFailed()
//
//	snap := collector.Snapshot()
//
// Export counters in Prometheus text format:
//
//	exporter := metrics.NewPrometheusExporter(collector, "tlsalg")
//	http.Handle("/metrics", exporter.Handler())
//
// # Tracing
//
// The package provides a Tracer interface compatible with OpenTelemetry:
//
//	// Use the recording tracer for testing
//	tracer := metrics.NewRecordingTracer()
//	metrics.SetTracer(tracer)
//
//	// OpenTelemetry adapter (uses global provider)
//	otelTracer := metrics.NewOTelTracer("tlsalg")
//	metrics.SetTracer(otelTracer)
//	// Build with -tags otel to enable the adapter.
//
//	// Start spans
//	ctx, end := metrics.StartSpan(ctx, metrics.SpanCandidateSuites)
//	defer end(nil) // or end(err) on error
//
// # Structured Logging
//
// The Logger provides structured logging with levels:
//
//	logger := metrics.NewLogger(
//		metrics.WithLevel(metrics.LevelInfo),
//		metrics.WithFormat(metrics.FormatJSON),
//	)
//
//	logger.Info("suites selected", metrics.Fields{
//		"count":   len(suites),
//		"version": "TLS 1.0",
//	})
//
//	// Child loggers
//	suiteLog := logger.Named("suite").With(metrics.Fields{"session": id})
//	suiteLog.Debug("sorting by priority")
package metrics
