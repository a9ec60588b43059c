package telemetry

import "go.opentelemetry.io/otel/trace"

// NewTracerFromProvider builds an OTelTracer bound to tp instead of the global provider.
func NewTracerFromProvider(tp trace.TracerProvider) *OTelTracer {
	return &OTelTracer{tracer: tp.Tracer(InstrumentationName)}
}
