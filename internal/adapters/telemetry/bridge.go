package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/docbuild/internal/core/ports"
)

// LogProcessor implements sdktrace.SpanProcessor by logging every finished span.
type LogProcessor struct {
	logger ports.Logger
}

// NewLogProcessor returns a new LogProcessor.
func NewLogProcessor(logger ports.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

// OnStart does nothing.
func (p *LogProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span's name with its duration, or its failure status.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	if p.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "failed"
		}
		p.logger.Warn(fmt.Sprintf("%s failed after %s: %s", s.Name(), elapsed, desc))
		return
	}
	p.logger.Info(fmt.Sprintf("%s finished in %s", s.Name(), elapsed))
}

// ForceFlush does nothing.
func (p *LogProcessor) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *LogProcessor) Shutdown(_ context.Context) error {
	return nil
}

// Setup registers a global tracer provider that reports spans to logger.
// The returned function shuts the provider down.
func Setup(logger ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogProcessor(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
