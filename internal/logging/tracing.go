package logging

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Field names understood by Cloud Logging
// https://docs.cloud.google.com/logging/docs/agent/logging/configuration#special-fields
const (
	cloudTraceKey        = "logging.googleapis.com/trace"
	cloudSpanIDKey       = "logging.googleapis.com/spanId"
	cloudTraceSampledKey = "logging.googleapis.com/trace_sampled"
)

// NewGoogleCloudTracingLogHandler wraps base so that records logged with an
// active span are linked to the trace in Cloud Logging.
//
// NOTE: Only the *Context slog methods carry the span
func NewGoogleCloudTracingLogHandler(base slog.Handler, project string) slog.Handler {
	return &cloudTraceHandler{base: base, tracePrefix: "projects/" + project + "/traces/"}
}

type cloudTraceHandler struct {
	base        slog.Handler
	tracePrefix string
}

func (h *cloudTraceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *cloudTraceHandler) Handle(ctx context.Context, r slog.Record) error {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return h.base.Handle(ctx, r)
	}

	r = r.Clone()
	r.AddAttrs(
		slog.String(cloudTraceKey, h.tracePrefix+sc.TraceID().String()),
		slog.String(cloudSpanIDKey, sc.SpanID().String()),
		slog.Bool(cloudTraceSampledKey, sc.IsSampled()),
	)
	return h.base.Handle(ctx, r)
}

func (h *cloudTraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &cloudTraceHandler{base: h.base.WithAttrs(attrs), tracePrefix: h.tracePrefix}
}

func (h *cloudTraceHandler) WithGroup(name string) slog.Handler {
	return &cloudTraceHandler{base: h.base.WithGroup(name), tracePrefix: h.tracePrefix}
}
