package tracing

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const timelineTracerName = "github.com/KasumiMercury/primind-activity-timeline/internal/service/activity"

func TimelineTracer() trace.Tracer {
	return otel.Tracer(timelineTracerName)
}

func StartLayoutSpan(ctx context.Context, source string, taskCount int) (context.Context, trace.Span) {
	return TimelineTracer().Start(ctx, "timeline.layout",
		trace.WithAttributes(
			attribute.String("layout.source", source),
			attribute.Int("layout.task_count", taskCount),
		),
	)
}

func StartFetchSpan(ctx context.Context, source string, limit, offset int) (context.Context, trace.Span) {
	return TimelineTracer().Start(ctx, "timeline.fetch",
		trace.WithAttributes(
			attribute.String("fetch.source", source),
			attribute.Int("fetch.limit", limit),
			attribute.Int("fetch.offset", offset),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func StartCacheSpan(ctx context.Context, operation, key string) (context.Context, trace.Span) {
	return TimelineTracer().Start(ctx, "timeline.cache."+operation,
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", operation),
			attribute.String("db.key", key),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordLayoutResult(span trace.Span, groupCount, maxLanes int, from, to time.Time) {
	span.SetAttributes(
		attribute.Int("layout.group_count", groupCount),
		attribute.Int("layout.max_lanes", maxLanes),
		attribute.String("layout.window_from", from.Format(time.RFC3339)),
		attribute.String("layout.window_to", to.Format(time.RFC3339)),
	)
	span.SetStatus(codes.Ok, "")
}

func RecordFetchResult(span trace.Span, fetched, total int, err error) {
	span.SetAttributes(
		attribute.Int("fetch.count", fetched),
		attribute.Int("fetch.total", total),
	)
	RecordError(span, err)
}

func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

// InjectToHTTPRequest propagates the span context of ctx into req headers.
func InjectToHTTPRequest(ctx context.Context, req *http.Request) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}

// ExtractFromHTTPRequest returns ctx carrying the remote span context found
// in req headers.
func ExtractFromHTTPRequest(ctx context.Context, req *http.Request) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.HeaderCarrier(req.Header))
}
