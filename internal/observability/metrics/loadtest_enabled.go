//go:build loadtest

package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/baggage"
)

// appendLoadtestLabels tags measurements with the load test run carried in
// the request baggage.
func appendLoadtestLabels(ctx context.Context, attrs []attribute.KeyValue) []attribute.KeyValue {
	if run := baggage.FromContext(ctx).Member("loadtest.run_id").Value(); run != "" {
		attrs = append(attrs, attribute.String("loadtest.run_id", run))
	}
	return attrs
}
