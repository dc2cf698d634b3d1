//go:build gcloud

package observability

import (
	"context"

	mexporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/metric"
	texporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/trace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func newSpanExporter(_ context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	var opts []texporter.Option
	if cfg.GCPProjectID != "" {
		opts = append(opts, texporter.WithProjectID(cfg.GCPProjectID))
	}
	return texporter.New(opts...)
}

func newMetricExporter(_ context.Context, cfg Config) (sdkmetric.Exporter, error) {
	var opts []mexporter.Option
	if cfg.GCPProjectID != "" {
		opts = append(opts, mexporter.WithProjectID(cfg.GCPProjectID))
	}
	return mexporter.New(opts...)
}
