package httpapi

import (
	"context"

	"github.com/riskibarqy/hoops-feed/internal/platform/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("hoops-feed/internal/interfaces/httpapi")

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracing.Start(ctx, apiTracer, name, attrs...)
}
