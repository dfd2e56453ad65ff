package interceptors

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type telemetryTransport struct {
	base         http.RoundTripper
	tracer       trace.Tracer
	requests     metric.Int64Counter
	authFailures metric.Int64Counter
}

// NewTelemetryTransport returns a round-tripper that records a client span
// and request counters for every outgoing call.
func NewTelemetryTransport(base http.RoundTripper, tp trace.TracerProvider, mp metric.MeterProvider) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	meter := mp.Meter("banking-console/client")
	requests, _ := meter.Int64Counter("client.requests",
		metric.WithDescription("Outgoing API requests by method and status."))
	authFailures, _ := meter.Int64Counter("client.auth_failures",
		metric.WithDescription("Requests rejected with 401 or 403."))
	return &telemetryTransport{
		base:         base,
		tracer:       tp.Tracer("banking-console/client"),
		requests:     requests,
		authFailures: authFailures,
	}
}

func (t *telemetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx, span := t.tracer.Start(req.Context(), req.Method+" "+req.URL.Path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.path", req.URL.Path),
		))
	defer span.End()

	resp, err := t.base.RoundTrip(req.WithContext(ctx))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		t.requests.Add(ctx, 1, metric.WithAttributes(
			attribute.String("method", req.Method),
			attribute.Int("status", 0),
		))
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, resp.Status)
	}
	t.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", req.Method),
		attribute.Int("status", resp.StatusCode),
	))
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		t.authFailures.Add(ctx, 1, metric.WithAttributes(
			attribute.Int("status", resp.StatusCode),
		))
	}
	return resp, nil
}
