package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOperation   = attribute.Key("powerbi.operation")
)

// Metrics holds the instruments pbi records into. A nil *Metrics records
// nothing.
type Metrics struct {
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// ExportBytesTotal counts .pbix bytes written by report exports.
	ExportBytesTotal metric.Int64Counter

	// ActivityEventsTotal counts audit events received from the admin API.
	ActivityEventsTotal metric.Int64Counter
}

// NewMetrics creates the instruments on a meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)
	var (
		m   Metrics
		err error
	)

	if m.ClientRequestDuration, err = meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of Power BI API calls"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating http.client.request.duration: %w", err)
	}
	if m.ClientRequestTotal, err = meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Power BI API calls"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("creating http.client.request.total: %w", err)
	}
	if m.ExportBytesTotal, err = meter.Int64Counter("powerbi.export.bytes",
		metric.WithDescription("Bytes of exported report files"),
		metric.WithUnit("By"),
	); err != nil {
		return nil, fmt.Errorf("creating powerbi.export.bytes: %w", err)
	}
	if m.ActivityEventsTotal, err = meter.Int64Counter("powerbi.activity.events",
		metric.WithDescription("Audit events received from the activity events API"),
		metric.WithUnit("{event}"),
	); err != nil {
		return nil, fmt.Errorf("creating powerbi.activity.events: %w", err)
	}
	return &m, nil
}

// RecordRequest records one API call. result is "success", "error",
// "throttled" or "circuit_open".
func (m *Metrics) RecordRequest(ctx context.Context, method, peer string, status int, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPStatus.Int(status),
		AttrPeerService.String(peer),
		AttrResult.String(result),
	)
	m.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ClientRequestTotal.Add(ctx, 1, attrs)
}

// RecordExport adds n exported bytes for op.
func (m *Metrics) RecordExport(ctx context.Context, op string, n int64) {
	if m == nil {
		return
	}
	m.ExportBytesTotal.Add(ctx, n, metric.WithAttributes(AttrOperation.String(op)))
}

// RecordActivityEvents adds n received audit events for op.
func (m *Metrics) RecordActivityEvents(ctx context.Context, op string, n int) {
	if m == nil {
		return
	}
	m.ActivityEventsTotal.Add(ctx, int64(n), metric.WithAttributes(AttrOperation.String(op)))
}
