package telemetry

import (
	"bytes"
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/go-powerbi/internal/platform/config"
)

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	p, err := Setup(context.Background(), config.TelemetryConfig{Enabled: false, Exporter: "bogus"})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if p.Metrics != nil {
		t.Error("Metrics != nil, want nil when disabled")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

// Setup replaces global providers, so these tests do not run in parallel.
func TestSetup_Exporters(t *testing.T) {
	ctx := context.Background()
	stdoutWriter = &bytes.Buffer{}

	for _, cfg := range []config.TelemetryConfig{
		{Enabled: true, Exporter: ExporterStdout, ServiceName: "pbi"},
		{Enabled: true, Exporter: ExporterOTLP, Endpoint: "http://localhost:4318", ServiceName: "pbi"},
	} {
		p, err := Setup(ctx, cfg)
		if err != nil {
			t.Fatalf("Setup(%s) error = %v", cfg.Exporter, err)
		}
		if p.Metrics == nil {
			t.Errorf("Setup(%s).Metrics = nil", cfg.Exporter)
		}
		if len(otel.GetTextMapPropagator().Fields()) == 0 {
			t.Errorf("Setup(%s) left no propagator fields", cfg.Exporter)
		}
		// No collector runs during tests, so an OTLP flush may fail.
		_ = p.Shutdown(ctx)
	}
}

func TestSetup_Errors(t *testing.T) {
	t.Parallel()

	for name, cfg := range map[string]config.TelemetryConfig{
		"unsupported exporter": {Enabled: true, Exporter: "zipkin"},
		"otlp without endpoint": {Enabled: true, Exporter: ExporterOTLP},
	} {
		if _, err := Setup(context.Background(), cfg); err == nil {
			t.Errorf("%s: Setup() error = nil, want error", name)
		}
	}
}

func TestCollector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		endpoint     string
		wantHost     string
		wantInsecure bool
	}{
		{"http://otel-collector:4318", "otel-collector:4318", true},
		{"https://otlp.example.com", "otlp.example.com", false},
		{"otel-collector:4318", "otel-collector:4318", true},
	}

	for _, tt := range tests {
		host, insecure, err := collector(tt.endpoint)
		if err != nil {
			t.Fatalf("collector(%q) error = %v", tt.endpoint, err)
		}
		if host != tt.wantHost || insecure != tt.wantInsecure {
			t.Errorf("collector(%q) = %q, %v, want %q, %v", tt.endpoint, host, insecure, tt.wantHost, tt.wantInsecure)
		}
	}
}

func TestMetrics_Record(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	m, err := NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "pbi")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	m.RecordRequest(ctx, "GET", "powerbi-api", 200, "success", 150*time.Millisecond)
	m.RecordRequest(ctx, "GET", "powerbi-api", 429, "throttled", time.Second)
	m.RecordExport(ctx, "ExportReport", 2048)
	m.RecordActivityEvents(ctx, "Get ActivityEvents", 3)
	m.RecordActivityEvents(ctx, "Get ActivityEvents", 2)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	sums := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if s, ok := md.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range s.DataPoints {
					sums[md.Name] += dp.Value
				}
			}
		}
	}

	want := map[string]int64{
		"http.client.request.total": 2,
		"powerbi.export.bytes":      2048,
		"powerbi.activity.events":   5,
	}
	for name, v := range want {
		if sums[name] != v {
			t.Errorf("%s = %d, want %d", name, sums[name], v)
		}
	}
}

func TestMetrics_ThrottledAttribute(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	m, err := NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "pbi")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	m.RecordRequest(ctx, "POST", "powerbi-api", 429, "throttled", time.Second)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			s, ok := md.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range s.DataPoints {
				if v, _ := dp.Attributes.Value(AttrResult); v.AsString() != "throttled" {
					t.Errorf("result attribute = %q, want throttled", v.AsString())
				}
			}
		}
	}
}

func TestMetrics_NilAndNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	var nilMetrics *Metrics
	nilMetrics.RecordRequest(ctx, "GET", "powerbi-api", 200, "success", time.Millisecond)
	nilMetrics.RecordExport(ctx, "ExportReport", 1)
	nilMetrics.RecordActivityEvents(ctx, "Get ActivityEvents", 1)

	m, err := NewMetrics(noop.NewMeterProvider(), "pbi")
	if err != nil {
		t.Fatalf("NewMetrics(noop) error = %v", err)
	}
	m.RecordExport(ctx, "ExportReport", 1024)
}
