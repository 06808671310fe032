// Package telemetry provides Prometheus metrics and OpenTelemetry spans for
// the content-creator service.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/jonesrussell/north-cloud/content-creator/infrastructure/metrics"
	"github.com/jonesrussell/north-cloud/content-creator/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName = "content-creator"
	namespace   = "content_creator"
)

// Outcome labels for GenerationsTotal.
const (
	OutcomeSuccess = "success"
)

// Metrics holds the generation collectors.
type Metrics struct {
	GenerationsTotal *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	UpstreamFailures *prometheus.CounterVec
	PromptLength     *prometheus.HistogramVec
	TokenBudget      prometheus.Histogram
	ImagesGenerated  prometheus.Counter
}

// Provider wraps the tracer, the metrics and the registry serving /metrics.
type Provider struct {
	Tracer   trace.Tracer
	Metrics  *Metrics
	HTTP     *metrics.HTTPMetrics
	registry *prometheus.Registry
}

// NewProvider creates a provider with its own registry, so several providers
// can coexist in one process.
func NewProvider() *Provider {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Provider{
		Tracer:   otel.Tracer(serviceName),
		Metrics:  initMetrics(promauto.With(reg)),
		HTTP:     metrics.NewHTTPMetrics(reg, namespace),
		registry: reg,
	}
}

// Registry exposes the registry for tests.
func (p *Provider) Registry() *prometheus.Registry {
	return p.registry
}

// Handler returns the Prometheus handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

func initMetrics(factory promauto.Factory) *Metrics {
	return &Metrics{
		GenerationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Generation requests by outcome (success, validation, upstream)",
		}, []string{"outcome"}),
		UpstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of text and image endpoint calls",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
		}, []string{"endpoint", "provider"}),
		UpstreamFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_failures_total",
			Help:      "Failed text and image endpoint calls",
		}, []string{"endpoint", "provider"}),
		PromptLength: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prompt_length_chars",
			Help:      "Length of the instruction strings sent upstream",
			Buckets:   prometheus.ExponentialBuckets(64, 2, 8),
		}, []string{"endpoint"}),
		TokenBudget: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "token_budget",
			Help:      "max_tokens requested from the text endpoint",
			Buckets:   []float64{100, 200, 300, 450, 600, 900, 1200, 1500},
		}),
		ImagesGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "images_generated_total",
			Help:      "Images returned by the image endpoint",
		}),
	}
}

// RecordOutcome counts a finished generation.
func (p *Provider) RecordOutcome(_ context.Context, result domain.Result) {
	outcome := OutcomeSuccess
	if result.Failure != nil {
		outcome = string(result.Failure.Kind)
	}
	p.Metrics.GenerationsTotal.WithLabelValues(outcome).Inc()
}

// RecordUpstreamCall records one text or image call.
func (p *Provider) RecordUpstreamCall(_ context.Context, endpoint domain.Endpoint, provider string, duration time.Duration, err error) {
	p.Metrics.UpstreamDuration.WithLabelValues(string(endpoint), provider).Observe(duration.Seconds())
	if err != nil {
		p.Metrics.UpstreamFailures.WithLabelValues(string(endpoint), provider).Inc()
		return
	}
	if endpoint == domain.EndpointImage {
		p.Metrics.ImagesGenerated.Inc()
	}
}

// RecordPrompt records the size of an outgoing instruction.
func (p *Provider) RecordPrompt(_ context.Context, endpoint domain.Endpoint, length int) {
	p.Metrics.PromptLength.WithLabelValues(string(endpoint)).Observe(float64(length))
}

// RecordTokenBudget records the requested max_tokens.
func (p *Provider) RecordTokenBudget(budget int) {
	p.Metrics.TokenBudget.Observe(float64(budget))
}

// StartSpan starts a new trace span. The caller ends it.
//
//nolint:spancheck // caller ends the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
