package monitoring

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/tsel-ticketmaster/tm-availability/pkg/applogger"
)

// OpenTelemetry owns the tracer provider for the process.
type OpenTelemetry struct {
	applicationName string
	environment     string
	gcpProjectID    string
	tracerProvider  *sdktrace.TracerProvider
}

func NewOpenTelemetry(applicationName, environment, gcpProjectID string) *OpenTelemetry {
	return &OpenTelemetry{
		applicationName: applicationName,
		environment:     environment,
		gcpProjectID:    gcpProjectID,
	}
}

// Start installs the global tracer provider. The exporter endpoint comes from
// the standard OTEL_EXPORTER_OTLP_* environment variables.
func (m *OpenTelemetry) Start(ctx context.Context) {
	logger := applogger.GetLogrus()

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		logger.WithError(err).Error("monitoring: failed to initialize trace exporter")
		return
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(m.applicationName),
			semconv.DeploymentEnvironment(m.environment),
			attribute.String("gcp.project_id", m.gcpProjectID),
		),
	)
	if err != nil {
		logger.WithError(err).Error("monitoring: failed to build resource")
		return
	}

	m.tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(m.tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

func (m *OpenTelemetry) Stop(ctx context.Context) {
	if m.tracerProvider == nil {
		return
	}

	if err := m.tracerProvider.Shutdown(ctx); err != nil {
		applogger.GetLogrus().WithError(err).Error("monitoring: failed to shut down tracer provider")
	}
}
