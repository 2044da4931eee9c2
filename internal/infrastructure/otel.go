package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"generationscli/internal/config"
	"generationscli/pkg/contracts"
)

// TracerName is the instrumentation scope of every span the report emits
const TracerName = "generationscli"

// TracingProviders holds the tracer and what must be flushed at exit
type TracingProviders struct {
	TracerProvider *sdktrace.TracerProvider
	Tracer         trace.Tracer
	output         io.Closer
	logger         *slog.Logger
}

// InitializeTracing sets up span export. With tracing disabled it returns
// a no-op tracer so callers never need to check.
func InitializeTracing(ctx context.Context, cfg config.TracingConfig, logger *slog.Logger) (*TracingProviders, error) {
	if logger == nil {
		logger = slog.Default()
	}
	providers := &TracingProviders{logger: logger}

	if !cfg.Enabled || cfg.Exporter == "none" {
		providers.Tracer = noop.NewTracerProvider().Tracer(TracerName)
		return providers, nil
	}

	var opts []stdouttrace.Option
	switch cfg.Exporter {
	case "stdout":
		opts = append(opts, stdouttrace.WithPrettyPrint())
	case "file":
		file, err := openLogFile(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open trace file: %w", err)
		}
		providers.output = file
		opts = append(opts, stdouttrace.WithWriter(file))
	default:
		return nil, fmt.Errorf("unsupported trace exporter: %s", cfg.Exporter)
	}

	exporter, err := stdouttrace.New(opts...)
	if err != nil {
		providers.closeOutput()
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(createResource()),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(cfg.SampleRatio)),
	)

	providers.TracerProvider = tp
	providers.Tracer = tp.Tracer(TracerName, trace.WithInstrumentationVersion(contracts.Version))
	otel.SetTracerProvider(tp)

	logger.InfoContext(ctx, "Tracing initialized",
		slog.String("exporter", cfg.Exporter),
		slog.Float64("sample_ratio", cfg.SampleRatio))

	return providers, nil
}

// createResource describes this process to the span exporter
func createResource() *resource.Resource {
	hostname, _ := os.Hostname()
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(config.AppName),
		semconv.ServiceVersion(contracts.Version),
		attribute.String("host.name", hostname),
	)
}

// Shutdown flushes pending spans and closes the trace file
func (p *TracingProviders) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var err error
	if p.TracerProvider != nil {
		if shutdownErr := p.TracerProvider.Shutdown(ctx); shutdownErr != nil {
			err = fmt.Errorf("failed to shutdown tracer provider: %w", shutdownErr)
		}
	}
	if closeErr := p.closeOutput(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func (p *TracingProviders) closeOutput() error {
	if p.output == nil {
		return nil
	}
	err := p.output.Close()
	p.output = nil
	return err
}
