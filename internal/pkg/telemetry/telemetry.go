// Package telemetry wires OpenTelemetry logs, metrics and traces to OTLP/gRPC
// exporters. Exporter endpoints come from the standard OTEL_EXPORTER_OTLP_*
// environment variables.
package telemetry

import (
	"context"
	"errors"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// NetworkKey tags every signal with the monitored network.
const NetworkKey = attribute.Key("valwatch.network")

var loggerProvider atomic.Pointer[sdklog.LoggerProvider]

// LoggerProvider returns the provider registered by Init, or nil.
func LoggerProvider() *sdklog.LoggerProvider {
	return loggerProvider.Load()
}

// ShutdownFunc flushes and stops the providers started by Init.
type ShutdownFunc func(ctx context.Context) error

// shutdowns joins the errors of every stop function, running all of them.
type shutdowns []func(context.Context) error

func (s shutdowns) run(ctx context.Context) error {
	errs := make([]error, 0, len(s))
	for _, stop := range s {
		errs = append(errs, stop(ctx))
	}
	return errors.Join(errs...)
}

func newResource(serviceName, network string) (*sdkresource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(serviceName)}
	if network != "" {
		attrs = append(attrs, NetworkKey.String(network))
	}

	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(semconv.SchemaURL, attrs...),
	)
}

func initMeterProvider(ctx context.Context, res *sdkresource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	return mp, nil
}

func initTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp, nil
}

func initLoggerProvider(ctx context.Context, res *sdkresource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	return sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	), nil
}

// Init registers global meter and tracer providers plus a logger provider
// exposed through LoggerProvider, all tagged with serviceName and network.
// It must run before logger.Init for log records to be exported. If a
// provider fails to start, the ones already started are stopped.
func Init(ctx context.Context, serviceName, network string) (ShutdownFunc, error) {
	res, err := newResource(serviceName, network)
	if err != nil {
		return nil, err
	}

	var started shutdowns
	fail := func(err error) (ShutdownFunc, error) {
		return nil, errors.Join(err, started.run(ctx))
	}

	mp, err := initMeterProvider(ctx, res)
	if err != nil {
		return fail(err)
	}
	started = append(started, mp.Shutdown)

	tp, err := initTracerProvider(ctx, res)
	if err != nil {
		return fail(err)
	}
	started = append(started, tp.Shutdown)

	lp, err := initLoggerProvider(ctx, res)
	if err != nil {
		return fail(err)
	}
	started = append(started, lp.Shutdown)
	loggerProvider.Store(lp)

	return started.run, nil
}
