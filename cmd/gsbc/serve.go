package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/GlintPay/gsbc/api"
	"github.com/GlintPay/gsbc/build"
	"github.com/GlintPay/gsbc/config"
	"github.com/GlintPay/gsbc/health"
	"github.com/GlintPay/gsbc/reload"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
	"golang.org/x/sync/errgroup"
)

func newServeCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve resolved build configurations over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.serve(cmd.Context())
		},
	}
}

func (g *globals) serve(parent context.Context) error {
	appConfig := g.appConfig

	if _, err := build.ParseSelector(g.envConfig.DeployTarget); err != nil {
		return fmt.Errorf("DEPLOY_TARGET: %w", err)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	////////////////////////////////////////////

	source, err := reload.New(ctx, g.reloadResolver, time.Duration(appConfig.Site.RefreshRateMillis)*time.Millisecond)
	if err != nil {
		return fmt.Errorf("resolver init: %w", err)
	}
	defer source.Close()

	////////////////////////////////////////////

	traceShutdown, e := setupTracing(ctx, appConfig)
	if e != nil {
		return fmt.Errorf("trace setup failed: %w", e)
	}
	defer traceShutdown()

	metrics := api.NewMetrics(serviceName, prometheus.DefaultRegisterer)

	router, err := setupRouter(appConfig, g.envConfig.DeployTarget, source, metrics)
	if err != nil {
		return err
	}
	setupHealthCheck(router, source, g.envConfig.DeployTarget)

	////////////////////////////////////////////

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		port := fmt.Sprintf(":%d", appConfig.Server.Port)
		log.Info().Msgf("Listening on %s, default target [%s]", port, g.envConfig.DeployTarget)
		if err := http.ListenAndServe(port, router); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	return eg.Wait()
}

// reloadResolver re-reads the application configuration so the site URL can change without a restart
func (g *globals) reloadResolver() (*build.Resolver, error) {
	appConfig, err := config.Load(g.envConfig.ApplicationConfigFileYmlPath)
	if err != nil {
		return nil, err
	}
	return build.NewResolver(appConfig.Site.Url)
}

var emptyShutdown = func() {}

func setupTracing(ctx context.Context, config config.ApplicationConfiguration) (func(), error) {
	if !config.Tracing.Enabled {
		return emptyShutdown, nil
	}

	if config.Tracing.Endpoint == "" {
		return emptyShutdown, fmt.Errorf("missing tracing endpoint")
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		return emptyShutdown, fmt.Errorf("failed to create resource: %w", err)
	}

	traceExporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpoint(config.Tracing.Endpoint),
	)
	if err != nil {
		return emptyShutdown, fmt.Errorf("failed to create trace exporter %v", err)
	}

	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(config.Tracing.SamplerFraction)),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	log.Info().Msgf("OpenTelemetry export is enabled, to: %s", config.Tracing.Endpoint)

	return func() {
		if err = tracerProvider.Shutdown(ctx); err != nil {
			log.Error().Stack().Err(err).Msg("failed to shutdown TracerProvider")
		}
	}, nil
}

func setupRouter(config config.ApplicationConfiguration, defaultTarget string, source api.ResolverSource, metrics *api.Metrics) (*chi.Mux, error) {
	router := chi.NewRouter()
	router.Use(middleware.StripSlashes)

	routing := api.Routing{
		ServerName:   serviceName,
		ParentRouter: router,

		AppConfig:     config,
		DefaultTarget: defaultTarget,
		Source:        source,
		Metrics:       metrics,
	}

	var routeErr error
	router.Route("/", func(r chi.Router) {
		routeErr = routing.SetupFunctionalRoutes(r)
	})
	if routeErr != nil {
		return nil, fmt.Errorf("route setup failed: %w", routeErr)
	}

	if len(config.Prometheus.Path) > 0 {
		log.Info().Msgf("Registering metrics endpoint at: %s", config.Prometheus.Path)
		router.Handle(config.Prometheus.Path, promhttp.Handler())
	}

	return router, nil
}

func setupHealthCheck(router *chi.Mux, source api.ResolverSource, defaultTarget string) {
	healthChk := health.New(
		health.WithChiMux(router),
		health.WithReadinessCheck("resolver", func() error {
			_, err := source.Resolver().Resolve(defaultTarget)
			return err
		}),
	)
	healthChk.StartListening()
}
