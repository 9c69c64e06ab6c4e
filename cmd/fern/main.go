package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/Ramsey-B/fern/config"
	"github.com/Ramsey-B/fern/pkg/events"
	fernkafka "github.com/Ramsey-B/fern/pkg/kafka"
	"github.com/Ramsey-B/fern/pkg/logger"
	"github.com/Ramsey-B/fern/pkg/matching"
	"github.com/Ramsey-B/fern/pkg/metrics"
	"github.com/Ramsey-B/fern/pkg/middleware"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/processor"
	"github.com/Ramsey-B/fern/pkg/routes/health"
	"github.com/Ramsey-B/fern/pkg/routes/match"
	"github.com/Ramsey-B/fern/pkg/startup"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/tracing/exporters"
)

var version = "dev"

func main() {
	// .env is optional, real environments set variables directly
	_ = godotenv.Load()

	var cfg config.Config
	if err := ectoenv.BindEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, syncLogs, err := logger.New(cfg.AppName, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer syncLogs()

	ctx := context.Background()

	shutdownTracing, err := tracing.Init(ctx, tracing.InitConfig{
		ServiceName: cfg.AppName,
		Enabled:     cfg.TracingEnabled,
		OTLP: exporters.OTLPConfig{
			Endpoint: cfg.TracingEndpoint,
			Protocol: cfg.TracingProtocol,
			Insecure: cfg.TracingInsecure,
			Timeout:  10 * time.Second,
		},
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize tracing")
	}
	defer func() {
		if err := shutdownTracing(ctx); err != nil {
			log.WithError(err).Error("Failed to flush traces")
		}
	}()

	metrics.RegisterMatchMetrics()

	engine := matching.NewEngine(log, engineConfig(cfg))

	var emitter *events.Emitter
	var consumer *fernkafka.Consumer
	if cfg.KafkaConsumerEnabled {
		producer := fernkafka.NewProducer(fernkafka.ProducerConfig{
			Brokers:      cfg.KafkaBrokers,
			Topic:        cfg.KafkaOutputTopic,
			BatchSize:    cfg.KafkaBatchSize,
			BatchTimeout: time.Duration(cfg.KafkaBatchTimeout) * time.Millisecond,
			RequiredAcks: cfg.KafkaRequiredAcks,
			Compression:  cfg.KafkaCompression,
		}, log)
		defer func() {
			if err := producer.Close(); err != nil {
				log.WithError(err).Error("Failed to close kafka producer")
			}
		}()

		emitter = events.NewEmitter(producer, log)
		proc := processor.NewProcessor(engine, emitter, log)
		consumer = fernkafka.NewConsumer(fernkafka.ConsumerConfig{
			Brokers:       cfg.KafkaBrokers,
			Topic:         cfg.KafkaInputTopic,
			ConsumerGroup: cfg.KafkaConsumerGroup,
		}, log, proc.HandleMessage)
	}

	container, err := ectoinject.NewDIDefaultContainer()
	if err != nil {
		log.WithError(err).Fatal("Failed to create DI container")
	}
	if err := ectoinject.RegisterInstance[ectologger.Logger](container, log); err != nil {
		log.WithError(err).Fatal("Failed to register logger")
	}
	if err := ectoinject.RegisterInstance[*matching.Engine](container, engine); err != nil {
		log.WithError(err).Fatal("Failed to register match engine")
	}

	checker := health.NewChecker(emitter, version)

	e := buildServer(cfg, log, checker)

	manager := startup.NewStartup(log, cfg.StartupMaxAttempts)
	if consumer != nil {
		manager.AddDependency(&startup.Dependency{
			Name: "kafka-consumer",
			StartFunc: func(ctx context.Context) error {
				return consumer.Start(ctx)
			},
			StopFunc: func(ctx context.Context) error {
				return consumer.Stop()
			},
		})
	}
	manager.AddDependency(&startup.Dependency{
		Name: "http-server",
		StartFunc: func(ctx context.Context) error {
			go func() {
				addr := fmt.Sprintf(":%d", cfg.Port)
				if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
					log.WithError(err).Fatal("HTTP server error")
				}
			}()
			return nil
		},
		StopFunc: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	if err := manager.Start(ctx); err != nil {
		log.WithError(err).Fatal("Startup failed")
	}
	checker.SetReady(true)
	log.WithFields(map[string]any{
		"app":     cfg.AppName,
		"version": version,
		"port":    cfg.Port,
	}).Info("Service started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	checker.SetReady(false)
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := manager.Stop(shutdownCtx); err != nil {
		log.WithError(err).Error("Shutdown error")
	}

	log.Info("Service stopped")
}

func buildServer(cfg config.Config, log ectologger.Logger, checker *health.Checker) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second
	e.Server.IdleTimeout = time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second
	e.Server.ReadHeaderTimeout = time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second
	e.Server.MaxHeaderBytes = cfg.MaxHeaderBytes

	e.HTTPErrorHandler = middleware.Error(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
	}))
	e.Use(otelecho.Middleware(cfg.AppName))
	e.Use(middleware.Context())
	e.Use(middleware.Logger(log))
	if cfg.MetricsEnabled {
		e.Use(metrics.Middleware())
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	checker.RegisterRoutes(e)
	match.Register(e.Group("/api/v1/match"))

	return e
}

func engineConfig(cfg config.Config) matching.Config {
	return matching.Config{
		Weights: models.Weights{
			Category:  cfg.WeightCategory,
			Location:  cfg.WeightLocation,
			TFIDF:     cfg.WeightTFIDF,
			Fuzzy:     cfg.WeightFuzzy,
			Attribute: cfg.WeightAttribute,
			Date:      cfg.WeightDate,
		},
		MinScore:       cfg.MinScore,
		TopK:           cfg.TopK,
		DecayRadiusKm:  cfg.DecayRadiusKm,
		MaxWindowDays:  cfg.MaxWindowDays,
		NeutralScore:   cfg.NeutralScore,
		SameGroupScore: cfg.SameGroupScore,
		FuzzyAlgorithm: cfg.FuzzyAlgorithm,
		Workers:        cfg.MatchWorkers,
	}
}
