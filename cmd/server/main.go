package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/JMirval/watchmapper-sub001/internal/config"
	"github.com/JMirval/watchmapper-sub001/internal/data"
	"github.com/JMirval/watchmapper-sub001/internal/handler"
	"github.com/JMirval/watchmapper-sub001/internal/middleware"
	"github.com/JMirval/watchmapper-sub001/internal/observability"
	"github.com/JMirval/watchmapper-sub001/internal/router"
	"github.com/JMirval/watchmapper-sub001/internal/service"
	"github.com/JMirval/watchmapper-sub001/pkg/logger"
)

func main() {
	cfgPath := os.Getenv("WATCHMAPPER_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/app.yaml"
	}
	cfg := config.MustLoad(cfgPath)
	serviceName := cfg.Observability.ServiceName
	if serviceName == "" {
		serviceName = "watchmapper-backend"
	}
	environment := cfg.Observability.Environment
	if environment == "" {
		environment = "local"
	}
	log, err := logger.New(cfg.Logging.Level, environment)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log = log.With(
		zap.String("service", serviceName),
		zap.String("env", environment),
	)
	log.Info("loaded config", zap.String("path", cfgPath))

	tracingCfg := observability.TracingConfig{
		Enabled:          cfg.Observability.Tracing.Enabled,
		OTLPGrpcEndpoint: cfg.Observability.Tracing.OTLPGrpcEndpoint,
		Insecure:         cfg.Observability.Tracing.Insecure,
		SampleRate:       cfg.Observability.Tracing.SampleRate,
	}
	resourceCfg := observability.ResourceConfig{
		ServiceName: serviceName,
		Environment: environment,
	}
	tracingShutdown, err := observability.SetupTracing(context.Background(), tracingCfg, resourceCfg)
	if err != nil {
		log.Fatal("tracing init failed", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracingShutdown(shutdownCtx); err != nil {
			log.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	db, err := data.NewMySQL(cfg.MySQL, log)
	if err != nil {
		log.Fatal("mysql init failed", zap.Error(err))
	}
	if cfg.Observability.Tracing.Enabled {
		if err := db.Use(tracing.NewPlugin()); err != nil {
			log.Warn("gorm tracing plugin init failed", zap.Error(err))
		}
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("mysql db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	log.Info("connected to mysql")

	redisClient := data.NewRedis(cfg.Redis)
	if err := data.Ping(context.Background(), redisClient); err != nil {
		log.Fatal("redis ping failed", zap.Error(err))
	}
	defer redisClient.Close()
	if cfg.Observability.Tracing.Enabled {
		if err := redisotel.InstrumentTracing(redisClient); err != nil {
			log.Warn("redis tracing init failed", zap.Error(err))
		}
	}
	log.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))

	cacheInvalidateWriter := data.NewKafkaWriter(cfg.Kafka, cfg.Kafka.CacheInvalidateTopic)
	cacheInvalidateReader := data.NewKafkaReader(cfg.Kafka, cfg.Kafka.CacheInvalidateTopic, cfg.Kafka.GroupID+"-shop-cache")
	defer cacheInvalidateWriter.Close()
	defer cacheInvalidateReader.Close()
	log.Info("configured kafka",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("cacheInvalidateTopic", cfg.Kafka.CacheInvalidateTopic),
		zap.String("groupID", cfg.Kafka.GroupID),
	)

	var discoveryMetrics *observability.DiscoveryMetrics
	var metricsRegistry *prometheus.Registry
	if cfg.Observability.Metrics.Enabled {
		metricsRegistry = observability.NewMetricsRegistry()
		discoveryMetrics = observability.NewDiscoveryMetrics(metricsRegistry, serviceName)
	}
	services := service.NewRegistry(service.RegistryDeps{
		DB:                    db,
		Redis:                 redisClient,
		CacheInvalidateWriter: cacheInvalidateWriter,
		CacheInvalidateReader: cacheInvalidateReader,
		SessionTTL:            cfg.Auth.SessionTTL(),
		BcryptCost:            cfg.Auth.BcryptCost,
		ShopCacheTTL:          cfg.App.ShopCacheTTL(),
		DiscoveryMetrics:      discoveryMetrics,
		Logger:                log,
	})

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	go services.CacheInvalidator.Run(consumerCtx)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.ErrorHandler(log))
	engine.Use(middleware.RequestIDMiddleware(cfg.Observability.Logging.RequestIDHeader))
	engine.Use(middleware.LocaleMiddleware())
	if cfg.Observability.Tracing.Enabled {
		engine.Use(otelgin.Middleware(serviceName))
	}
	if cfg.Observability.Metrics.Enabled {
		metrics := observability.NewHTTPMetrics(metricsRegistry, serviceName)
		engine.Use(metrics.Middleware())
		metricsPath := cfg.Observability.Metrics.Path
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		engine.GET(metricsPath, gin.WrapH(metrics.Handler()))
	}
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.SessionMiddleware(services.Auth, log))

	healthHandler := handler.NewHealthHandler(sqlDB, redisClient, cfg.Kafka.Brokers, log)
	engine.GET("/healthz", healthHandler.Healthz)
	engine.GET("/readyz", healthHandler.Readyz)

	router.RegisterRoutes(engine, services, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: engine,
	}
	go func() {
		log.Info("starting http server", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server run failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	stopConsumer()
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}
	log.Info("server exited")
}
