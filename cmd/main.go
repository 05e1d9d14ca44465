package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/user-directory/config"
	"github.com/oksasatya/user-directory/internal/container"
	"github.com/oksasatya/user-directory/internal/metrics"
	"github.com/oksasatya/user-directory/internal/router"
	"github.com/oksasatya/user-directory/pkg/helpers"
	"github.com/oksasatya/user-directory/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	// Redis (rate limiting); nil when REDIS_ADDR is empty
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.WithError(err).Warn("redis unreachable, rate limiting fails open")
		}
	}

	// Elasticsearch search mirror
	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Fatalf("failed to init elasticsearch client: %v", err)
	}

	// RabbitMQ domain events
	pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue)
	if err != nil {
		helpers.LogError(logger, "rabbitmq unavailable, events disabled", err, logrus.Fields{"queue": cfg.RabbitMQEventsQueue})
		pub = nil
	}
	defer pub.Close()

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRedis(rdb)
	container.SetJWT(helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL))
	container.SetES(es)
	container.SetRabbitPub(pub)

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		container.SetMetrics(reg, metrics.NewCollector(reg))
	}

	r := router.NewEngine()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
