// Package main wires the HTTP server for the task management service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Vedant634/flowdesk-project/config"
	"github.com/Vedant634/flowdesk-project/internal/advisor"
	"github.com/Vedant634/flowdesk-project/internal/entities"
	"github.com/Vedant634/flowdesk-project/internal/events"
	"github.com/Vedant634/flowdesk-project/internal/metrics"
	"github.com/Vedant634/flowdesk-project/internal/repository"
	"github.com/Vedant634/flowdesk-project/internal/transport/http/middleware"
	handlers_fiber "github.com/Vedant634/flowdesk-project/internal/transport/http/server/handlers-fiber"
	"github.com/Vedant634/flowdesk-project/internal/usecase"
	"github.com/Vedant634/flowdesk-project/pkg/logger"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	repo, err := repository.New(ctx, "postgres", log, cfg, m)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	var adv advisor.Advisor = advisor.Static{}
	if cfg.Advisor.BaseURL != "" {
		adv = advisor.NewClient(cfg.Advisor.BaseURL, cfg.Advisor.Timeout, log, m)
	}

	var sink events.Sink = events.Noop{}
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = client.Close() }()
		sink = events.NewRedisSink(client, cfg.Redis.EventsChannel)
	}

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, adv, sink, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log, m))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	serv.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	h := handlers_fiber.NewHandler(log, uc)
	h.RegisterRoutes(serv,
		middleware.Auth(cfg.Auth.JWTSecret),
		middleware.RequireRole(entities.RoleManager),
	)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
