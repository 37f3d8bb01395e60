package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"FredStoreAPI/external/kafka"
	"FredStoreAPI/external/rabbitmq"
	"FredStoreAPI/internal/config"
	"FredStoreAPI/internal/db"
	"FredStoreAPI/internal/repository"
	"FredStoreAPI/internal/seed"
	"FredStoreAPI/internal/services"

	"go.uber.org/zap"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	if cfg.Development() {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = level
	return zcfg.Build()
}

// newEventPublisher falls back to NopPublisher when the broker cannot be
// reached.
func newEventPublisher(cfg *config.Config, logger *zap.Logger) services.EventPublisher {
	switch cfg.EventBroker {
	case "rabbitmq":
		pub, err := rabbitmq.NewOrderEventPublisher(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			logger.Error("rabbitmq unavailable, order events disabled", zap.Error(err))
			return services.NopPublisher{}
		}
		logger.Info("publishing order events to rabbitmq", zap.String("queue", cfg.AMQPQueue))
		return pub
	case "kafka":
		logger.Info("publishing order events to kafka",
			zap.Strings("brokers", cfg.Brokers()),
			zap.String("topic", cfg.KafkaTopic))
		return kafka.NewOrderEventPublisher(cfg.Brokers(), cfg.KafkaTopic, cfg.PublishTimeout)
	case "", "none":
		return services.NopPublisher{}
	default:
		logger.Warn("unknown EVENT_BROKER, order events disabled", zap.String("event_broker", cfg.EventBroker))
		return services.NopPublisher{}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config: ", err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal("build logger: ", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	defer pool.Close()

	if err := db.InitSchema(ctx, pool); err != nil {
		logger.Fatal("create schema", zap.Error(err))
	}
	if cfg.SeedOnStart {
		// failures are logged and rolled back by the seeder; serving goes on
		_ = seed.New(pool, logger, cfg.SeedValue).Run(ctx)
	}

	// ======================
	// EXTERNALS
	// ======================
	events := newEventPublisher(cfg, logger)
	defer events.Close()

	// ======================
	// REPOSITORIES
	// ======================
	productRepo := repository.NewProductRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	subscriptionRepo := repository.NewSubscriptionRepository(pool)

	// ======================
	// SERVICES
	// ======================
	productSvc := services.NewProductService(productRepo)
	userSvc := services.NewUserService(userRepo, orderRepo, subscriptionRepo)
	orderSvc := services.NewOrderService(orderRepo, events, logger)
	subscriptionSvc := services.NewSubscriptionService(subscriptionRepo)

	// ======================
	// ECHO
	// ======================
	e := newServer(logger, pool, handlers{
		products:      productSvc,
		users:         userSvc,
		orders:        orderSvc,
		subscriptions: subscriptionSvc,
	})

	// ======================
	// SERVER
	// ======================
	go func() {
		logger.Info("starting http server", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
}
