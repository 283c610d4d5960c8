package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/marketplace-order-service/docs"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/app"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/auth"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/handler"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/notify"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/outbox"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/repo"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/service"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/validation"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Marketplace Order Service API
// @version         1.0
// @description     Order placement with atomic stock reservation and buyer/seller notifications
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()

	pool, err := postgres.NewPool(ctx, conf.Postgres)
	panicIfErr("failed to open db pool", err)
	defer pool.Close()
	logger.Info("postgres connected")

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache[string, entities.Order](conf.Cache.Capacity, conf.Cache.TTL)
	profileCache := cache.NewLRUCache[string, entities.Profile](conf.Cache.Capacity, conf.Cache.TTL)

	fanout := notify.NewFanout(logger, store, store, profileCache, conf.Fanout)
	orderService := service.NewOrderService(logger, txManager, store, store, fanout, orderCache,
		validation.New(), conf.Payment.Provider)

	verifier, err := auth.NewFirebaseVerifier(ctx, conf.Auth)
	panicIfErr("failed to init firebase auth", err)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, orderService,
		middleware.Auth(logger, verifier, conf.Auth.SessionCookie))

	publisher, err := newPublisher(conf)
	panicIfErr("failed to connect to broker", err)
	relay := outbox.NewRelay(logger, outbox.NewPostgresStore(pool, conf.Outbox.MaxAttempts), publisher, conf.Outbox)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetWorkers(relay, orderCache, profileCache)
	if conf.Kafka.ConsumerEnabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}

	panicIfErr("failed to start app", app.Start(ctx))
	select {
	case <-ctx.Done():
	case err := <-app.Err():
		logger.Error("shutting down after server failure", slog.Any("error", err))
	}
	panicIfErr("failed to stop app", app.Stop())
}

func newPublisher(conf config.Config) (outbox.Publisher, error) {
	if conf.Outbox.Broker == "rabbitmq" {
		return outbox.NewRabbitMQPublisher(conf.RabbitMQ)
	}
	return outbox.NewKafkaPublisher(conf.Kafka), nil
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
