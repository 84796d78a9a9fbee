package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bookstore/internal/app"
	"bookstore/internal/config"
	"bookstore/internal/events"
	"bookstore/internal/handler"
	"bookstore/internal/postgres"
	"bookstore/internal/repo"
	"bookstore/internal/service"
	"bookstore/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Bookstore Order API
// @version         1.0
// @description     Оформление заказов и страница подтверждения
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to run migrations", postgres.Migrate(db))

	storeRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	publisher := events.NewKafkaPublisher(logger, conf.Kafka)

	orderService := service.NewOrderService(
		logger, txManager,
		storeRepo, storeRepo, storeRepo, storeRepo,
		publisher, service.DefaultConfirmationSource,
	)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, orderService)

	application := app.New(logger, conf)
	application.SetHTTPHandlers(httpHandler)
	application.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application.Start()
	<-ctx.Done()
	application.Stop()
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
