// Package backoffice собирает HTTP-приложение бэк-офиса: хранилище,
// миграции, кеш, брокер событий, сервисы и маршруты.
package backoffice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/backoffice/internal/cache"
	"github.com/magabrotheeeer/backoffice/internal/config"
	"github.com/magabrotheeeer/backoffice/internal/lib/jwt"
	"github.com/magabrotheeeer/backoffice/internal/migrations"
	"github.com/magabrotheeeer/backoffice/internal/rabbitmq"
	authservice "github.com/magabrotheeeer/backoffice/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/backoffice/internal/services/catalog"
	customerservice "github.com/magabrotheeeer/backoffice/internal/services/customer"
	orderservice "github.com/magabrotheeeer/backoffice/internal/services/order"
	"github.com/magabrotheeeer/backoffice/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер и внешние подключения.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	broker *amqp.Connection
}

// New создает приложение: подключает Postgres, применяет миграции,
// поднимает Redis и RabbitMQ, собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	if err = repository.CheckDatabaseReady(db); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	broker, err := rabbitmq.Connect(cfg.AddressRabbit, cfg.RetriesRabbit, cfg.DelayRabbit)
	if err != nil {
		return nil, err
	}
	channel, err := rabbitmq.SetupChannel(broker)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	verifier, err := authservice.NewVerifier(cfg.AuthMode, jwtMaker)
	if err != nil {
		return nil, err
	}
	if cfg.AuthMode == "demo-admin" {
		logger.Warn("demo auth mode enabled: every request is treated as administrator")
	}

	authService := authservice.NewService(db, jwtMaker)
	catalogService := catalogservice.NewService(db, cacheRedis, logger)
	customerService := customerservice.NewService(db, logger)
	orderService := orderservice.NewService(db, rabbitmq.NewPublisher(channel), logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, verifier,
		authService, catalogService, customerService, orderService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		broker: broker,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		_ = a.broker.Close()
		return err
	}
}
