// Package stockalert собирает фоновый воркер контроля остатков:
// подключение к хранилищу, брокеру и сам сервис-потребитель.
package stockalert

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/backoffice/internal/config"
	"github.com/magabrotheeeer/backoffice/internal/rabbitmq"
	stockalertservice "github.com/magabrotheeeer/backoffice/internal/services/stockalert"
	"github.com/magabrotheeeer/backoffice/internal/storage/repository"
)

type App struct {
	conn    *amqp.Connection
	ch      *amqp.Channel
	service *stockalertservice.Service
	logger  *slog.Logger
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	conn, err := rabbitmq.Connect(cfg.AddressRabbit, cfg.RetriesRabbit, cfg.DelayRabbit)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	service := stockalertservice.NewService(db, logger)

	return &App{
		conn:    conn,
		ch:      ch,
		service: service,
		logger:  logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := a.service.Run(ctx, a.ch)
	_ = a.ch.Close()
	_ = a.conn.Close()
	return err
}
