// Package stockalert следит за остатками товаров: после каждой
// добавленной позиции заказа перечитывает товар и предупреждает,
// когда остаток опускается ниже порога.
package stockalert

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/backoffice/internal/lib/sl"
	"github.com/magabrotheeeer/backoffice/internal/models"
	"github.com/magabrotheeeer/backoffice/internal/rabbitmq"
)

// LowStockThreshold — остаток, при котором пишется предупреждение.
const LowStockThreshold = 5

// ProductRepository описывает чтение товара из хранилища.
type ProductRepository interface {
	GetProduct(ctx context.Context, id int) (*models.Product, error)
}

// Service обрабатывает события о добавленных позициях заказов.
type Service struct {
	repo ProductRepository
	log  *slog.Logger
}

// NewService создает сервис контроля остатков.
func NewService(repo ProductRepository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// HandleMessage разбирает событие и проверяет остаток товара.
// Триггер в базе уже списал количество к моменту получения события.
func (s *Service) HandleMessage(ctx context.Context, body []byte) error {
	const op = "services.stockalert.HandleMessage"
	var event rabbitmq.LineItemEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	product, err := s.repo.GetProduct(ctx, event.ProductID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if product.Stock < LowStockThreshold {
		s.log.Warn("product stock below threshold",
			slog.Int("product_id", product.ID),
			slog.String("product_name", product.Name),
			slog.Int("stock", product.Stock),
			slog.Int("threshold", LowStockThreshold))
	} else {
		s.log.Info("stock checked after order line",
			slog.Int("product_id", product.ID),
			slog.Int("stock", product.Stock))
	}
	return nil
}

// Run подписывается на очередь событий и блокируется до отмены контекста.
func (s *Service) Run(ctx context.Context, ch *amqp.Channel) error {
	const op = "services.stockalert.Run"
	err := rabbitmq.ConsumerMessage(ctx, ch, rabbitmq.LineItemQueue, func(body []byte) error {
		if err := s.HandleMessage(ctx, body); err != nil {
			s.log.Error("failed to handle line item event", sl.Err(err))
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	<-ctx.Done()
	return nil
}
