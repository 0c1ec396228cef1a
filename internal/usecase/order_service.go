package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/bangshop/admin/internal/domain"
	"github.com/bangshop/admin/internal/ports"
	"github.com/bangshop/admin/pkg/validate"
)

// OrderService — прикладная логика заказов: приём из checkout-потока и
// выдача снапшотов фиду (без знаний о транспорте).
type OrderService struct {
	repo      ports.OrderRepository
	feed      ports.OrderFeed
	log       ports.Logger
	validator ports.OrderValidator
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	repo ports.OrderRepository,
	feed ports.OrderFeed,
	log ports.Logger,
	validator ports.OrderValidator,
) *OrderService {
	return &OrderService{
		repo:      repo,
		feed:      feed,
		log:       log,
		validator: validator,
	}
}

// Snapshot — полный текущий набор заказов.
func (s *OrderService) Snapshot(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.ListAll(ctx)
}

// SaveFromMessage — сохранить заказ, пришедший из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields);
//  2. доменная валидация;
//  3. идемпотентный upsert в БД;
//  4. перечитать полный набор и разослать его подписчикам фида.
//
// Ошибки шагов 1-2 помечаются validate.ErrInvalidOrder: такие сообщения
// консьюмер коммитит и пропускает, ретраить их бессмысленно.
// Фид всегда получает набор целиком: подписчики ничего не мержат.
func (s *OrderService) SaveFromMessage(ctx context.Context, raw []byte) error {
	var order domain.Order
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&order); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", validate.ErrInvalidOrder, err)
	}

	// После объекта не должно быть лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", validate.ErrInvalidOrder)
	}

	if err := s.validator.Validate(ctx, &order); err != nil {
		s.log.Warnf(ctx, "validation failed order_id=%s err=%v", order.ID, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	start := time.Now()
	if err := s.repo.Save(ctx, &order); err != nil {
		s.log.Errorf(ctx, "repo.Save failed order_id=%s err=%v", order.ID, err)
		return fmt.Errorf("failed to save order: %w", err)
	}

	// Заказ сохранён; сбой рассылки лишь задержит обновление дашборда
	// до следующего изменения, поэтому не фатален.
	if err := s.publishSnapshot(ctx); err != nil {
		s.log.Warnf(ctx, "snapshot broadcast failed order_id=%s err=%v", order.ID, err)
	}

	s.log.Infof(ctx, "order saved id=%s items=%d took=%s", order.ID, len(order.Items), time.Since(start))
	return nil
}

func (s *OrderService) publishSnapshot(ctx context.Context) error {
	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}
	s.feed.Broadcast(ctx, snapshot)
	return nil
}
