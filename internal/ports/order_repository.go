package ports

import (
	"context"

	"github.com/bangshop/admin/internal/domain"
)

// OrderRepository — хранилище заказов.
type OrderRepository interface {
	// Save — идемпотентный upsert заказа вместе с позициями.
	Save(ctx context.Context, order *domain.Order) error

	// ListAll — полный текущий набор заказов, новые первыми.
	// Именно этот набор целиком рассылается подписчикам фида.
	ListAll(ctx context.Context) ([]*domain.Order, error)
}
