package ports

import (
	"context"

	"github.com/bangshop/admin/internal/domain"
)

// OrderQueryService — чтение текущего набора заказов для транспорта.
type OrderQueryService interface {
	Snapshot(ctx context.Context) ([]*domain.Order, error)
}
