package ports

import (
	"context"

	"github.com/bangshop/admin/internal/domain"
)

// OrderValidator — валидация входящих из checkout-потока заказов.
type OrderValidator interface {
	Validate(ctx context.Context, order *domain.Order) error
}

// ProductValidator — валидация товара перед сохранением.
type ProductValidator interface {
	Validate(ctx context.Context, product *domain.Product) error
}
