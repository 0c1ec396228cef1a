package ports

import (
	"context"

	"github.com/bangshop/admin/internal/domain"
)

// ProductRepository — хранилище товаров.
type ProductRepository interface {
	// Create — вставка нового товара; возвращает присвоенный id.
	Create(ctx context.Context, product *domain.Product) (string, error)
}
