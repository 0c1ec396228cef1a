package ports

import (
	"context"

	"github.com/bangshop/admin/internal/domain"
)

// ProductCreator — создание товара (прикладной слой для транспорта).
type ProductCreator interface {
	Create(ctx context.Context, product *domain.Product) (string, error)
}
