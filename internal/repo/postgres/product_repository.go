package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/bangshop/admin/internal/domain"
	"github.com/bangshop/admin/internal/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что ProductRepository удовлетворяет порту.
var _ ports.ProductRepository = (*ProductRepository)(nil)

// ProductRepository — товары на Postgres (pgxpool).
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Create — вставка нового товара. Идентификатор присваивается здесь:
// клиент о нём ничего не знает до ответа.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (string, error) {
	if product == nil {
		return "", errors.New("product is required")
	}

	id := uuid.NewString()
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO products (id, name, price, description, image_url)
		VALUES ($1, $2, $3, $4, $5)
	`, id, product.Name, product.Price, product.Description, product.ImageURL); err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}

	return id, nil
}
