package usecase

import (
	"context"
	"fmt"

	"github.com/bangshop/admin/internal/domain"
	"github.com/bangshop/admin/internal/ports"
	"github.com/bangshop/admin/pkg/metrics"
)

// ProductService — создание товаров: валидация, затем вставка.
type ProductService struct {
	repo      ports.ProductRepository
	log       ports.Logger
	validator ports.ProductValidator
}

// NewProductService — DI-конструктор.
func NewProductService(
	repo ports.ProductRepository,
	log ports.Logger,
	validator ports.ProductValidator,
) *ProductService {
	return &ProductService{
		repo:      repo,
		log:       log,
		validator: validator,
	}
}

// Create — валидация и сохранение товара; возвращает присвоенный id.
// При ошибке валидации до хранилища дело не доходит.
func (s *ProductService) Create(ctx context.Context, product *domain.Product) (string, error) {
	if err := s.validator.Validate(ctx, product); err != nil {
		s.log.Warnf(ctx, "product validation failed err=%v", err)
		return "", err
	}

	id, err := s.repo.Create(ctx, product)
	if err != nil {
		s.log.Errorf(ctx, "repo.Create failed name=%q err=%v", product.Name, err)
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	metrics.ProductsCreated.Inc()
	s.log.Infof(ctx, "product created id=%s name=%q price=%.2f", id, product.Name, product.Price)
	return id, nil
}
