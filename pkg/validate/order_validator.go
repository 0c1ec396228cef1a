package validate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/bangshop/admin/internal/domain"
	"github.com/bangshop/admin/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет порту.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel) ошибка валидации входящего заказа.
// Консьюмер по ней отличает мусор (скип с коммитом) от временных ошибок.
var ErrInvalidOrder = errors.New("order validation failed")

// OrderValidator — валидация заказов из checkout-потока.
// Заказ без суммы или позиций ломал бы фид на рендере — отсекаем на входе.
type OrderValidator struct{}

func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

func (v *OrderValidator) Validate(_ context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	if order.ID == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidOrder)
	}
	if math.IsNaN(order.TotalAmount) || math.IsInf(order.TotalAmount, 0) {
		return fmt.Errorf("%w: totalAmount не является числом", ErrInvalidOrder)
	}
	if order.TotalAmount < 0 {
		return fmt.Errorf("%w: totalAmount должен быть неотрицательным", ErrInvalidOrder)
	}
	return v.validateItems(order.Items)
}

func (v *OrderValidator) validateItems(items []domain.OrderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: items не должен быть пустым", ErrInvalidOrder)
	}
	for i := range items {
		item := &items[i]
		idx := strconv.Itoa(i)

		if item.ID == "" {
			return fmt.Errorf("%w: items[%s].id обязателен", ErrInvalidOrder, idx)
		}
		if item.Name == "" {
			return fmt.Errorf("%w: items[%s].name обязателен", ErrInvalidOrder, idx)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: items[%s].quantity должен быть >= 1", ErrInvalidOrder, idx)
		}
	}
	return nil
}
