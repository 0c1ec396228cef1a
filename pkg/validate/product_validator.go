package validate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bangshop/admin/internal/domain"
	"github.com/bangshop/admin/internal/ports"
)

// Проверка, что ProductValidator удовлетворяет порту.
var _ ports.ProductValidator = (*ProductValidator)(nil)

// ErrInvalidProduct — базовая (sentinel) ошибка валидации товара.
var ErrInvalidProduct = errors.New("product validation failed")

// ProductValidator — валидация товара перед сохранением.
// Возвращает ErrInvalidProduct (с обёрнутой причиной) при любой проблеме.
type ProductValidator struct{}

func NewProductValidator() *ProductValidator { return &ProductValidator{} }

// Validate — обязательные поля и корректность цены.
// Описание не обязательно — форма допускала пустой textarea.
func (v *ProductValidator) Validate(_ context.Context, p *domain.Product) error {
	if p == nil {
		return fmt.Errorf("%w: товар не может быть nil", ErrInvalidProduct)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidProduct)
	}
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return fmt.Errorf("%w: price не является числом", ErrInvalidProduct)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price должен быть неотрицательным", ErrInvalidProduct)
	}
	if strings.TrimSpace(p.ImageURL) == "" {
		return fmt.Errorf("%w: imageUrl обязателен", ErrInvalidProduct)
	}
	return nil
}

// ParsePrice — разбор цены из свободного текста формы.
// HTML-инпут "number" не спасает от NaN/Inf/минуса — отсекаем их здесь,
// до любых сетевых вызовов.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: price пуст", ErrInvalidProduct)
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price %q не разбирается", ErrInvalidProduct, s)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: price %q не является конечным числом", ErrInvalidProduct, s)
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: price должен быть неотрицательным", ErrInvalidProduct)
	}
	return price, nil
}
