//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/bangshop/admin/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного заказа из checkout-потока.
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	o := domain.Order{
		ID:          "ord-" + UniqSuffix(),
		TotalAmount: 42.5,
		Status:      "new",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		Items: []domain.OrderItem{
			{ID: "item-" + UniqSuffix(), Name: "Widget", Quantity: 2},
		},
	}

	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithOrderID(id string) func(*domain.Order) {
	return func(o *domain.Order) { o.ID = id }
}

func WithStatus(status string) func(*domain.Order) {
	return func(o *domain.Order) { o.Status = status }
}

func WithTotal(total float64) func(*domain.Order) {
	return func(o *domain.Order) { o.TotalAmount = total }
}

func WithItems(n int) func(*domain.Order) {
	return func(o *domain.Order) {
		o.Items = make([]domain.OrderItem, 0, n)
		for i := 0; i < n; i++ {
			o.Items = append(o.Items, domain.OrderItem{
				ID:       "item-" + UniqSuffix(),
				Name:     "Item",
				Quantity: i + 1,
			})
		}
	}
}

// Валидный товар для интеграционных тестов каталога.
func MakeProduct() domain.Product {
	return domain.Product{
		Name:        "Widget " + UniqSuffix(),
		Price:       9.99,
		Description: "integration test product",
		ImageURL:    "/uploads/" + UniqSuffix() + ".png",
	}
}
