package rest

import (
	"fmt"
	"time"

	"github.com/bangshop/admin/internal/domain"
	"github.com/bangshop/admin/pkg/money"
)

// OrderItemView — позиция заказа в том виде, в котором её рисует дашборд.
type OrderItemView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Line     string `json:"line"` // готовая строка вида "Widget (x2)"
}

// OrderView — заказ с готовыми к показу полями: сумма уже отформатирована
// в доллары, позиции собраны в строки.
type OrderView struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	TotalAmount  float64         `json:"totalAmount"`
	TotalDisplay string          `json:"totalDisplay"`
	Items        []OrderItemView `json:"items"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func NewOrderView(o *domain.Order) OrderView {
	items := make([]OrderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemView{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Line:     fmt.Sprintf("%s (x%d)", it.Name, it.Quantity),
		})
	}
	return OrderView{
		ID:           o.ID,
		Status:       o.Status,
		TotalAmount:  o.TotalAmount,
		TotalDisplay: money.FormatUSD(o.TotalAmount),
		Items:        items,
		CreatedAt:    o.CreatedAt,
	}
}

func NewOrderViews(orders []*domain.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views
}
