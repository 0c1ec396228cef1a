package domain

import "time"

// OrderItem — позиция заказа (имя и количество — то, что показывает дашборд).
type OrderItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Order — заказ, созданный внешним checkout-процессом.
// Сервис админки заказы только читает; жизненный цикл полностью на стороне магазина.
type Order struct {
	ID          string      `json:"id"`
	TotalAmount float64     `json:"totalAmount"`
	Status      string      `json:"status"`
	Items       []OrderItem `json:"items"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Clone — копия заказа, чтобы подписчики фида не делили срез items.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cloned := *o
	if o.Items != nil {
		cloned.Items = append([]OrderItem(nil), o.Items...)
	}
	return &cloned
}

// CloneOrders — глубокая копия снапшота.
func CloneOrders(orders []*Order) []*Order {
	if orders == nil {
		return nil
	}
	out := make([]*Order, len(orders))
	for i, o := range orders {
		out[i] = o.Clone()
	}
	return out
}
