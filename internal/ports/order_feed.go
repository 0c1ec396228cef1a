package ports

import (
	"context"

	"github.com/bangshop/admin/internal/domain"
)

// OrderFeed — живая рассылка снапшотов заказов.
// На каждое изменение подписчик получает ПОЛНЫЙ текущий набор, а не дифф.
type OrderFeed interface {
	// Subscribe — регистрирует подписчика; возвращает канал снапшотов и
	// функцию отписки. Отписка гарантирована и при отмене контекста.
	// Доставка latest-wins: медленный подписчик видит только последний снапшот.
	Subscribe(ctx context.Context) (<-chan []*domain.Order, func())

	// Broadcast — разослать новый снапшот всем подписчикам.
	Broadcast(ctx context.Context, snapshot []*domain.Order)
}
