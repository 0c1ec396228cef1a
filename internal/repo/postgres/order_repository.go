package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/bangshop/admin/internal/domain"
	"github.com/bangshop/admin/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что OrderRepository удовлетворяет порту.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — заказы на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Save — транзакционно сохраняет заказ: upsert основной записи и полная
// замена позиций. Checkout-поток может прислать заказ повторно — операция
// идемпотентна.
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return errors.New("order is empty or id is required")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// На уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	// 1) orders — upsert по id.
	if _, err = transaction.Exec(ctx, `
		INSERT INTO orders (id, total_amount, status, created_at)
		VALUES ($1, $2, $3, COALESCE(NULLIF($4::timestamptz, '0001-01-01T00:00:00Z'::timestamptz), now()))
		ON CONFLICT (id) DO UPDATE SET
			total_amount = EXCLUDED.total_amount,
			status = EXCLUDED.status
	`, order.ID, order.TotalAmount, order.Status, order.CreatedAt); err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}

	// 2) order_items — replace: удаляем и вставляем список заново.
	if _, err = transaction.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}
	for pos, item := range order.Items {
		if _, err = transaction.Exec(ctx, `
			INSERT INTO order_items (order_id, item_id, name, quantity, position)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.ID, item.Name, item.Quantity, pos); err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ListAll — полный текущий набор заказов, новые первыми.
// Два запроса на снапшот: база заказов + все позиции, склейка в памяти
// с сохранением порядка.
func (r *OrderRepository) ListAll(ctx context.Context) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, total_amount, status, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	byID := make(map[string]*domain.Order)

	for rows.Next() {
		order := &domain.Order{}
		if err := rows.Scan(&order.ID, &order.TotalAmount, &order.Status, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
		byID[order.ID] = order
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	iRows, err := r.pool.Query(ctx, `
		SELECT order_id, item_id, name, quantity
		FROM order_items
		ORDER BY order_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer iRows.Close()

	for iRows.Next() {
		var orderID string
		var item domain.OrderItem
		if err := iRows.Scan(&orderID, &item.ID, &item.Name, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if order, ok := byID[orderID]; ok {
			order.Items = append(order.Items, item)
		}
	}
	if err := iRows.Err(); err != nil {
		return nil, fmt.Errorf("items rows: %w", err)
	}

	return orders, nil
}
