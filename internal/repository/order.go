package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/vlasenka/pausebot/internal/models"
	"github.com/vlasenka/pausebot/internal/repository/postgres"
)

const (
	orderColumns = `id, chat_id, name, email, amount, currency, status, created_at, paid_at, confirmed_at`

	insertOrderQuery = `
						INSERT INTO orders (chat_id, name, email, amount, currency, status)
						VALUES ($1, $2, $3, $4, $5, 'pending')
						RETURNING ` + orderColumns

	selectOrderByIDQuery = `
						SELECT ` + orderColumns + ` FROM orders
						WHERE id = $1
`
	selectOrdersQuery = `
						SELECT ` + orderColumns + ` FROM orders
						ORDER BY created_at DESC
						LIMIT $1
`
	selectLatestPendingOrderQuery = `
						SELECT id FROM orders
						WHERE chat_id = $1 AND status = 'pending'
						ORDER BY created_at DESC
						LIMIT 1
`
	lockOrderQuery = `
						SELECT status FROM orders
						WHERE id = $1
						FOR UPDATE
`
	markOrderPaidQuery = `
						UPDATE orders
						SET status = 'paid', paid_at = now()
						WHERE id = $1
						RETURNING ` + orderColumns

	confirmOrderQuery = `
						UPDATE orders
						SET status = 'confirmed', confirmed_at = now()
						WHERE id = $1
						RETURNING ` + orderColumns

	rejectOrderQuery = `
						UPDATE orders
						SET status = 'cancelled'
						WHERE id = $1
						RETURNING ` + orderColumns

	countOrdersByStatusQuery = `
						SELECT status, COUNT(*) FROM orders
						GROUP BY status
`
	orderRevenueQuery = `
						SELECT COALESCE(SUM(amount), 0) FROM orders
						WHERE status = 'confirmed'
`
)

// OrderRepository stores digital orders
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row pgx.Row, order *models.Order) error {
	return row.Scan(&order.ID, &order.ChatID, &order.Name, &order.Email,
		&order.Amount, &order.Currency, &order.Status,
		&order.CreatedAt, &order.PaidAt, &order.ConfirmedAt)
}

// CreateOrder inserts new pending order
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	err := scanOrder(or.db.QueryRow(ctx, insertOrderQuery,
		order.ChatID, order.Name, order.Email, order.Amount, order.Currency), order)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrderByID returns order by id
func (or *OrderRepository) GetOrderByID(ctx context.Context, id uint64) (*models.Order, error) {
	order := models.Order{}
	err := scanOrder(or.db.QueryRow(ctx, selectOrderByIDQuery, id), &order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

// ListOrders returns most recent orders
func (or *OrderRepository) ListOrders(ctx context.Context, limit int) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectOrdersQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order := models.Order{}
		if err := scanOrder(rows, &order); err != nil {
			continue
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// MarkLatestPaid marks the buyer's most recent pending order as paid.
// The status is re-checked under a row lock: a row that already left
// pending while we waited yields models.ErrConflictData and no write.
func (or *OrderRepository) MarkLatestPaid(ctx context.Context, chatID int64) (*models.Order, error) {
	order := models.Order{}

	err := or.db.WithinTx(ctx, func(tx pgx.Tx) error {
		var id uint64
		if err := tx.QueryRow(ctx, selectLatestPendingOrderQuery, chatID).Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return models.ErrDataNotFound
			}
			return err
		}

		var status string
		if err := tx.QueryRow(ctx, lockOrderQuery, id).Scan(&status); err != nil {
			return err
		}
		if !models.CanTransition(status, models.StatusPaid) {
			return models.ErrConflictData
		}

		return scanOrder(tx.QueryRow(ctx, markOrderPaidQuery, id), &order)
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// ConfirmOrder moves order to confirmed
func (or *OrderRepository) ConfirmOrder(ctx context.Context, id uint64) (*models.Order, error) {
	return or.transition(ctx, id, confirmOrderQuery, models.StatusConfirmed)
}

// RejectOrder moves order to cancelled
func (or *OrderRepository) RejectOrder(ctx context.Context, id uint64) (*models.Order, error) {
	return or.transition(ctx, id, rejectOrderQuery, models.StatusCancelled)
}

// transition performs lock -> re-read -> check -> write as one transaction.
// The lock is held across the whole sequence so two concurrent transitions
// on the same row cannot both pass the status check.
func (or *OrderRepository) transition(ctx context.Context, id uint64, updateQuery, target string) (*models.Order, error) {
	order := models.Order{}

	err := or.db.WithinTx(ctx, func(tx pgx.Tx) error {
		var status string
		if err := tx.QueryRow(ctx, lockOrderQuery, id).Scan(&status); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return models.ErrDataNotFound
			}
			return err
		}

		if !models.CanTransition(status, target) {
			return models.ErrConflictData
		}

		return scanOrder(tx.QueryRow(ctx, updateQuery, id), &order)
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// CountByStatus returns order counts grouped by status
func (or *OrderRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := or.db.Query(ctx, countOrdersByStatusQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int64{}

	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			continue
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// ConfirmedRevenue returns total amount of confirmed orders
func (or *OrderRepository) ConfirmedRevenue(ctx context.Context) (int64, error) {
	var revenue int64
	if err := or.db.QueryRow(ctx, orderRevenueQuery).Scan(&revenue); err != nil {
		return 0, err
	}
	return revenue, nil
}
