package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/vlasenka/pausebot/internal/models"
	"github.com/vlasenka/pausebot/internal/repository/postgres"
)

const (
	boxOrderColumns = `id, chat_id, name, phone, address, box_month, amount, currency, status, created_at, paid_at, confirmed_at, shipped_at, delivered_at`

	insertBoxOrderQuery = `
						INSERT INTO box_orders (chat_id, box_month, amount, currency, status)
						VALUES ($1, $2, $3, $4, 'pending')
						RETURNING ` + boxOrderColumns

	selectBoxOrderByIDQuery = `
						SELECT ` + boxOrderColumns + ` FROM box_orders
						WHERE id = $1
`
	selectBoxOrdersQuery = `
						SELECT ` + boxOrderColumns + ` FROM box_orders
						ORDER BY created_at DESC
						LIMIT $1
`
	selectLatestPendingBoxOrderQuery = `
						SELECT id FROM box_orders
						WHERE chat_id = $1 AND status = 'pending'
						ORDER BY created_at DESC
						LIMIT 1
`
	lockBoxOrderQuery = `
						SELECT status FROM box_orders
						WHERE id = $1
						FOR UPDATE
`
	updateBoxShippingQuery = `
						UPDATE box_orders
						SET name = $2, phone = $3, address = $4
						WHERE id = $1
						RETURNING ` + boxOrderColumns

	markBoxOrderPaidQuery = `
						UPDATE box_orders
						SET status = 'paid', paid_at = now()
						WHERE id = $1
						RETURNING ` + boxOrderColumns

	confirmBoxOrderQuery = `
						UPDATE box_orders
						SET status = 'confirmed', confirmed_at = now()
						WHERE id = $1
						RETURNING ` + boxOrderColumns

	rejectBoxOrderQuery = `
						UPDATE box_orders
						SET status = 'cancelled'
						WHERE id = $1
						RETURNING ` + boxOrderColumns

	shipBoxOrderQuery = `
						UPDATE box_orders
						SET status = 'shipped', shipped_at = now()
						WHERE id = $1
						RETURNING ` + boxOrderColumns

	deliverBoxOrderQuery = `
						UPDATE box_orders
						SET status = 'delivered', delivered_at = now()
						WHERE id = $1
						RETURNING ` + boxOrderColumns

	countBoxOrdersByStatusQuery = `
						SELECT status, COUNT(*) FROM box_orders
						GROUP BY status
`
)

// BoxOrderRepository stores physical box pre-orders
type BoxOrderRepository struct {
	db *postgres.DB
}

// NewBoxOrderRepository creates new BoxOrderRepository instance
func NewBoxOrderRepository(db *postgres.DB) *BoxOrderRepository {
	return &BoxOrderRepository{db: db}
}

func scanBoxOrder(row pgx.Row, order *models.BoxOrder) error {
	return row.Scan(&order.ID, &order.ChatID, &order.Name, &order.Phone,
		&order.Address, &order.BoxMonth, &order.Amount, &order.Currency,
		&order.Status, &order.CreatedAt, &order.PaidAt, &order.ConfirmedAt,
		&order.ShippedAt, &order.DeliveredAt)
}

// CreateBoxOrder inserts new pending box order. Shipping fields are filled
// later through UpdateShipping.
func (br *BoxOrderRepository) CreateBoxOrder(ctx context.Context, order *models.BoxOrder) (*models.BoxOrder, error) {
	err := scanBoxOrder(br.db.QueryRow(ctx, insertBoxOrderQuery,
		order.ChatID, order.BoxMonth, order.Amount, order.Currency), order)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetBoxOrderByID returns box order by id
func (br *BoxOrderRepository) GetBoxOrderByID(ctx context.Context, id uint64) (*models.BoxOrder, error) {
	order := models.BoxOrder{}
	err := scanBoxOrder(br.db.QueryRow(ctx, selectBoxOrderByIDQuery, id), &order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

// ListBoxOrders returns most recent box orders
func (br *BoxOrderRepository) ListBoxOrders(ctx context.Context, limit int) ([]models.BoxOrder, error) {
	rows, err := br.db.Query(ctx, selectBoxOrdersQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.BoxOrder{}

	for rows.Next() {
		order := models.BoxOrder{}
		if err := scanBoxOrder(rows, &order); err != nil {
			continue
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateShipping fills shipping fields on the box order
func (br *BoxOrderRepository) UpdateShipping(ctx context.Context, id uint64, name, phone, address string) (*models.BoxOrder, error) {
	order := models.BoxOrder{}
	err := scanBoxOrder(br.db.QueryRow(ctx, updateBoxShippingQuery, id, name, phone, address), &order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

// MarkLatestPaid marks the buyer's most recent pending box order as paid,
// re-checking the status under a row lock.
func (br *BoxOrderRepository) MarkLatestPaid(ctx context.Context, chatID int64) (*models.BoxOrder, error) {
	order := models.BoxOrder{}

	err := br.db.WithinTx(ctx, func(tx pgx.Tx) error {
		var id uint64
		if err := tx.QueryRow(ctx, selectLatestPendingBoxOrderQuery, chatID).Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return models.ErrDataNotFound
			}
			return err
		}

		var status string
		if err := tx.QueryRow(ctx, lockBoxOrderQuery, id).Scan(&status); err != nil {
			return err
		}
		if !models.CanTransition(status, models.StatusPaid) {
			return models.ErrConflictData
		}

		return scanBoxOrder(tx.QueryRow(ctx, markBoxOrderPaidQuery, id), &order)
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// ConfirmBoxOrder moves box order to confirmed
func (br *BoxOrderRepository) ConfirmBoxOrder(ctx context.Context, id uint64) (*models.BoxOrder, error) {
	return br.transition(ctx, id, confirmBoxOrderQuery, models.StatusConfirmed)
}

// RejectBoxOrder moves box order to cancelled. Shipped and delivered boxes
// cannot be rejected anymore.
func (br *BoxOrderRepository) RejectBoxOrder(ctx context.Context, id uint64) (*models.BoxOrder, error) {
	return br.transition(ctx, id, rejectBoxOrderQuery, models.StatusCancelled)
}

// ShipBoxOrder moves confirmed box order to shipped
func (br *BoxOrderRepository) ShipBoxOrder(ctx context.Context, id uint64) (*models.BoxOrder, error) {
	return br.transition(ctx, id, shipBoxOrderQuery, models.StatusShipped)
}

// DeliverBoxOrder moves shipped box order to delivered
func (br *BoxOrderRepository) DeliverBoxOrder(ctx context.Context, id uint64) (*models.BoxOrder, error) {
	return br.transition(ctx, id, deliverBoxOrderQuery, models.StatusDelivered)
}

func (br *BoxOrderRepository) transition(ctx context.Context, id uint64, updateQuery, target string) (*models.BoxOrder, error) {
	order := models.BoxOrder{}

	err := br.db.WithinTx(ctx, func(tx pgx.Tx) error {
		var status string
		if err := tx.QueryRow(ctx, lockBoxOrderQuery, id).Scan(&status); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return models.ErrDataNotFound
			}
			return err
		}

		if !models.CanTransition(status, target) {
			return models.ErrConflictData
		}

		return scanBoxOrder(tx.QueryRow(ctx, updateQuery, id), &order)
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// CountByStatus returns box order counts grouped by status
func (br *BoxOrderRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := br.db.Query(ctx, countBoxOrdersByStatusQuery)
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
