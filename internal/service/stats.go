package service

import (
	"context"

	"github.com/vlasenka/pausebot/internal/models"
)

// OrderStatsRepository provides order counters
type OrderStatsRepository interface {
	// CountByStatus returns order counts grouped by status
	CountByStatus(ctx context.Context) (map[string]int64, error)
	// ConfirmedRevenue returns total amount of confirmed orders
	ConfirmedRevenue(ctx context.Context) (int64, error)
}

// BoxOrderStatsRepository provides box order counters
type BoxOrderStatsRepository interface {
	// CountByStatus returns box order counts grouped by status
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// UserStatsRepository provides user counters
type UserStatsRepository interface {
	// CountUsers returns total user count
	CountUsers(ctx context.Context) (int64, error)
}

// StatsService assembles the admin dashboard summary
type StatsService struct {
	orders OrderStatsRepository
	boxes  BoxOrderStatsRepository
	users  UserStatsRepository
}

// NewStatsService creates new StatsService instance
func NewStatsService(orders OrderStatsRepository, boxes BoxOrderStatsRepository, users UserStatsRepository) *StatsService {
	return &StatsService{
		orders: orders,
		boxes:  boxes,
		users:  users,
	}
}

// Stats returns user count, order counts per status and confirmed revenue
func (ss *StatsService) Stats(ctx context.Context) (*models.Stats, error) {
	users, err := ss.users.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := ss.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	boxes, err := ss.boxes.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := ss.orders.ConfirmedRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Stats{
		Users:     users,
		Orders:    orders,
		BoxOrders: boxes,
		Revenue:   revenue,
	}, nil
}
