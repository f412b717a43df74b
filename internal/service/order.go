package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vlasenka/pausebot/config"
	"github.com/vlasenka/pausebot/internal/models"
	"github.com/vlasenka/pausebot/internal/notifier"
	"go.uber.org/zap"
)

// Notifier delivers a message to a recipient. Delivery is best-effort for
// the ledger: a failed send never rolls back a committed transition.
type Notifier interface {
	Send(ctx context.Context, chatID int64, text string, markup json.RawMessage) error
}

// UITexts resolves UI strings with placeholder substitution
type UITexts interface {
	UIText(ctx context.Context, key string, args map[string]string) string
}

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// CreateOrder inserts new pending order
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetOrderByID returns order by id
	GetOrderByID(ctx context.Context, id uint64) (*models.Order, error)
	// ListOrders returns most recent orders
	ListOrders(ctx context.Context, limit int) ([]models.Order, error)
	// MarkLatestPaid marks the buyer's most recent pending order as paid
	MarkLatestPaid(ctx context.Context, chatID int64) (*models.Order, error)
	// ConfirmOrder moves order to confirmed
	ConfirmOrder(ctx context.Context, id uint64) (*models.Order, error)
	// RejectOrder moves order to cancelled
	RejectOrder(ctx context.Context, id uint64) (*models.Order, error)
}

// OrderService owns the digital order lifecycle
type OrderService struct {
	repo     OrderRepository
	texts    UITexts
	notifier Notifier
	cfg      *config.Config
	logger   *zap.Logger
}

// NewOrderService creates new OrderService instance
func NewOrderService(repo OrderRepository, texts UITexts, nt Notifier, cfg *config.Config, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:     repo,
		texts:    texts,
		notifier: nt,
		cfg:      cfg,
		logger:   logger,
	}
}

// Checkout creates a pending order and notifies the admin with the
// confirm/reject keyboard
func (os *OrderService) Checkout(ctx context.Context, chatID int64, name, email, username string) (*models.Order, error) {
	order := &models.Order{
		ChatID:   chatID,
		Name:     name,
		Email:    email,
		Amount:   os.cfg.ProductPrice,
		Currency: os.cfg.ProductCurrency,
		Status:   models.StatusPending,
	}

	order, err := os.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	if username == "" {
		username = "—"
	}
	adminText := fmt.Sprintf("Новый заказ #%d\n\nИмя: %s\nEmail: %s\nСумма: %d %s\nTelegram: @%s",
		order.ID, order.Name, order.Email, order.Amount, order.Currency, username)
	os.notifyAdmin(ctx, adminText, notifier.AdminOrderMenu(order.ID))

	payText := os.texts.UIText(ctx, "ORDER_PAYMENT", nil)
	if err := os.notifier.Send(ctx, order.ChatID, payText, notifier.PaymentMenu(os.cfg.PaymentLink)); err != nil {
		os.logger.Warn("send payment prompt",
			zap.Uint64("order", order.ID), zap.Error(err))
	}

	return order, nil
}

// MarkPaid flips the buyer's most recent pending order to paid and asks the
// admin to verify. A raced order yields models.ErrConflictData untouched.
func (os *OrderService) MarkPaid(ctx context.Context, chatID int64) (*models.Order, error) {
	order, err := os.repo.MarkLatestPaid(ctx, chatID)
	if err != nil {
		return nil, err
	}

	adminText := fmt.Sprintf("💰 Пользователь отметил оплату заказа #%d\n\nПроверь и подтверди.", order.ID)
	os.notifyAdmin(ctx, adminText, notifier.AdminOrderMenu(order.ID))

	return order, nil
}

// Confirm moves the order to its confirmed terminal state and tells the buyer
func (os *OrderService) Confirm(ctx context.Context, id uint64) (*models.Order, error) {
	order, err := os.repo.ConfirmOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	text := os.texts.UIText(ctx, "ORDER_CONFIRMED", map[string]string{"email": order.Email})
	if err := os.notifier.Send(ctx, order.ChatID, text, nil); err != nil {
		os.logger.Warn("notify buyer about confirmed order",
			zap.Uint64("order", order.ID), zap.Error(err))
	}

	return order, nil
}

// Reject cancels the order and tells the buyer
func (os *OrderService) Reject(ctx context.Context, id uint64) (*models.Order, error) {
	order, err := os.repo.RejectOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	text := os.texts.UIText(ctx, "ORDER_REJECTED", nil)
	if err := os.notifier.Send(ctx, order.ChatID, text, nil); err != nil {
		os.logger.Warn("notify buyer about rejected order",
			zap.Uint64("order", order.ID), zap.Error(err))
	}

	return order, nil
}

// ListOrders returns most recent orders for the admin view
func (os *OrderService) ListOrders(ctx context.Context, limit int) ([]models.Order, error) {
	return os.repo.ListOrders(ctx, limit)
}

func (os *OrderService) notifyAdmin(ctx context.Context, text string, markup json.RawMessage) {
	if err := os.notifier.Send(ctx, os.cfg.AdminChatID, text, markup); err != nil {
		os.logger.Warn("notify admin", zap.Error(err))
	}
}
