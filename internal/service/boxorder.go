package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vlasenka/pausebot/config"
	"github.com/vlasenka/pausebot/internal/models"
	"github.com/vlasenka/pausebot/internal/notifier"
	"go.uber.org/zap"
)

// BoxOrderRepository is interface for interacting with box-order data
type BoxOrderRepository interface {
	// CreateBoxOrder inserts new pending box order
	CreateBoxOrder(ctx context.Context, order *models.BoxOrder) (*models.BoxOrder, error)
	// GetBoxOrderByID returns box order by id
	GetBoxOrderByID(ctx context.Context, id uint64) (*models.BoxOrder, error)
	// ListBoxOrders returns most recent box orders
	ListBoxOrders(ctx context.Context, limit int) ([]models.BoxOrder, error)
	// UpdateShipping fills shipping fields on the box order
	UpdateShipping(ctx context.Context, id uint64, name, phone, address string) (*models.BoxOrder, error)
	// MarkLatestPaid marks the buyer's most recent pending box order as paid
	MarkLatestPaid(ctx context.Context, chatID int64) (*models.BoxOrder, error)
	// ConfirmBoxOrder moves box order to confirmed
	ConfirmBoxOrder(ctx context.Context, id uint64) (*models.BoxOrder, error)
	// RejectBoxOrder moves box order to cancelled
	RejectBoxOrder(ctx context.Context, id uint64) (*models.BoxOrder, error)
	// ShipBoxOrder moves confirmed box order to shipped
	ShipBoxOrder(ctx context.Context, id uint64) (*models.BoxOrder, error)
	// DeliverBoxOrder moves shipped box order to delivered
	DeliverBoxOrder(ctx context.Context, id uint64) (*models.BoxOrder, error)
}

// BoxOrderService owns the physical box pre-order lifecycle
type BoxOrderService struct {
	repo     BoxOrderRepository
	texts    UITexts
	notifier Notifier
	cfg      *config.Config
	logger   *zap.Logger
}

// NewBoxOrderService creates new BoxOrderService instance
func NewBoxOrderService(repo BoxOrderRepository, texts UITexts, nt Notifier, cfg *config.Config, logger *zap.Logger) *BoxOrderService {
	return &BoxOrderService{
		repo:     repo,
		texts:    texts,
		notifier: nt,
		cfg:      cfg,
		logger:   logger,
	}
}

// Checkout creates a pending box pre-order for the next box month.
// Shipping fields are collected later by the dialog flow.
func (bs *BoxOrderService) Checkout(ctx context.Context, chatID int64) (*models.BoxOrder, error) {
	monthKey, _ := NextBoxMonth(time.Now())

	order := &models.BoxOrder{
		ChatID:   chatID,
		BoxMonth: monthKey,
		Amount:   bs.cfg.ProductPrice,
		Currency: bs.cfg.ProductCurrency,
		Status:   models.StatusPending,
	}

	return bs.repo.CreateBoxOrder(ctx, order)
}

// UpdateShipping fills the buyer's name, phone and address and notifies the
// admin that the pre-order is complete
func (bs *BoxOrderService) UpdateShipping(ctx context.Context, id uint64, name, phone, address, username string) (*models.BoxOrder, error) {
	order, err := bs.repo.UpdateShipping(ctx, id, name, phone, address)
	if err != nil {
		return nil, err
	}

	monthDisplay := monthDisplayForKey(order.BoxMonth)
	if username == "" {
		username = "—"
	}
	adminText := fmt.Sprintf("Новый предзаказ набора #%d\n\nИмя: %s\nТелефон: %s\nАдрес: %s\nНабор: 1 %s\nСумма: %d %s\nTelegram: @%s",
		order.ID, order.Name, order.Phone, order.Address, monthDisplay,
		order.Amount, order.Currency, username)
	bs.notifyAdmin(ctx, adminText, notifier.AdminBoxOrderMenu(order.ID))

	payText := bs.texts.UIText(ctx, "BOX_PAYMENT", nil)
	if err := bs.notifier.Send(ctx, order.ChatID, payText, notifier.PaymentMenu(bs.cfg.PaymentLink)); err != nil {
		bs.logger.Warn("send payment prompt",
			zap.Uint64("order", order.ID), zap.Error(err))
	}

	return order, nil
}

// MarkPaid flips the buyer's most recent pending box order to paid and asks
// the admin to verify
func (bs *BoxOrderService) MarkPaid(ctx context.Context, chatID int64) (*models.BoxOrder, error) {
	order, err := bs.repo.MarkLatestPaid(ctx, chatID)
	if err != nil {
		return nil, err
	}

	adminText := fmt.Sprintf("💰 Пользователь отметил оплату предзаказа набора #%d\n\nПроверь и подтверди.", order.ID)
	bs.notifyAdmin(ctx, adminText, notifier.AdminBoxOrderMenu(order.ID))

	return order, nil
}

// Confirm moves the box order to confirmed and tells the buyer
func (bs *BoxOrderService) Confirm(ctx context.Context, id uint64) (*models.BoxOrder, error) {
	order, err := bs.repo.ConfirmBoxOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	month := monthDisplayForKey(order.BoxMonth)
	text := bs.texts.UIText(ctx, "BOX_CONFIRMED", map[string]string{"month": month})
	if err := bs.notifier.Send(ctx, order.ChatID, text, nil); err != nil {
		bs.logger.Warn("notify buyer about confirmed box order",
			zap.Uint64("order", order.ID), zap.Error(err))
	}

	return order, nil
}

// Reject cancels the box order and tells the buyer. Shipped and delivered
// boxes cannot be rejected.
func (bs *BoxOrderService) Reject(ctx context.Context, id uint64) (*models.BoxOrder, error) {
	order, err := bs.repo.RejectBoxOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	text := bs.texts.UIText(ctx, "ORDER_REJECTED", nil)
	if err := bs.notifier.Send(ctx, order.ChatID, text, nil); err != nil {
		bs.logger.Warn("notify buyer about rejected box order",
			zap.Uint64("order", order.ID), zap.Error(err))
	}

	return order, nil
}

// Ship marks a confirmed box order as shipped
func (bs *BoxOrderService) Ship(ctx context.Context, id uint64) (*models.BoxOrder, error) {
	return bs.repo.ShipBoxOrder(ctx, id)
}

// Deliver marks a shipped box order as delivered
func (bs *BoxOrderService) Deliver(ctx context.Context, id uint64) (*models.BoxOrder, error) {
	return bs.repo.DeliverBoxOrder(ctx, id)
}

// ListBoxOrders returns most recent box orders for the admin view
func (bs *BoxOrderService) ListBoxOrders(ctx context.Context, limit int) ([]models.BoxOrder, error) {
	return bs.repo.ListBoxOrders(ctx, limit)
}

func (bs *BoxOrderService) notifyAdmin(ctx context.Context, text string, markup json.RawMessage) {
	if err := bs.notifier.Send(ctx, bs.cfg.AdminChatID, text, markup); err != nil {
		bs.logger.Warn("notify admin", zap.Error(err))
	}
}

// monthDisplayForKey renders the "YYYY-MM" box month key in genitive form
func monthDisplayForKey(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return monthsGenitive[t.Month()]
}
