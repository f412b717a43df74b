package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/vlasenka/pausebot/internal/models"
)

const defaultListLimit = 20

// OrderAdminService is interface for the admin side of the order lifecycle
type OrderAdminService interface {
	// Confirm moves order to confirmed
	Confirm(ctx context.Context, id uint64) (*models.Order, error)
	// Reject moves order to cancelled
	Reject(ctx context.Context, id uint64) (*models.Order, error)
	// ListOrders returns most recent orders
	ListOrders(ctx context.Context, limit int) ([]models.Order, error)
}

// BoxOrderAdminService is interface for the admin side of the box lifecycle
type BoxOrderAdminService interface {
	// Confirm moves box order to confirmed
	Confirm(ctx context.Context, id uint64) (*models.BoxOrder, error)
	// Reject moves box order to cancelled
	Reject(ctx context.Context, id uint64) (*models.BoxOrder, error)
	// Ship moves confirmed box order to shipped
	Ship(ctx context.Context, id uint64) (*models.BoxOrder, error)
	// Deliver moves shipped box order to delivered
	Deliver(ctx context.Context, id uint64) (*models.BoxOrder, error)
	// ListBoxOrders returns most recent box orders
	ListBoxOrders(ctx context.Context, limit int) ([]models.BoxOrder, error)
}

// StatsService assembles the admin dashboard summary
type StatsService interface {
	Stats(ctx context.Context) (*models.Stats, error)
}

// AdminHandler represents HTTP handler for admin requests
type AdminHandler struct {
	orders OrderAdminService
	boxes  BoxOrderAdminService
	stats  StatsService
}

// NewAdminHandler creates new AdminHandler instance
func NewAdminHandler(orders OrderAdminService, boxes BoxOrderAdminService, stats StatsService) *AdminHandler {
	return &AdminHandler{
		orders: orders,
		boxes:  boxes,
		stats:  stats,
	}
}

type adminOrderResponse struct {
	ID          uint64 `json:"id"`
	ChatID      int64  `json:"chat_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	PaidAt      string `json:"paid_at,omitempty"`
	ConfirmedAt string `json:"confirmed_at,omitempty"`
}

func toAdminOrderResponse(order *models.Order) adminOrderResponse {
	resp := adminOrderResponse{
		ID:        order.ID,
		ChatID:    order.ChatID,
		Name:      order.Name,
		Email:     order.Email,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Status:    order.Status,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
	}
	if order.PaidAt != nil {
		resp.PaidAt = order.PaidAt.Format(time.RFC3339)
	}
	if order.ConfirmedAt != nil {
		resp.ConfirmedAt = order.ConfirmedAt.Format(time.RFC3339)
	}
	return resp
}

type adminBoxOrderResponse struct {
	ID          uint64 `json:"id"`
	ChatID      int64  `json:"chat_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	BoxMonth    string `json:"box_month"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	PaidAt      string `json:"paid_at,omitempty"`
	ConfirmedAt string `json:"confirmed_at,omitempty"`
	ShippedAt   string `json:"shipped_at,omitempty"`
	DeliveredAt string `json:"delivered_at,omitempty"`
}

func toAdminBoxOrderResponse(order *models.BoxOrder) adminBoxOrderResponse {
	resp := adminBoxOrderResponse{
		ID:        order.ID,
		ChatID:    order.ChatID,
		Name:      order.Name,
		Phone:     order.Phone,
		Address:   order.Address,
		BoxMonth:  order.BoxMonth,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Status:    order.Status,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
	}
	if order.PaidAt != nil {
		resp.PaidAt = order.PaidAt.Format(time.RFC3339)
	}
	if order.ConfirmedAt != nil {
		resp.ConfirmedAt = order.ConfirmedAt.Format(time.RFC3339)
	}
	if order.ShippedAt != nil {
		resp.ShippedAt = order.ShippedAt.Format(time.RFC3339)
	}
	if order.DeliveredAt != nil {
		resp.DeliveredAt = order.DeliveredAt.Format(time.RFC3339)
	}
	return resp
}

// ConfirmOrder confirms a paid (or pending) order
// 200 — заказ подтверждён;
// 400 — неверный идентификатор заказа;
// 401 — администратор не аутентифицирован;
// 404 — заказ не найден;
// 409 — заказ уже обработан;
// 500 — внутренняя ошибка сервера.
func (ah *AdminHandler) ConfirmOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ah.orderTransition(w, r, ah.orders.Confirm)
	}
}

// RejectOrder cancels an order that is not yet confirmed
// 200 — заказ отклонён;
// 400 — неверный идентификатор заказа;
// 401 — администратор не аутентифицирован;
// 404 — заказ не найден;
// 409 — заказ уже обработан;
// 500 — внутренняя ошибка сервера.
func (ah *AdminHandler) RejectOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ah.orderTransition(w, r, ah.orders.Reject)
	}
}

func (ah *AdminHandler) orderTransition(w http.ResponseWriter, r *http.Request, fn func(context.Context, uint64) (*models.Order, error)) {
	id, err := orderIDFromURL(r)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := fn(r.Context(), id)
	if err != nil {
		writeTransitionError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toAdminOrderResponse(order)); err != nil {
		return
	}
}

// ConfirmBoxOrder confirms a box pre-order
func (ah *AdminHandler) ConfirmBoxOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ah.boxTransition(w, r, ah.boxes.Confirm)
	}
}

// RejectBoxOrder cancels a box pre-order that has not shipped
func (ah *AdminHandler) RejectBoxOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ah.boxTransition(w, r, ah.boxes.Reject)
	}
}

// ShipBoxOrder marks a confirmed box as shipped
func (ah *AdminHandler) ShipBoxOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ah.boxTransition(w, r, ah.boxes.Ship)
	}
}

// DeliverBoxOrder marks a shipped box as delivered
func (ah *AdminHandler) DeliverBoxOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ah.boxTransition(w, r, ah.boxes.Deliver)
	}
}

func (ah *AdminHandler) boxTransition(w http.ResponseWriter, r *http.Request, fn func(context.Context, uint64) (*models.BoxOrder, error)) {
	id, err := orderIDFromURL(r)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := fn(r.Context(), id)
	if err != nil {
		writeTransitionError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toAdminBoxOrderResponse(order)); err != nil {
		return
	}
}

func writeTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrDataNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, models.ErrConflictData):
		http.Error(w, "already handled", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// ListOrders returns recent orders for the admin view
// 200 — успешная обработка запроса;
// 401 — администратор не аутентифицирован;
// 500 — внутренняя ошибка сервера.
func (ah *AdminHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := ah.orders.ListOrders(r.Context(), listLimit(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := make([]adminOrderResponse, 0, len(orders))
		for i := range orders {
			resp = append(resp, toAdminOrderResponse(&orders[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}

// ListBoxOrders returns recent box orders for the admin view
func (ah *AdminHandler) ListBoxOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := ah.boxes.ListBoxOrders(r.Context(), listLimit(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := make([]adminBoxOrderResponse, 0, len(orders))
		for i := range orders {
			resp = append(resp, toAdminBoxOrderResponse(&orders[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}

type statsResponse struct {
	Users     int64            `json:"users"`
	Orders    map[string]int64 `json:"orders"`
	BoxOrders map[string]int64 `json:"box_orders"`
	Revenue   int64            `json:"revenue"`
}

// Stats returns user count, order counts per status and confirmed revenue
// 200 — успешная обработка запроса;
// 401 — администратор не аутентифицирован;
// 500 — внутренняя ошибка сервера.
func (ah *AdminHandler) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := ah.stats.Stats(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(statsResponse{
			Users:     stats.Users,
			Orders:    stats.Orders,
			BoxOrders: stats.BoxOrders,
			Revenue:   stats.Revenue,
		}); err != nil {
			return
		}
	}
}

func listLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return defaultListLimit
	}
	return limit
}
