package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/vlasenka/pausebot/internal/models"
)

// OrderService is interface for digital order operations reachable from the
// bot frontend
type OrderService interface {
	// Checkout creates a pending order and notifies the admin
	Checkout(ctx context.Context, chatID int64, name, email, username string) (*models.Order, error)
	// MarkPaid flips the buyer's most recent pending order to paid
	MarkPaid(ctx context.Context, chatID int64) (*models.Order, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type checkoutRequest struct {
	ChatID   int64  `json:"chat_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type orderResponse struct {
	ID        uint64 `json:"id"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	CreatedAt string `json:"created_at"`
	PaidAt    string `json:"paid_at,omitempty"`
}

func toOrderResponse(order *models.Order) orderResponse {
	resp := orderResponse{
		ID:        order.ID,
		Status:    order.Status,
		Amount:    order.Amount,
		Currency:  order.Currency,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
	}
	if order.PaidAt != nil {
		resp.PaidAt = order.PaidAt.Format(time.RFC3339)
	}
	return resp
}

// Checkout creates a digital order
// 201 — заказ создан;
// 400 — неверный формат запроса;
// 401 — нет ключа API;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if req.ChatID == 0 || strings.TrimSpace(req.Name) == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		// same naive email check as the dialog flow
		if !strings.Contains(req.Email, "@") || !strings.Contains(req.Email, ".") {
			http.Error(w, "invalid email", http.StatusBadRequest)
			return
		}

		order, err := oh.svc.Checkout(r.Context(), req.ChatID, strings.TrimSpace(req.Name), req.Email, req.Username)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toOrderResponse(order)); err != nil {
			return
		}
	}
}

type markPaidRequest struct {
	ChatID int64 `json:"chat_id"`
}

// MarkPaid handles the buyer's "I paid" action
// 200 — заказ отмечен оплаченным;
// 400 — неверный формат запроса;
// 404 — нет ожидающего оплаты заказа;
// 409 — заказ уже обработан;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) MarkPaid() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req markPaidRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ChatID == 0 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		order, err := oh.svc.MarkPaid(r.Context(), req.ChatID)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "not found", http.StatusNotFound)
			case errors.Is(err, models.ErrConflictData):
				http.Error(w, "already handled", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(toOrderResponse(order)); err != nil {
			return
		}
	}
}
