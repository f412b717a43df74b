package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vlasenka/pausebot/internal/models"
)

// shipping field limits, same as the dialog flow enforces
const (
	minNameLength    = 2
	maxNameLength    = 100
	minAddressLength = 20
	maxAddressLength = 500
)

var phoneRe = regexp.MustCompile(`^\+?[0-9\s\-\(\)]{7,20}$`)

// BoxOrderService is interface for box pre-order operations reachable from
// the bot frontend
type BoxOrderService interface {
	// Checkout creates a pending box pre-order for the next box month
	Checkout(ctx context.Context, chatID int64) (*models.BoxOrder, error)
	// UpdateShipping fills the buyer's name, phone and address
	UpdateShipping(ctx context.Context, id uint64, name, phone, address, username string) (*models.BoxOrder, error)
	// MarkPaid flips the buyer's most recent pending box order to paid
	MarkPaid(ctx context.Context, chatID int64) (*models.BoxOrder, error)
}

// BoxOrderHandler represents HTTP handler for box-order-related requests
type BoxOrderHandler struct {
	svc BoxOrderService
}

// NewBoxOrderHandler creates new BoxOrderHandler instance
func NewBoxOrderHandler(svc BoxOrderService) *BoxOrderHandler {
	return &BoxOrderHandler{svc: svc}
}

type boxOrderResponse struct {
	ID        uint64 `json:"id"`
	Status    string `json:"status"`
	BoxMonth  string `json:"box_month"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	CreatedAt string `json:"created_at"`
	PaidAt    string `json:"paid_at,omitempty"`
}

func toBoxOrderResponse(order *models.BoxOrder) boxOrderResponse {
	resp := boxOrderResponse{
		ID:        order.ID,
		Status:    order.Status,
		BoxMonth:  order.BoxMonth,
		Amount:    order.Amount,
		Currency:  order.Currency,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
	}
	if order.PaidAt != nil {
		resp.PaidAt = order.PaidAt.Format(time.RFC3339)
	}
	return resp
}

// Checkout creates a box pre-order
// 201 — предзаказ создан;
// 400 — неверный формат запроса;
// 500 — внутренняя ошибка сервера.
func (bh *BoxOrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req markPaidRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ChatID == 0 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		order, err := bh.svc.Checkout(r.Context(), req.ChatID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toBoxOrderResponse(order)); err != nil {
			return
		}
	}
}

type shippingRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Username string `json:"username"`
}

func (req *shippingRequest) validate() string {
	name := strings.TrimSpace(req.Name)
	if len([]rune(name)) < minNameLength || len([]rune(name)) > maxNameLength {
		return "invalid name"
	}
	if !phoneRe.MatchString(strings.TrimSpace(req.Phone)) {
		return "invalid phone"
	}
	address := strings.TrimSpace(req.Address)
	if len([]rune(address)) < minAddressLength || len([]rune(address)) > maxAddressLength {
		return "invalid address"
	}
	return ""
}

// UpdateShipping fills shipping fields on the box order
// 200 — данные сохранены;
// 400 — неверный идентификатор или данные доставки;
// 404 — заказ не найден;
// 500 — внутренняя ошибка сервера.
func (bh *BoxOrderHandler) UpdateShipping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := orderIDFromURL(r)
		if err != nil {
			http.Error(w, "invalid order id", http.StatusBadRequest)
			return
		}

		var req shippingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if msg := req.validate(); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		order, err := bh.svc.UpdateShipping(r.Context(), id,
			strings.TrimSpace(req.Name), strings.TrimSpace(req.Phone),
			strings.TrimSpace(req.Address), req.Username)
		if err != nil {
			if errors.Is(err, models.ErrDataNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(toBoxOrderResponse(order)); err != nil {
			return
		}
	}
}

// MarkPaid handles the buyer's "I paid" action for the box
// 200 — заказ отмечен оплаченным;
// 400 — неверный формат запроса;
// 404 — нет ожидающего оплаты предзаказа;
// 409 — предзаказ уже обработан;
// 500 — внутренняя ошибка сервера.
func (bh *BoxOrderHandler) MarkPaid() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req markPaidRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ChatID == 0 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		order, err := bh.svc.MarkPaid(r.Context(), req.ChatID)
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
		if err := json.NewEncoder(w).Encode(toBoxOrderResponse(order)); err != nil {
			return
		}
	}
}

// orderIDFromURL parses the numeric id path parameter. Untrusted trigger
// input is rejected before any lock is taken.
func orderIDFromURL(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, models.ErrInvalidOrderID
	}
	return id, nil
}
