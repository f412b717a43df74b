package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vlasenka/pausebot/internal/models"
)

type stubBoxOrderService struct {
	checkout       func(ctx context.Context, chatID int64) (*models.BoxOrder, error)
	updateShipping func(ctx context.Context, id uint64, name, phone, address, username string) (*models.BoxOrder, error)
	markPaid       func(ctx context.Context, chatID int64) (*models.BoxOrder, error)
}

func (s *stubBoxOrderService) Checkout(ctx context.Context, chatID int64) (*models.BoxOrder, error) {
	return s.checkout(ctx, chatID)
}

func (s *stubBoxOrderService) UpdateShipping(ctx context.Context, id uint64, name, phone, address, username string) (*models.BoxOrder, error) {
	return s.updateShipping(ctx, id, name, phone, address, username)
}

func (s *stubBoxOrderService) MarkPaid(ctx context.Context, chatID int64) (*models.BoxOrder, error) {
	return s.markPaid(ctx, chatID)
}

func TestShippingRequest_Validate(t *testing.T) {
	validAddress := "Германия, Берлин, Унтер-ден-Линден 5, кв. 12, 10117"

	tests := []struct {
		name    string
		req     shippingRequest
		wantMsg string
	}{
		{
			name: "valid",
			req:  shippingRequest{Name: "Аня", Phone: "+7 999 123 45 67", Address: validAddress},
		},
		{
			name:    "name_too_short",
			req:     shippingRequest{Name: "А", Phone: "+7 999 123 45 67", Address: validAddress},
			wantMsg: "invalid name",
		},
		{
			name:    "name_too_long",
			req:     shippingRequest{Name: strings.Repeat("а", 101), Phone: "+7 999 123 45 67", Address: validAddress},
			wantMsg: "invalid name",
		},
		{
			name:    "phone_with_letters",
			req:     shippingRequest{Name: "Аня", Phone: "call me", Address: validAddress},
			wantMsg: "invalid phone",
		},
		{
			name:    "phone_too_short",
			req:     shippingRequest{Name: "Аня", Phone: "+1234", Address: validAddress},
			wantMsg: "invalid phone",
		},
		{
			name: "phone_with_parentheses",
			req:  shippingRequest{Name: "Аня", Phone: "+7 (999) 123-45-67", Address: validAddress},
		},
		{
			name:    "address_too_short",
			req:     shippingRequest{Name: "Аня", Phone: "+7 999 123 45 67", Address: "Берлин"},
			wantMsg: "invalid address",
		},
		{
			name:    "address_too_long",
			req:     shippingRequest{Name: "Аня", Phone: "+7 999 123 45 67", Address: strings.Repeat("у", 501)},
			wantMsg: "invalid address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.req.validate())
		})
	}
}

func TestBoxOrderHandler_UpdateShipping(t *testing.T) {
	body := `{"name":"Аня","phone":"+7 999 123 45 67","address":"Германия, Берлин, Унтер-ден-Линден 5, кв. 12, 10117","username":"anya"}`

	tests := []struct {
		name           string
		id             string
		body           string
		svc            *stubBoxOrderService
		wantStatusCode int
	}{
		{
			// 200 — данные сохранены;
			name: "valid_request_return_200",
			id:   "9",
			body: body,
			svc: &stubBoxOrderService{
				updateShipping: func(_ context.Context, id uint64, name, phone, address, _ string) (*models.BoxOrder, error) {
					return &models.BoxOrder{ID: id, Name: name, Phone: phone, Address: address, Status: models.StatusPending}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			// 400 — неверный идентификатор;
			name:           "non_numeric_id_return_400",
			id:             "abc",
			body:           body,
			svc:            &stubBoxOrderService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 400 — некорректные данные доставки;
			name:           "short_address_return_400",
			id:             "9",
			body:           `{"name":"Аня","phone":"+7 999 123 45 67","address":"Берлин"}`,
			svc:            &stubBoxOrderService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 404 — заказ не найден;
			name: "unknown_order_return_404",
			id:   "9",
			body: body,
			svc: &stubBoxOrderService{
				updateShipping: func(_ context.Context, _ uint64, _, _, _, _ string) (*models.BoxOrder, error) {
					return nil, models.ErrDataNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			// 500 — внутренняя ошибка сервера.
			name: "internal_error_return_500",
			id:   "9",
			body: body,
			svc: &stubBoxOrderService{
				updateShipping: func(_ context.Context, _ uint64, _, _, _, _ string) (*models.BoxOrder, error) {
					return nil, models.ErrInternalError
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/boxorders/"+tt.id+"/shipping", strings.NewReader(tt.body))
			req = withURLParam(req, "id", tt.id)
			w := httptest.NewRecorder()

			h := NewBoxOrderHandler(tt.svc).UpdateShipping()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
		})
	}
}
