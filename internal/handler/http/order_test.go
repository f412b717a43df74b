package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vlasenka/pausebot/internal/models"
)

type stubOrderService struct {
	checkout func(ctx context.Context, chatID int64, name, email, username string) (*models.Order, error)
	markPaid func(ctx context.Context, chatID int64) (*models.Order, error)
}

func (s *stubOrderService) Checkout(ctx context.Context, chatID int64, name, email, username string) (*models.Order, error) {
	return s.checkout(ctx, chatID, name, email, username)
}

func (s *stubOrderService) MarkPaid(ctx context.Context, chatID int64) (*models.Order, error) {
	return s.markPaid(ctx, chatID)
}

func TestOrderHandler_Checkout(t *testing.T) {
	createdAt := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           string
		svc            *stubOrderService
		wantStatusCode int
		wantBody       *orderResponse
	}{
		{
			// 201 — заказ создан;
			name: "valid_request_return_201",
			body: `{"chat_id":555,"name":"Аня","email":"a@b.co","username":"anya"}`,
			svc: &stubOrderService{
				checkout: func(_ context.Context, chatID int64, name, email, _ string) (*models.Order, error) {
					return &models.Order{
						ID: 7, ChatID: chatID, Name: name, Email: email,
						Amount: 79, Currency: "EUR",
						Status: models.StatusPending, CreatedAt: createdAt,
					}, nil
				},
			},
			wantStatusCode: http.StatusCreated,
			wantBody: &orderResponse{
				ID:        7,
				Status:    models.StatusPending,
				Amount:    79,
				Currency:  "EUR",
				CreatedAt: createdAt.Format(time.RFC3339),
			},
		},
		{
			// 400 — не JSON;
			name:           "malformed_body_return_400",
			body:           "not json",
			svc:            &stubOrderService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 400 — нет chat_id;
			name:           "missing_chat_id_return_400",
			body:           `{"name":"Аня","email":"a@b.co"}`,
			svc:            &stubOrderService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 400 — пустое имя;
			name:           "blank_name_return_400",
			body:           `{"chat_id":555,"name":"   ","email":"a@b.co"}`,
			svc:            &stubOrderService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 400 — некорректный email;
			name:           "invalid_email_return_400",
			body:           `{"chat_id":555,"name":"Аня","email":"nope"}`,
			svc:            &stubOrderService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 500 — внутренняя ошибка сервера.
			name: "internal_error_return_500",
			body: `{"chat_id":555,"name":"Аня","email":"a@b.co"}`,
			svc: &stubOrderService{
				checkout: func(_ context.Context, _ int64, _, _, _ string) (*models.Order, error) {
					return nil, models.ErrInternalError
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h := NewOrderHandler(tt.svc).Checkout()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantBody != nil {
				resBody, err := io.ReadAll(res.Body)
				require.NoError(t, err)

				var got orderResponse
				require.NoError(t, json.Unmarshal(resBody, &got))

				if diff := cmp.Diff(*tt.wantBody, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestOrderHandler_MarkPaid(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		svc            *stubOrderService
		wantStatusCode int
	}{
		{
			// 200 — заказ отмечен оплаченным;
			name: "valid_request_return_200",
			body: `{"chat_id":555}`,
			svc: &stubOrderService{
				markPaid: func(_ context.Context, chatID int64) (*models.Order, error) {
					return &models.Order{ID: 7, ChatID: chatID, Status: models.StatusPaid}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			// 400 — неверный формат запроса;
			name:           "missing_chat_id_return_400",
			body:           `{}`,
			svc:            &stubOrderService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 404 — нет ожидающего оплаты заказа;
			name: "no_pending_order_return_404",
			body: `{"chat_id":555}`,
			svc: &stubOrderService{
				markPaid: func(_ context.Context, _ int64) (*models.Order, error) {
					return nil, models.ErrDataNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			// 409 — заказ уже обработан;
			name: "already_handled_return_409",
			body: `{"chat_id":555}`,
			svc: &stubOrderService{
				markPaid: func(_ context.Context, _ int64) (*models.Order, error) {
					return nil, models.ErrConflictData
				},
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			// 500 — внутренняя ошибка сервера.
			name: "internal_error_return_500",
			body: `{"chat_id":555}`,
			svc: &stubOrderService{
				markPaid: func(_ context.Context, _ int64) (*models.Order, error) {
					return nil, models.ErrInternalError
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/orders/paid", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h := NewOrderHandler(tt.svc).MarkPaid()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
		})
	}
}
