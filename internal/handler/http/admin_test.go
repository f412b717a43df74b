package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vlasenka/pausebot/internal/models"
)

type stubOrderAdmin struct {
	transition func(ctx context.Context, id uint64) (*models.Order, error)
	list       func(ctx context.Context, limit int) ([]models.Order, error)
}

func (s *stubOrderAdmin) Confirm(ctx context.Context, id uint64) (*models.Order, error) {
	return s.transition(ctx, id)
}

func (s *stubOrderAdmin) Reject(ctx context.Context, id uint64) (*models.Order, error) {
	return s.transition(ctx, id)
}

func (s *stubOrderAdmin) ListOrders(ctx context.Context, limit int) ([]models.Order, error) {
	return s.list(ctx, limit)
}

type stubBoxOrderAdmin struct {
	transition func(ctx context.Context, id uint64) (*models.BoxOrder, error)
	list       func(ctx context.Context, limit int) ([]models.BoxOrder, error)
}

func (s *stubBoxOrderAdmin) Confirm(ctx context.Context, id uint64) (*models.BoxOrder, error) {
	return s.transition(ctx, id)
}

func (s *stubBoxOrderAdmin) Reject(ctx context.Context, id uint64) (*models.BoxOrder, error) {
	return s.transition(ctx, id)
}

func (s *stubBoxOrderAdmin) Ship(ctx context.Context, id uint64) (*models.BoxOrder, error) {
	return s.transition(ctx, id)
}

func (s *stubBoxOrderAdmin) Deliver(ctx context.Context, id uint64) (*models.BoxOrder, error) {
	return s.transition(ctx, id)
}

func (s *stubBoxOrderAdmin) ListBoxOrders(ctx context.Context, limit int) ([]models.BoxOrder, error) {
	return s.list(ctx, limit)
}

type stubStats struct {
	stats func(ctx context.Context) (*models.Stats, error)
}

func (s *stubStats) Stats(ctx context.Context) (*models.Stats, error) {
	return s.stats(ctx)
}

// withURLParam puts a chi route parameter into the request context
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestAdminHandler_ConfirmOrder(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		transition     func(ctx context.Context, id uint64) (*models.Order, error)
		wantStatusCode int
	}{
		{
			// 200 — заказ подтверждён;
			name: "valid_request_return_200",
			id:   "7",
			transition: func(_ context.Context, id uint64) (*models.Order, error) {
				return &models.Order{ID: id, Status: models.StatusConfirmed}, nil
			},
			wantStatusCode: http.StatusOK,
		},
		{
			// 400 — неверный идентификатор заказа;
			name:           "non_numeric_id_return_400",
			id:             "abc",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 404 — заказ не найден;
			name: "unknown_order_return_404",
			id:   "7",
			transition: func(_ context.Context, _ uint64) (*models.Order, error) {
				return nil, models.ErrDataNotFound
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			// 409 — заказ уже обработан;
			name: "already_handled_return_409",
			id:   "7",
			transition: func(_ context.Context, _ uint64) (*models.Order, error) {
				return nil, models.ErrConflictData
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			// 500 — внутренняя ошибка сервера.
			name: "internal_error_return_500",
			id:   "7",
			transition: func(_ context.Context, _ uint64) (*models.Order, error) {
				return nil, models.ErrInternalError
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/"+tt.id+"/confirm", nil)
			req = withURLParam(req, "id", tt.id)
			w := httptest.NewRecorder()

			ah := NewAdminHandler(&stubOrderAdmin{transition: tt.transition}, &stubBoxOrderAdmin{}, &stubStats{})
			h := ah.ConfirmOrder()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
		})
	}
}

func TestAdminHandler_BoxTransitions(t *testing.T) {
	order := &models.BoxOrder{ID: 9, Status: models.StatusShipped}

	boxes := &stubBoxOrderAdmin{
		transition: func(_ context.Context, id uint64) (*models.BoxOrder, error) {
			assert.Equal(t, uint64(9), id)
			return order, nil
		},
	}
	ah := NewAdminHandler(&stubOrderAdmin{}, boxes, &stubStats{})

	handlers := map[string]http.HandlerFunc{
		"confirm": ah.ConfirmBoxOrder(),
		"reject":  ah.RejectBoxOrder(),
		"ship":    ah.ShipBoxOrder(),
		"deliver": ah.DeliverBoxOrder(),
	}

	for action, h := range handlers {
		t.Run(action, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/boxorders/9/"+action, nil)
			req = withURLParam(req, "id", "9")
			w := httptest.NewRecorder()

			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, http.StatusOK, res.StatusCode)
		})
	}
}

func TestAdminHandler_ListOrders(t *testing.T) {
	orders := &stubOrderAdmin{
		list: func(_ context.Context, limit int) ([]models.Order, error) {
			assert.Equal(t, 5, limit)
			return []models.Order{{ID: 1, Status: models.StatusPaid}}, nil
		},
	}
	ah := NewAdminHandler(orders, &stubBoxOrderAdmin{}, &stubStats{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders?limit=5", nil)
	w := httptest.NewRecorder()

	h := ah.ListOrders()
	h(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var got []adminOrderResponse
	require.NoError(t, json.Unmarshal(resBody, &got))
	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, models.StatusPaid, got[0].Status)
}

func TestAdminHandler_ListOrders_DefaultLimit(t *testing.T) {
	orders := &stubOrderAdmin{
		list: func(_ context.Context, limit int) ([]models.Order, error) {
			assert.Equal(t, defaultListLimit, limit)
			return nil, nil
		},
	}
	ah := NewAdminHandler(orders, &stubBoxOrderAdmin{}, &stubStats{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders?limit=bogus", nil)
	w := httptest.NewRecorder()

	h := ah.ListOrders()
	h(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestAdminHandler_Stats(t *testing.T) {
	stats := &stubStats{
		stats: func(_ context.Context) (*models.Stats, error) {
			return &models.Stats{
				Users:     12,
				Orders:    map[string]int64{models.StatusConfirmed: 3},
				BoxOrders: map[string]int64{models.StatusPending: 1},
				Revenue:   237,
			}, nil
		},
	}
	ah := NewAdminHandler(&stubOrderAdmin{}, &stubBoxOrderAdmin{}, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	w := httptest.NewRecorder()

	h := ah.Stats()
	h(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var got statsResponse
	require.NoError(t, json.Unmarshal(resBody, &got))
	assert.Equal(t, int64(12), got.Users)
	assert.Equal(t, int64(3), got.Orders[models.StatusConfirmed])
	assert.Equal(t, int64(237), got.Revenue)
}

func TestAdminHandler_Stats_InternalError(t *testing.T) {
	stats := &stubStats{
		stats: func(_ context.Context) (*models.Stats, error) {
			return nil, models.ErrInternalError
		},
	}
	ah := NewAdminHandler(&stubOrderAdmin{}, &stubBoxOrderAdmin{}, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	w := httptest.NewRecorder()

	h := ah.Stats()
	h(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}
