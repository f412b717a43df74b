package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vlasenka/pausebot/internal/models"
)

type stubAuthService struct {
	token string
	err   error
}

func (s *stubAuthService) Login(_, _ string) (string, error) {
	return s.token, s.err
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		svc            *stubAuthService
		wantStatusCode int
		wantCookie     bool
	}{
		{
			// 200 — администратор успешно аутентифицирован;
			name:           "valid_credentials_return_200",
			body:           `{"login":"admin","password":"secret"}`,
			svc:            &stubAuthService{token: "signed.jwt.token"},
			wantStatusCode: http.StatusOK,
			wantCookie:     true,
		},
		{
			// 400 — неверный формат запроса;
			name:           "malformed_body_return_400",
			body:           "not json",
			svc:            &stubAuthService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 400 — пустые поля;
			name:           "empty_credentials_return_400",
			body:           `{"login":"","password":""}`,
			svc:            &stubAuthService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 401 — неверная пара логин/пароль;
			name:           "wrong_credentials_return_401",
			body:           `{"login":"admin","password":"guess"}`,
			svc:            &stubAuthService{err: models.ErrInvalidCredentials},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			// 500 — внутренняя ошибка сервера.
			name:           "internal_error_return_500",
			body:           `{"login":"admin","password":"secret"}`,
			svc:            &stubAuthService{err: models.ErrInternalError},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h := NewAuthHandler(tt.svc).Login()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantCookie {
				cookies := res.Cookies()
				require.Len(t, cookies, 1)
				assert.Equal(t, "auth_token", cookies[0].Name)
				assert.Equal(t, "signed.jwt.token", cookies[0].Value)
				assert.True(t, cookies[0].HttpOnly)
			}
		})
	}
}
