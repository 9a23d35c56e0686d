package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

type fakeAuthenticator struct {
	claims map[string]*domain.Claims
}

func (f fakeAuthenticator) GenerateToken(peopleID string, admin bool) (*domain.TokenResponse, error) {
	return nil, nil
}

func (f fakeAuthenticator) ValidateToken(tokenString string) (*domain.Claims, error) {
	if claims, ok := f.claims[tokenString]; ok {
		return claims, nil
	}
	return nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "")
}

func newProtectedRouter(enabled bool) http.Handler {
	auth := fakeAuthenticator{claims: map[string]*domain.Claims{
		"cliente": {PeopleID: "123"},
		"admin":   {Admin: true},
	}}

	router := httprouter.New()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.Handler(http.MethodGet, "/v1/dashboard/:people_id/sales", OwnerOnly(enabled)(ok))
	router.Handler(http.MethodPost, "/v1/cron/run/:type", AdminOnly(enabled)(ok))
	router.Handler(http.MethodGet, "/healthcheck", ok)

	return AuthMiddleware(auth, enabled)(router)
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		method  string
		path    string
		header  string
		status  int
	}{
		{name: "Autenticação desabilitada libera tudo", enabled: false, method: http.MethodGet, path: "/v1/dashboard/999/sales", status: http.StatusNoContent},
		{name: "Healthcheck é público", enabled: true, method: http.MethodGet, path: "/healthcheck", status: http.StatusNoContent},
		{name: "Sem token", enabled: true, method: http.MethodGet, path: "/v1/dashboard/123/sales", status: http.StatusUnauthorized},
		{name: "Cabeçalho sem Bearer", enabled: true, method: http.MethodGet, path: "/v1/dashboard/123/sales", header: "cliente", status: http.StatusUnauthorized},
		{name: "Token expirado", enabled: true, method: http.MethodGet, path: "/v1/dashboard/123/sales", header: "Bearer velho", status: http.StatusUnauthorized},
		{name: "Cliente acessa o próprio painel", enabled: true, method: http.MethodGet, path: "/v1/dashboard/123/sales", header: "Bearer cliente", status: http.StatusNoContent},
		{name: "Token por query string", enabled: true, method: http.MethodGet, path: "/v1/dashboard/123/sales?token=cliente", status: http.StatusNoContent},
		{name: "Cliente não acessa outro painel", enabled: true, method: http.MethodGet, path: "/v1/dashboard/456/sales", header: "Bearer cliente", status: http.StatusForbidden},
		{name: "Admin acessa qualquer painel", enabled: true, method: http.MethodGet, path: "/v1/dashboard/456/sales", header: "Bearer admin", status: http.StatusNoContent},
		{name: "Cliente não executa cron", enabled: true, method: http.MethodPost, path: "/v1/cron/run/cache-warmup", header: "Bearer cliente", status: http.StatusForbidden},
		{name: "Admin executa cron", enabled: true, method: http.MethodPost, path: "/v1/cron/run/cache-warmup", header: "Bearer admin", status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			newProtectedRouter(tt.enabled).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
