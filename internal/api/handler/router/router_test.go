package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(
		Route{
			Path:    "/v1/dashboard/:people_id/sales",
			Method:  http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "handler")
				_, _ = w.Write([]byte(httprouter.ParamsFromContext(r.Context()).ByName("people_id")))
			}),
			Middlewares: []func(http.Handler) http.Handler{tag("primeiro"), tag("segundo")},
		},
		Route{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
		},
	))

	t.Run("Middlewares executam na ordem da lista", func(t *testing.T) {
		order = nil
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/123/sales", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "123", rec.Body.String())
		assert.Equal(t, []string{"primeiro", "segundo", "handler"}, order)
	})

	t.Run("Rota inexistente responde 404 padronizado", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nada", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_005")
	})

	t.Run("Método não suportado responde 405 padronizado", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/healthcheck", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_006")
	})

	t.Run("Lista de rotas ordenada", func(t *testing.T) {
		assert.Equal(t, []string{
			"GET /healthcheck",
			"GET /v1/dashboard/:people_id/sales",
		}, rt.Routes())
	})
}
