package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareChainPassesThrough(t *testing.T) {
	t.Parallel()

	var sawRequestID string
	r := chi.NewRouter()
	r.Use(chimw.RequestID, RequestLogger, Metrics)
	r.Get("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		sawRequestID = chimw.GetReqID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things/42", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, sawRequestID)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nothing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
