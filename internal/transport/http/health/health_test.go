package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		probes   map[string]Probe
		wantCode int
		wantBody string
	}{
		{
			name:     "no probes",
			wantCode: http.StatusOK,
			wantBody: "SERVING",
		},
		{
			name: "store reachable",
			probes: map[string]Probe{
				"store": func(context.Context) error { return nil },
			},
			wantCode: http.StatusOK,
			wantBody: "SERVING",
		},
		{
			name: "store down",
			probes: map[string]Probe{
				"store": func(context.Context) error { return errors.New("connection refused") },
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: "NOT_SERVING",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			Handler(time.Second, tt.probes)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}
