package health

import (
	"context"
	"net/http"
	"time"

	"github.com/you-humble/fleet-maintenance/platform/logger"
)

type Probe func(ctx context.Context) error

// Handler answers SERVING when every probe passes within timeout, NOT_SERVING otherwise.
func Handler(timeout time.Duration, probes map[string]Probe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		for name, probe := range probes {
			if err := probe(ctx); err != nil {
				logger.Warn(ctx, "health probe failed", logger.String("probe", name), logger.ErrorF(err))
				write(w, r, http.StatusServiceUnavailable, "NOT_SERVING")
				return
			}
		}

		write(w, r, http.StatusOK, "SERVING")
	}
}

func write(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Error(r.Context(), "health check", logger.ErrorF(err))
	}
}
