package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	fleetv1 "github.com/you-humble/fleet-maintenance/internal/api/fleet/v1"
	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

const (
	ActorHeader = "X-Actor"

	maxBodyBytes = 1 << 20
)

func actor(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(ActorHeader))
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, r, errors.Join(model.ErrValidation, fmt.Errorf("malformed request body: %w", err)))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(r.Context(), "write response", logger.ErrorF(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.ErrorF(err),
		)
	}

	writeJSON(w, r, status, fleetv1.ErrorResponse{Code: status, Message: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, model.ErrRepairOrderNotFound),
		errors.Is(err, model.ErrStockItemNotFound),
		errors.Is(err, model.ErrUsedPartNotFound),
		errors.Is(err, model.ErrDispositionNotFound),
		errors.Is(err, model.ErrTechnicianNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, model.ErrInvalidTransition),
		errors.Is(err, model.ErrRepairOrderClosed),
		errors.Is(err, model.ErrDuplicateCode),
		errors.Is(err, model.ErrConcurrentUpdate):
		return http.StatusConflict // 409
	case errors.Is(err, model.ErrNothingRemaining),
		errors.Is(err, model.ErrQuantityExceedsRemaining),
		errors.Is(err, model.ErrInsufficientStock):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
