package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	fleetv1 "github.com/you-humble/fleet-maintenance/internal/api/fleet/v1"
	"github.com/you-humble/fleet-maintenance/internal/converter"
	"github.com/you-humble/fleet-maintenance/internal/model"
)

func (h *handler) CreateTechnician(w http.ResponseWriter, r *http.Request) {
	var req fleetv1.CreateTechnicianRequest
	if !decode(w, r, &req) {
		return
	}

	t, err := h.technicians.Create(r.Context(), converter.CreateTechnicianParamsFromRequest(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.TechnicianToAPI(t))
}

func (h *handler) ListTechnicians(w http.ResponseWriter, r *http.Request) {
	activeOnly := false
	if raw := r.URL.Query().Get("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, errors.Join(model.ErrValidation, fmt.Errorf("invalid active %q", raw)))
			return
		}
		activeOnly = v
	}

	ts, err := h.technicians.List(r.Context(), activeOnly)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.TechniciansToAPI(ts))
}

func (h *handler) GetTechnician(w http.ResponseWriter, r *http.Request) {
	t, err := h.technicians.TechnicianByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.TechnicianToAPI(t))
}

func (h *handler) SetTechnicianActive(w http.ResponseWriter, r *http.Request) {
	var req fleetv1.SetActiveRequest
	if !decode(w, r, &req) {
		return
	}

	t, err := h.technicians.SetActive(r.Context(), chi.URLParam(r, "id"), req.Active)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.TechnicianToAPI(t))
}
