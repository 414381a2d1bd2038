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

func (h *handler) CreateRepairOrder(w http.ResponseWriter, r *http.Request) {
	var req fleetv1.CreateRepairOrderRequest
	if !decode(w, r, &req) {
		return
	}
	if req.ReportedBy == "" {
		req.ReportedBy = actor(r)
	}

	ord, err := h.repair.Create(r.Context(), converter.RepairOrderDraftFromRequest(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.RepairOrderToAPI(ord))
}

func (h *handler) ListRepairOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.RepairOrderFilter{
		Status:       model.RepairStatus(q.Get("status")),
		VehiclePlate: q.Get("plate"),
	}
	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, errors.Join(model.ErrValidation, fmt.Errorf("invalid year %q", raw)))
			return
		}
		filter.Year = year
	}

	orders, err := h.repair.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.RepairOrdersToAPI(orders))
}

func (h *handler) GetRepairOrder(w http.ResponseWriter, r *http.Request) {
	ord, err := h.repair.OrderByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.RepairOrderToAPI(ord))
}

func (h *handler) UpdateRepairOrder(w http.ResponseWriter, r *http.Request) {
	var req fleetv1.UpdateRepairOrderRequest
	if !decode(w, r, &req) {
		return
	}

	ord, err := h.repair.Update(r.Context(), converter.UpdateRepairOrderParamsFromRequest(chi.URLParam(r, "id"), req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.RepairOrderToAPI(ord))
}

func (h *handler) ApproveRepairOrder(w http.ResponseWriter, r *http.Request) {
	ord, err := h.repair.Approve(r.Context(), chi.URLParam(r, "id"), actor(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.RepairOrderToAPI(ord))
}

func (h *handler) TransitionRepairOrder(w http.ResponseWriter, r *http.Request) {
	var req fleetv1.TransitionRequest
	if !decode(w, r, &req) {
		return
	}

	ord, err := h.repair.Transition(r.Context(), converter.TransitionParamsFromRequest(chi.URLParam(r, "id"), actor(r), req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.RepairOrderToAPI(ord))
}

func (h *handler) AddPart(w http.ResponseWriter, r *http.Request) {
	var req fleetv1.AddPartRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.repair.AddPart(r.Context(), converter.AddPartParamsFromRequest(chi.URLParam(r, "id"), actor(r), req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.AddPartResultToAPI(res))
}

func (h *handler) DeleteRepairOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.repair.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
