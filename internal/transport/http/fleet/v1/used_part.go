package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	fleetv1 "github.com/you-humble/fleet-maintenance/internal/api/fleet/v1"
	"github.com/you-humble/fleet-maintenance/internal/converter"
	"github.com/you-humble/fleet-maintenance/internal/model"
)

func (h *handler) RegisterUsedPart(w http.ResponseWriter, r *http.Request) {
	var req fleetv1.RegisterUsedPartRequest
	if !decode(w, r, &req) {
		return
	}

	part, err := h.usedParts.Register(r.Context(), converter.RegisterUsedPartParamsFromRequest(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.UsedPartToAPI(part))
}

func (h *handler) ListUsedParts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	parts, err := h.usedParts.List(r.Context(), model.UsedPartFilter{
		Status:        model.UsedPartStatus(q.Get("status")),
		RepairOrderNo: q.Get("repairOrderNo"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.UsedPartsToAPI(parts))
}

func (h *handler) GetUsedPart(w http.ResponseWriter, r *http.Request) {
	part, err := h.usedParts.UsedPartByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.UsedPartToAPI(part))
}

func (h *handler) ProcessUsedPart(w http.ResponseWriter, r *http.Request) {
	var req fleetv1.DecisionRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.usedParts.Process(r.Context(), chi.URLParam(r, "id"), converter.DecisionFromRequest(actor(r), req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.ProcessResultToAPI(res))
}

func (h *handler) ReverseDisposition(w http.ResponseWriter, r *http.Request) {
	res, err := h.usedParts.Reverse(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "dispositionID"), actor(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ReverseResultToAPI(res))
}
