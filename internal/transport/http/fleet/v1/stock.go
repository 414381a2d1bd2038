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

func (h *handler) CreateStockItem(w http.ResponseWriter, r *http.Request) {
	var req fleetv1.CreateStockItemRequest
	if !decode(w, r, &req) {
		return
	}

	item, err := h.stock.Create(r.Context(), converter.CreateStockItemParamsFromRequest(actor(r), req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.StockItemToAPI(item))
}

func (h *handler) ListStockItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.StockFilter{Query: q.Get("q")}

	for name, dst := range map[string]*bool{
		"lowStock":  &filter.LowStockOnly,
		"revolving": &filter.RevolvingOnly,
		"fungible":  &filter.FungibleOnly,
	} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, errors.Join(model.ErrValidation, fmt.Errorf("invalid %s %q", name, raw)))
			return
		}
		*dst = v
	}

	items, err := h.stock.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.StockItemsToAPI(items))
}

func (h *handler) GetStockItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.stock.StockItemByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.StockItemToAPI(item))
}

func (h *handler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req fleetv1.AdjustStockRequest
	if !decode(w, r, &req) {
		return
	}

	item, err := h.stock.Adjust(r.Context(), converter.AdjustStockParamsFromRequest(chi.URLParam(r, "id"), actor(r), req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.StockItemToAPI(item))
}

func (h *handler) ReturnUsedStock(w http.ResponseWriter, r *http.Request) {
	var req fleetv1.ReturnUsedStockRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.stock.ReturnUsedStock(r.Context(), converter.StockReturnsFromRequest(req), actor(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.StockReturnResultToAPI(res))
}

func (h *handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	txs, err := h.stock.Transactions(r.Context(), model.TransactionFilter{
		StockItemID:   q.Get("stockItemId"),
		RepairOrderNo: q.Get("repairOrderNo"),
		Type:          model.TransactionType(q.Get("type")),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.TransactionsToAPI(txs))
}
