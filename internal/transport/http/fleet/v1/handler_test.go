package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fleetv1 "github.com/you-humble/fleet-maintenance/internal/api/fleet/v1"
	"github.com/you-humble/fleet-maintenance/internal/repository/collection"
	orderrepo "github.com/you-humble/fleet-maintenance/internal/repository/order"
	stockrepo "github.com/you-humble/fleet-maintenance/internal/repository/stock"
	"github.com/you-humble/fleet-maintenance/internal/repository/store"
	techrepo "github.com/you-humble/fleet-maintenance/internal/repository/technician"
	txnrepo "github.com/you-humble/fleet-maintenance/internal/repository/transaction"
	usedpartrepo "github.com/you-humble/fleet-maintenance/internal/repository/usedpart"
	"github.com/you-humble/fleet-maintenance/internal/service/repair"
	"github.com/you-humble/fleet-maintenance/internal/service/stock"
	"github.com/you-humble/fleet-maintenance/internal/service/technician"
	"github.com/you-humble/fleet-maintenance/internal/service/usedpart"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	backend := store.NewMemory()
	orders := orderrepo.NewRepository(collection.New[orderrepo.RepairOrderEntity](orderrepo.CollectionKey, backend))
	items := stockrepo.NewRepository(collection.New[stockrepo.StockItemEntity](stockrepo.CollectionKey, backend))
	txs := txnrepo.NewRepository(collection.New[txnrepo.StockTransactionEntity](txnrepo.CollectionKey, backend))
	parts := usedpartrepo.NewRepository(collection.New[usedpartrepo.UsedPartEntity](usedpartrepo.CollectionKey, backend))
	techs := techrepo.NewRepository(collection.New[techrepo.TechnicianEntity](techrepo.CollectionKey, backend))

	timeout := time.Second
	techSvc := technician.NewTechnicianService(techs, timeout, timeout)
	usedSvc := usedpart.NewUsedPartService(parts, items, txs, timeout, timeout)
	stockSvc := stock.NewStockService(items, txs, timeout, timeout)
	repairSvc := repair.NewRepairService(orders, items, txs, usedSvc, techSvc, timeout, timeout)

	r := chi.NewRouter()
	r.Route("/api/v1", NewFleetHandler(repairSvc, usedSvc, stockSvc, techSvc).Routes)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req, err := http.NewRequest(method, srv.URL+"/api/v1"+path, reader)
	require.NoError(t, err)
	req.Header.Set(ActorHeader, "tester")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRepairOrderFlow(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	var tech fleetv1.Technician
	require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/technicians", fleetv1.CreateTechnicianRequest{Name: "Somchai"}, &tech))

	var item fleetv1.StockItem
	require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/stock-items",
		fleetv1.CreateStockItemRequest{Code: "BP-01", Name: "Brake pad", Quantity: dec("4"), Price: dec("250")}, &item))

	var ord fleetv1.RepairOrder
	require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/repair-orders",
		fleetv1.CreateRepairOrderRequest{VehiclePlate: "70-1234", Description: "brakes squeal", LaborCost: dec("300")}, &ord))
	assert.Regexp(t, `^RO-\d{4}-00001$`, ord.OrderNo)
	assert.Equal(t, "awaiting_repair", ord.Status)
	assert.Equal(t, "tester", ord.ReportedBy)

	var apiErr fleetv1.ErrorResponse
	status := call(t, srv, http.MethodPost, "/repair-orders/"+ord.ID+"/transitions", fleetv1.TransitionRequest{To: "completed"}, &apiErr)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, http.StatusConflict, apiErr.Code)

	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPost, "/repair-orders/"+ord.ID+"/transitions",
		fleetv1.TransitionRequest{To: "in_progress", Technician: tech.ID}, &ord))
	assert.NotNil(t, ord.StartedAt)
	require.Len(t, ord.History, 1)
	assert.Equal(t, "tester", ord.History[0].Actor)

	var added fleetv1.AddPartResponse
	require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/repair-orders/"+ord.ID+"/parts",
		fleetv1.AddPartRequest{Source: "internal_stock", StockItemID: item.ID, Quantity: dec("2"), SalvageOldPart: true}, &added))
	assert.True(t, added.Order.TotalCost.Equal(dec("800")))
	require.NotNil(t, added.UsedPart)
	assert.Equal(t, "awaiting", added.UsedPart.Status)

	status = call(t, srv, http.MethodPost, "/repair-orders/"+ord.ID+"/parts",
		fleetv1.AddPartRequest{Source: "internal_stock", StockItemID: item.ID, Quantity: dec("5")}, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	var list []fleetv1.RepairOrder
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/repair-orders?status=in_progress", nil, &list))
	require.Len(t, list, 1)

	var txs []fleetv1.StockTransaction
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/stock-transactions?type=issued", nil, &txs))
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Quantity.Equal(dec("-2")))

	assert.Equal(t, http.StatusNoContent, call(t, srv, http.MethodDelete, "/repair-orders/"+ord.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodGet, "/repair-orders/"+ord.ID, nil, &apiErr))
}

func TestUsedPartFlow(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	var batch fleetv1.UsedPart
	require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/used-parts",
		fleetv1.RegisterUsedPartRequest{Name: "Starter", Quantity: dec("3"), RepairOrderNo: "RO-2024-00003"}, &batch))

	var processed fleetv1.ProcessResponse
	require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/used-parts/"+batch.ID+"/dispositions",
		fleetv1.DecisionRequest{Type: "to_revolving_stock", Quantity: dec("2")}, &processed))
	assert.Equal(t, "partial", processed.Batch.Status)
	assert.True(t, processed.Batch.RemainingQuantity.Equal(dec("1")))
	require.NotNil(t, processed.StockItem)
	assert.True(t, processed.StockItem.IsRevolvingPart)

	var apiErr fleetv1.ErrorResponse
	assert.Equal(t, http.StatusUnprocessableEntity, call(t, srv, http.MethodPost, "/used-parts/"+batch.ID+"/dispositions",
		fleetv1.DecisionRequest{Type: "dispose", Quantity: dec("2")}, &apiErr))
	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodDelete, "/used-parts/"+batch.ID+"/dispositions/nope", nil, &apiErr))

	var reversed fleetv1.ReverseResponse
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodDelete,
		"/used-parts/"+batch.ID+"/dispositions/"+processed.Disposition.ID, nil, &reversed))
	assert.True(t, reversed.StockRolledBack)
	assert.Equal(t, "awaiting", reversed.Batch.Status)

	var revolving []fleetv1.StockItem
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/stock-items?revolving=true", nil, &revolving))
	require.Len(t, revolving, 1)
	assert.True(t, revolving[0].Quantity.IsZero())
}

func TestStockReturns(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	var item fleetv1.StockItem
	require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/stock-items",
		fleetv1.CreateStockItemRequest{Code: "S1", Name: "Spark plug", Quantity: dec("2")}, &item))

	var res fleetv1.ReturnUsedStockResponse
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPost, "/stock-items/returns", fleetv1.ReturnUsedStockRequest{
		Lines: []fleetv1.StockReturnLine{
			{StockItemID: item.ID, Quantity: dec("3"), RepairOrderNo: "RO-2024-00007"},
			{StockItemID: "missing", Quantity: dec("1"), RepairOrderNo: "RO-2024-00007"},
		},
	}, &res))
	require.Len(t, res.Updated, 1)
	assert.True(t, res.Updated[0].Quantity.Equal(dec("5")))
	assert.Equal(t, []string{"missing"}, res.SkippedIDs)

	var adjusted fleetv1.StockItem
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPost, "/stock-items/"+item.ID+"/adjustments",
		fleetv1.AdjustStockRequest{Delta: dec("-1")}, &adjusted))
	assert.True(t, adjusted.Quantity.Equal(dec("4")))

	var apiErr fleetv1.ErrorResponse
	assert.Equal(t, http.StatusConflict, call(t, srv, http.MethodPost, "/stock-items",
		fleetv1.CreateStockItemRequest{Code: "s1", Name: "dup"}, &apiErr))
}

func TestMalformedRequests(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{name: "not json", method: http.MethodPost, path: "/repair-orders", body: "{"},
		{name: "unknown field", method: http.MethodPost, path: "/technicians", body: `{"name":"a","age":3}`},
		{name: "bad year", method: http.MethodGet, path: "/repair-orders?year=soon"},
		{name: "bad flag", method: http.MethodGet, path: "/stock-items?lowStock=maybe"},
		{name: "missing description", method: http.MethodPost, path: "/repair-orders", body: fleetv1.CreateRepairOrderRequest{VehiclePlate: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var apiErr fleetv1.ErrorResponse
			assert.Equal(t, http.StatusBadRequest, call(t, srv, tt.method, tt.path, tt.body, &apiErr))
			assert.Equal(t, http.StatusBadRequest, apiErr.Code)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
}
