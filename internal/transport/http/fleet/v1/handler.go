package http

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/fleet-maintenance/internal/model"
)

type RepairOrderService interface {
	Create(ctx context.Context, draft model.RepairOrderDraft) (*model.RepairOrder, error)
	OrderByID(ctx context.Context, id string) (*model.RepairOrder, error)
	List(ctx context.Context, filter model.RepairOrderFilter) ([]*model.RepairOrder, error)
	Update(ctx context.Context, params model.UpdateRepairOrderParams) (*model.RepairOrder, error)
	Approve(ctx context.Context, id, actor string) (*model.RepairOrder, error)
	Transition(ctx context.Context, params model.TransitionParams) (*model.RepairOrder, error)
	AddPart(ctx context.Context, params model.AddPartParams) (*model.AddPartResult, error)
	Delete(ctx context.Context, id string) error
}

type UsedPartService interface {
	Register(ctx context.Context, params model.RegisterUsedPartParams) (*model.UsedPart, error)
	UsedPartByID(ctx context.Context, id string) (*model.UsedPart, error)
	List(ctx context.Context, filter model.UsedPartFilter) ([]*model.UsedPart, error)
	Process(ctx context.Context, batchID string, d model.Decision) (*model.ProcessResult, error)
	Reverse(ctx context.Context, batchID, dispositionID, actor string) (*model.ReverseResult, error)
}

type StockService interface {
	Create(ctx context.Context, params model.CreateStockItemParams) (*model.StockItem, error)
	StockItemByID(ctx context.Context, id string) (*model.StockItem, error)
	List(ctx context.Context, filter model.StockFilter) ([]*model.StockItem, error)
	Adjust(ctx context.Context, params model.AdjustStockParams) (*model.StockItem, error)
	ReturnUsedStock(ctx context.Context, updates []model.StockReturn, actor string) (*model.StockReturnResult, error)
	Transactions(ctx context.Context, filter model.TransactionFilter) ([]*model.StockTransaction, error)
}

type TechnicianService interface {
	Create(ctx context.Context, params model.CreateTechnicianParams) (*model.Technician, error)
	TechnicianByID(ctx context.Context, id string) (*model.Technician, error)
	List(ctx context.Context, activeOnly bool) ([]*model.Technician, error)
	SetActive(ctx context.Context, id string, active bool) (*model.Technician, error)
}

type handler struct {
	repair      RepairOrderService
	usedParts   UsedPartService
	stock       StockService
	technicians TechnicianService
}

func NewFleetHandler(
	repair RepairOrderService,
	usedParts UsedPartService,
	stock StockService,
	technicians TechnicianService,
) *handler {
	return &handler{
		repair:      repair,
		usedParts:   usedParts,
		stock:       stock,
		technicians: technicians,
	}
}

// Routes mounts the API under r; the caller decides the prefix.
func (h *handler) Routes(r chi.Router) {
	r.Route("/repair-orders", func(r chi.Router) {
		r.Post("/", h.CreateRepairOrder)
		r.Get("/", h.ListRepairOrders)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetRepairOrder)
			r.Patch("/", h.UpdateRepairOrder)
			r.Delete("/", h.DeleteRepairOrder)
			r.Post("/approve", h.ApproveRepairOrder)
			r.Post("/transitions", h.TransitionRepairOrder)
			r.Post("/parts", h.AddPart)
		})
	})

	r.Route("/used-parts", func(r chi.Router) {
		r.Post("/", h.RegisterUsedPart)
		r.Get("/", h.ListUsedParts)
		r.Get("/{id}", h.GetUsedPart)
		r.Post("/{id}/dispositions", h.ProcessUsedPart)
		r.Delete("/{id}/dispositions/{dispositionID}", h.ReverseDisposition)
	})

	r.Route("/stock-items", func(r chi.Router) {
		r.Post("/", h.CreateStockItem)
		r.Get("/", h.ListStockItems)
		r.Post("/returns", h.ReturnUsedStock)
		r.Get("/{id}", h.GetStockItem)
		r.Post("/{id}/adjustments", h.AdjustStock)
	})

	r.Get("/stock-transactions", h.ListTransactions)

	r.Route("/technicians", func(r chi.Router) {
		r.Post("/", h.CreateTechnician)
		r.Get("/", h.ListTechnicians)
		r.Get("/{id}", h.GetTechnician)
		r.Put("/{id}/active", h.SetTechnicianActive)
	})
}
