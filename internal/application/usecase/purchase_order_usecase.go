package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ndtrung/warehouse-backoffice/internal/application/dto"
	"github.com/ndtrung/warehouse-backoffice/internal/domain"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/repository"
)

// PurchaseOrderPrinter renders the print sheet of an order.
type PurchaseOrderPrinter interface {
	RenderPurchaseOrder(ctx context.Context, order *entity.PurchaseOrder, supplier *entity.Supplier) ([]byte, error)
}

// PurchaseOrderUseCase purchase-order browsing plus the header+lines update.
// The HTTP surface exposes only list, get and print; Update is the service
// entry point that enforces the minimum-one-line invariant.
type PurchaseOrderUseCase struct {
	repo         repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	uowFactory   repository.UnitOfWorkFactory
	printer      PurchaseOrderPrinter
}

// NewPurchaseOrderUseCase wires the use case.
func NewPurchaseOrderUseCase(
	repo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	uowFactory repository.UnitOfWorkFactory,
	printer PurchaseOrderPrinter,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo, supplierRepo: supplierRepo, uowFactory: uowFactory, printer: printer}
}

// List returns one page of order headers.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, in dto.PurchaseOrderListRequest) (*dto.PagedResult[dto.PurchaseOrderResponse], error) {
	rng, err := in.Range()
	if err != nil {
		return nil, fmt.Errorf("%w: fromDate/toDate", domain.ErrValidation)
	}
	page := in.Page()
	orders, total, err := uc.repo.List(ctx, repository.PurchaseOrderFilter{
		Keyword:    in.SearchKeyword,
		SupplierID: in.SupplierID,
		Status:     in.Status,
		DateRange:  rng,
		Page:       page,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, orderResponse(o, false))
	}
	result := dto.NewPagedResult(items, page, total)
	return &result, nil
}

// GetByID returns the order with its lines or ErrNotFound.
func (uc *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	resp := orderResponse(o, true)
	return &resp, nil
}

// Update replaces the header and the full line set inside one unit of work.
// An order must keep at least one line; a zero-line update is rejected
// before anything touches the store.
func (uc *PurchaseOrderUseCase) Update(ctx context.Context, id string, in dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: don hang phai co it nhat mot dong", domain.ErrValidation)
	}

	uow := uc.uowFactory.New()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback(ctx) //nolint:errcheck // no-op after a successful commit

	orders := uow.PurchaseOrders()
	o, err := orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uow.Suppliers().GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("nha cung cap %s: %w", in.SupplierID, domain.ErrNotFound)
	}

	o.Requester = in.Requester
	o.SupplierID = in.SupplierID
	o.Status = in.Status
	o.Stage = in.Stage
	o.UpdatedAt = time.Now()
	o.Lines = make([]entity.PurchaseOrderLine, 0, len(in.Lines))
	for i, l := range in.Lines {
		o.Lines = append(o.Lines, entity.PurchaseOrderLine{
			ID:       uuid.NewString(),
			OrderID:  o.ID,
			ItemID:   l.ItemID,
			ItemName: l.ItemName,
			Quantity: l.Quantity,
			UomID:    l.UomID,
			Note:     l.Note,
			Position: i + 1,
		})
	}
	if err := orders.Update(ctx, o); err != nil {
		return nil, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	resp := orderResponse(o, true)
	return &resp, nil
}

// Print renders the order's print sheet as PDF bytes.
func (uc *PurchaseOrderUseCase) Print(ctx context.Context, id string) ([]byte, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, o.SupplierID)
	if err != nil {
		return nil, err
	}
	return uc.printer.RenderPurchaseOrder(ctx, o, supplier)
}

func orderResponse(o *entity.PurchaseOrder, withLines bool) dto.PurchaseOrderResponse {
	resp := dto.PurchaseOrderResponse{
		ID:         o.ID,
		Code:       o.Code,
		Requester:  o.Requester,
		SupplierID: o.SupplierID,
		Status:     o.Status,
		Stage:      o.Stage,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	if withLines {
		resp.Lines = make([]dto.PurchaseOrderLineResponse, 0, len(o.Lines))
		for _, l := range o.Lines {
			resp.Lines = append(resp.Lines, dto.PurchaseOrderLineResponse{
				ID:       l.ID,
				ItemID:   l.ItemID,
				ItemName: l.ItemName,
				Quantity: l.Quantity,
				UomID:    l.UomID,
				Note:     l.Note,
			})
		}
	}
	return resp
}
