package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderListRequest paging plus order-specific filters.
type PurchaseOrderListRequest struct {
	PageRequest
	SupplierID string `query:"supplierId"`
	Status     string `query:"status"`
}

// PurchaseOrderResponse order header; Lines only populated on get-by-id.
type PurchaseOrderResponse struct {
	ID         string                      `json:"id"`
	Code       string                      `json:"code"`
	Requester  string                      `json:"requester"`
	SupplierID string                      `json:"supplierId"`
	Status     string                      `json:"status"`
	Stage      int                         `json:"stage"`
	Lines      []PurchaseOrderLineResponse `json:"lines,omitempty"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
}

// PurchaseOrderLineResponse one requested item.
type PurchaseOrderLineResponse struct {
	ID       string          `json:"id"`
	ItemID   string          `json:"itemId"`
	ItemName string          `json:"itemName"`
	Quantity decimal.Decimal `json:"quantity"`
	UomID    string          `json:"uomId"`
	Note     string          `json:"note"`
}

// UpdatePurchaseOrderRequest replaces the header fields and the full line
// set. An order must keep at least one line.
type UpdatePurchaseOrderRequest struct {
	Requester  string                         `json:"requester" validate:"required,min=1,max=200"`
	SupplierID string                         `json:"supplierId" validate:"required,uuid"`
	Status     string                         `json:"status" validate:"required"`
	Stage      int                            `json:"stage" validate:"min=0"`
	Lines      []UpdatePurchaseOrderLineInput `json:"lines" validate:"required,min=1,dive"`
}

// UpdatePurchaseOrderLineInput one line of the replacement set.
type UpdatePurchaseOrderLineInput struct {
	ItemID   string          `json:"itemId" validate:"required"`
	ItemName string          `json:"itemName" validate:"required"`
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
	UomID    string          `json:"uomId" validate:"required"`
	Note     string          `json:"note" validate:"omitempty,max=500"`
}
