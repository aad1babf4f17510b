package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase order stages. Stage advances monotonically through the procurement
// flow; Status is the coarse business state shown in lists.
const (
	POStatusDraft     = "draft"
	POStatusSubmitted = "submitted"
	POStatusApproved  = "approved"
	POStatusReceived  = "received"
	POStatusCancelled = "cancelled"
)

// PurchaseOrder is an order header owning an ordered list of lines. An order
// must keep at least one line; lines belong exclusively to their order and
// are replaced together with the header on mutation.
type PurchaseOrder struct {
	ID         string
	Code       string
	Requester  string
	SupplierID string
	Status     string
	Stage      int
	Lines      []PurchaseOrderLine
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (o PurchaseOrder) EntityID() string { return o.ID }

// PurchaseOrderLine is one requested item on a purchase order.
type PurchaseOrderLine struct {
	ID       string
	OrderID  string
	ItemID   string
	ItemName string
	Quantity decimal.Decimal
	UomID    string // unit-of-measure reference
	Note     string
	Position int // keeps lines in the order the requester entered them
}
