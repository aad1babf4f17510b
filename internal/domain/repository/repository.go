package repository

import (
	"context"
	"time"
)

// Persistable is the capability set an entity needs to be stored through the
// generic repository: it must expose its primary key.
type Persistable interface {
	EntityID() string
}

// CRUD is the generic persistence contract every entity repository offers.
// Implemented once over a column mapping and instantiated per entity type;
// see the postgres adapter.
//
// Absence is not an error: GetByID returns (nil, nil) for a missing id and
// Delete reports absence through its bool. Update fails with ErrNotFound when
// the row no longer exists. Create and Update commit immediately unless the
// repository was obtained from a unit of work with an active transaction.
type CRUD[T Persistable] interface {
	GetAll(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, e *T) error
	Update(ctx context.Context, e *T) error
	Delete(ctx context.Context, id string) (bool, error)
}

// Page is a clamped pagination request. Zero value is invalid; call Clamp.
type Page struct {
	Number  int
	Size    int
	SortAsc bool // false = newest first (the deterministic default)
}

// MaxPageSize caps every list query.
const MaxPageSize = 100

// Clamp forces Number >= 1 and Size into [1, MaxPageSize].
func (p Page) Clamp() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = 1
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset returns the skip count for the clamped page.
func (p Page) Offset() int { return (p.Number - 1) * p.Size }

// DateRange optional [From, To] filter over the creation timestamp.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// UserFilter filters for the user list.
type UserFilter struct {
	Keyword  string // matches email, username or full name
	RoleID   string
	IsActive *bool
	DateRange
	Page
}

// PartnerFilter filters for supplier, receiver and warehouse lists.
type PartnerFilter struct {
	Keyword  string // matches code or name
	IsActive *bool
	DateRange
	Page
}

// PurchaseOrderFilter filters for the purchase-order list.
type PurchaseOrderFilter struct {
	Keyword    string // matches code or requester
	SupplierID string
	Status     string
	DateRange
	Page
}
