package repository

import (
	"context"

	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
)

// PurchaseOrderRepository persistence port for PurchaseOrder. GetByID loads
// the header with its lines in position order; Update replaces header and
// lines together (lines belong exclusively to their order).
type PurchaseOrderRepository interface {
	CRUD[entity.PurchaseOrder]
	GetByCode(ctx context.Context, code string) (*entity.PurchaseOrder, error)
	// List returns headers only (lines are loaded per order on demand).
	List(ctx context.Context, f PurchaseOrderFilter) ([]*entity.PurchaseOrder, int, error)
}
