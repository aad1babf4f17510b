package repository

import (
	"context"

	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
)

// SupplierRepository persistence port for Supplier.
type SupplierRepository interface {
	CRUD[entity.Supplier]
	GetByCode(ctx context.Context, code string) (*entity.Supplier, error)
	List(ctx context.Context, f PartnerFilter) ([]*entity.Supplier, int, error)
}

// ReceiverRepository persistence port for Receiver.
type ReceiverRepository interface {
	CRUD[entity.Receiver]
	GetByCode(ctx context.Context, code string) (*entity.Receiver, error)
	List(ctx context.Context, f PartnerFilter) ([]*entity.Receiver, int, error)
}

// WarehouseRepository persistence port for Warehouse.
type WarehouseRepository interface {
	CRUD[entity.Warehouse]
	GetByCode(ctx context.Context, code string) (*entity.Warehouse, error)
	List(ctx context.Context, f PartnerFilter) ([]*entity.Warehouse, int, error)
}
