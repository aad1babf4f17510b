package repository

import "context"

// UnitOfWork groups repository operations into one transactional boundary.
// Repositories are built lazily and cached for the lifetime of the instance;
// they follow the unit of work's current transaction state, so the same
// repository value works before, inside and after a transaction.
//
// Without an active transaction every mutating call autocommits. Begin
// returns an error if a transaction is already active on this instance.
// SaveChanges commits the active transaction; after a failed SaveChanges
// nothing is partially applied and the caller must Rollback before reuse.
type UnitOfWork interface {
	Users() UserRepository
	Roles() RoleRepository
	Suppliers() SupplierRepository
	Receivers() ReceiverRepository
	Warehouses() WarehouseRepository
	PurchaseOrders() PurchaseOrderRepository

	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	SaveChanges(ctx context.Context) error
}

// UnitOfWorkFactory builds independent unit-of-work instances, one per
// logical operation. Instances are not safe for concurrent use.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}
