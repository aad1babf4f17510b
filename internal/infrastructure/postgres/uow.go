package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ndtrung/warehouse-backoffice/internal/domain/repository"
)

var _ repository.UnitOfWork = (*UnitOfWork)(nil)

// txBeginner is what the unit of work needs from its connection source: plain
// queries plus the ability to open a transaction. *pgxpool.Pool satisfies it.
type txBeginner interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

var _ txBeginner = (*pgxpool.Pool)(nil)

// UnitOfWork implements the transactional boundary over pgx. It is itself a
// Querier: cached repositories are built against the unit of work, so they
// automatically follow its transaction state. Not safe for concurrent use.
type UnitOfWork struct {
	db txBeginner
	tx pgx.Tx

	users      repository.UserRepository
	roles      repository.RoleRepository
	suppliers  repository.SupplierRepository
	receivers  repository.ReceiverRepository
	warehouses repository.WarehouseRepository
	orders     repository.PurchaseOrderRepository
}

// NewUnitOfWork builds a unit of work over the pool. Until Begin is called
// every repository operation autocommits.
func NewUnitOfWork(pool *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{db: pool}
}

func (u *UnitOfWork) querier() Querier {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Exec, Query and QueryRow make the unit of work a Querier for its repos.
func (u *UnitOfWork) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return u.querier().Exec(ctx, sql, args...)
}

func (u *UnitOfWork) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return u.querier().Query(ctx, sql, args...)
}

func (u *UnitOfWork) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return u.querier().QueryRow(ctx, sql, args...)
}

// Begin starts a transaction. Only one may be active per instance.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("unit of work: transaction already active")
	}
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	u.tx = tx
	return nil
}

// Commit commits the active transaction. On failure the transaction stays
// marked active so the caller has to Rollback before reusing the instance.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return fmt.Errorf("unit of work: no active transaction")
	}
	if err := u.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	u.tx = nil
	return nil
}

// Rollback aborts the active transaction. A rollback without an active
// transaction is a no-op.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	err := u.tx.Rollback(ctx)
	u.tx = nil
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

// SaveChanges flushes pending changes: with an active transaction it commits
// atomically, without one it is a no-op because every operation already
// autocommitted.
func (u *UnitOfWork) SaveChanges(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.Commit(ctx)
}

// Repository accessors, cached per instance.

func (u *UnitOfWork) Users() repository.UserRepository {
	if u.users == nil {
		u.users = NewUserRepository(u)
	}
	return u.users
}

func (u *UnitOfWork) Roles() repository.RoleRepository {
	if u.roles == nil {
		u.roles = NewRoleRepository(u)
	}
	return u.roles
}

func (u *UnitOfWork) Suppliers() repository.SupplierRepository {
	if u.suppliers == nil {
		u.suppliers = NewSupplierRepository(u)
	}
	return u.suppliers
}

func (u *UnitOfWork) Receivers() repository.ReceiverRepository {
	if u.receivers == nil {
		u.receivers = NewReceiverRepository(u)
	}
	return u.receivers
}

func (u *UnitOfWork) Warehouses() repository.WarehouseRepository {
	if u.warehouses == nil {
		u.warehouses = NewWarehouseRepository(u)
	}
	return u.warehouses
}

func (u *UnitOfWork) PurchaseOrders() repository.PurchaseOrderRepository {
	if u.orders == nil {
		u.orders = NewPurchaseOrderRepository(u)
	}
	return u.orders
}

// Factory produces independent unit-of-work instances over one pool.
type Factory struct {
	pool *pgxpool.Pool
}

var _ repository.UnitOfWorkFactory = (*Factory)(nil)

// NewFactory builds the factory.
func NewFactory(pool *pgxpool.Pool) *Factory {
	return &Factory{pool: pool}
}

// New returns a fresh unit of work.
func (f *Factory) New() repository.UnitOfWork {
	return NewUnitOfWork(f.pool)
}
