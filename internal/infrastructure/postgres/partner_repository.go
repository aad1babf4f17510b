package postgres

import (
	"context"

	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/repository"
)

// Supplier, Receiver and Warehouse share the reference-entity shape: unique
// code, contact fields, active flag. Their adapters share the paged list.

// pagedReferenceList applies the common keyword/active/date-range filters and
// returns one page plus the total match count before paging.
func pagedReferenceList[T repository.Persistable](ctx context.Context, r *Repo[T], f repository.PartnerFilter) ([]*T, int, error) {
	q := r.Select()
	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		q.Where("(code ILIKE ? OR name ILIKE ?)", kw, kw)
	}
	if f.IsActive != nil {
		q.Where("is_active = ?", *f.IsActive)
	}
	if f.From != nil {
		q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q.Where("created_at <= ?", *f.To)
	}
	total, err := q.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	if f.SortAsc {
		q.OrderBy("created_at ASC, id ASC")
	}
	items, err := q.Page(ctx, f.Page)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// firstByCode returns the row with the given code or (nil, nil).
func firstByCode[T repository.Persistable](ctx context.Context, r *Repo[T], code string) (*T, error) {
	items, err := r.Select().Where("code = ?", code).All(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

// ── Supplier ──

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

var supplierMapping = Mapping[entity.Supplier]{
	Table: "suppliers",
	Columns: []string{
		"id", "code", "name", "contact_person", "phone", "email", "address",
		"is_active", "created_at", "updated_at",
	},
	DefaultOrder: "created_at DESC, id DESC",
	Fields: func(s *entity.Supplier) []any {
		return []any{
			&s.ID, &s.Code, &s.Name, &s.ContactPerson, &s.Phone, &s.Email,
			&s.Address, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		}
	},
	Values: func(s *entity.Supplier) []any {
		return []any{
			s.ID, s.Code, s.Name, s.ContactPerson, s.Phone, s.Email,
			s.Address, s.IsActive, s.CreatedAt, s.UpdatedAt,
		}
	},
}

// SupplierRepo PostgreSQL adapter for the SupplierRepository port.
type SupplierRepo struct {
	*Repo[entity.Supplier]
}

// NewSupplierRepository builds the adapter. Pass the pool or a unit of work.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{Repo: NewRepo(q, supplierMapping)}
}

func (r *SupplierRepo) GetByCode(ctx context.Context, code string) (*entity.Supplier, error) {
	return firstByCode(ctx, r.Repo, code)
}

func (r *SupplierRepo) List(ctx context.Context, f repository.PartnerFilter) ([]*entity.Supplier, int, error) {
	return pagedReferenceList(ctx, r.Repo, f)
}

// ── Receiver ──

var _ repository.ReceiverRepository = (*ReceiverRepo)(nil)

var receiverMapping = Mapping[entity.Receiver]{
	Table: "receivers",
	Columns: []string{
		"id", "code", "name", "contact_person", "phone", "email", "address",
		"is_active", "created_at", "updated_at",
	},
	DefaultOrder: "created_at DESC, id DESC",
	Fields: func(x *entity.Receiver) []any {
		return []any{
			&x.ID, &x.Code, &x.Name, &x.ContactPerson, &x.Phone, &x.Email,
			&x.Address, &x.IsActive, &x.CreatedAt, &x.UpdatedAt,
		}
	},
	Values: func(x *entity.Receiver) []any {
		return []any{
			x.ID, x.Code, x.Name, x.ContactPerson, x.Phone, x.Email,
			x.Address, x.IsActive, x.CreatedAt, x.UpdatedAt,
		}
	},
}

// ReceiverRepo PostgreSQL adapter for the ReceiverRepository port.
type ReceiverRepo struct {
	*Repo[entity.Receiver]
}

// NewReceiverRepository builds the adapter. Pass the pool or a unit of work.
func NewReceiverRepository(q Querier) *ReceiverRepo {
	return &ReceiverRepo{Repo: NewRepo(q, receiverMapping)}
}

func (r *ReceiverRepo) GetByCode(ctx context.Context, code string) (*entity.Receiver, error) {
	return firstByCode(ctx, r.Repo, code)
}

func (r *ReceiverRepo) List(ctx context.Context, f repository.PartnerFilter) ([]*entity.Receiver, int, error) {
	return pagedReferenceList(ctx, r.Repo, f)
}

// ── Warehouse ──

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

var warehouseMapping = Mapping[entity.Warehouse]{
	Table: "warehouses",
	Columns: []string{
		"id", "code", "name", "address", "phone", "keeper",
		"is_active", "created_at", "updated_at",
	},
	DefaultOrder: "created_at DESC, id DESC",
	Fields: func(w *entity.Warehouse) []any {
		return []any{
			&w.ID, &w.Code, &w.Name, &w.Address, &w.Phone, &w.Keeper,
			&w.IsActive, &w.CreatedAt, &w.UpdatedAt,
		}
	},
	Values: func(w *entity.Warehouse) []any {
		return []any{
			w.ID, w.Code, w.Name, w.Address, w.Phone, w.Keeper,
			w.IsActive, w.CreatedAt, w.UpdatedAt,
		}
	},
}

// WarehouseRepo PostgreSQL adapter for the WarehouseRepository port.
type WarehouseRepo struct {
	*Repo[entity.Warehouse]
}

// NewWarehouseRepository builds the adapter. Pass the pool or a unit of work.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{Repo: NewRepo(q, warehouseMapping)}
}

func (r *WarehouseRepo) GetByCode(ctx context.Context, code string) (*entity.Warehouse, error) {
	return firstByCode(ctx, r.Repo, code)
}

func (r *WarehouseRepo) List(ctx context.Context, f repository.PartnerFilter) ([]*entity.Warehouse, int, error) {
	return pagedReferenceList(ctx, r.Repo, f)
}
