package postgres

import (
	"context"
	"fmt"

	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

var purchaseOrderMapping = Mapping[entity.PurchaseOrder]{
	Table: "purchase_orders",
	Columns: []string{
		"id", "code", "requester", "supplier_id", "status", "stage",
		"created_at", "updated_at",
	},
	DefaultOrder: "created_at DESC, id DESC",
	Fields: func(o *entity.PurchaseOrder) []any {
		return []any{
			&o.ID, &o.Code, &o.Requester, &o.SupplierID, &o.Status, &o.Stage,
			&o.CreatedAt, &o.UpdatedAt,
		}
	},
	Values: func(o *entity.PurchaseOrder) []any {
		return []any{
			o.ID, o.Code, o.Requester, o.SupplierID, o.Status, o.Stage,
			o.CreatedAt, o.UpdatedAt,
		}
	},
}

// PurchaseOrderRepo PostgreSQL adapter for the PurchaseOrderRepository port.
// Headers go through the generic repository; lines are owned by their order
// and written/loaded alongside it.
type PurchaseOrderRepo struct {
	*Repo[entity.PurchaseOrder]
}

// NewPurchaseOrderRepository builds the adapter. Pass the pool or a unit of
// work; header+lines mutations should run inside a unit-of-work transaction.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{Repo: NewRepo(q, purchaseOrderMapping)}
}

// GetByID loads the header with its lines in position order.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	order, err := r.Repo.GetByID(ctx, id)
	if err != nil || order == nil {
		return order, err
	}
	if err := r.loadLines(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetByCode loads the header with its lines, or (nil, nil).
func (r *PurchaseOrderRepo) GetByCode(ctx context.Context, code string) (*entity.PurchaseOrder, error) {
	orders, err := r.Select().Where("code = ?", code).All(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}
	if err := r.loadLines(ctx, orders[0]); err != nil {
		return nil, err
	}
	return orders[0], nil
}

// Create inserts the header and its lines.
func (r *PurchaseOrderRepo) Create(ctx context.Context, o *entity.PurchaseOrder) error {
	if err := r.Repo.Create(ctx, o); err != nil {
		return err
	}
	return r.insertLines(ctx, o)
}

// Update replaces the header and all of its lines. Lines belong exclusively
// to the order, so the previous set is dropped with it.
func (r *PurchaseOrderRepo) Update(ctx context.Context, o *entity.PurchaseOrder) error {
	if err := r.Repo.Update(ctx, o); err != nil {
		return err
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_order_lines WHERE order_id = $1`, o.ID); err != nil {
		return fmt.Errorf("delete purchase order lines: %w", err)
	}
	return r.insertLines(ctx, o)
}

// List returns one page of headers plus the total match count.
func (r *PurchaseOrderRepo) List(ctx context.Context, f repository.PurchaseOrderFilter) ([]*entity.PurchaseOrder, int, error) {
	q := r.Select()
	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		q.Where("(code ILIKE ? OR requester ILIKE ?)", kw, kw)
	}
	if f.SupplierID != "" {
		q.Where("supplier_id = ?", f.SupplierID)
	}
	if f.Status != "" {
		q.Where("status = ?", f.Status)
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
	orders, err := q.Page(ctx, f.Page)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *PurchaseOrderRepo) loadLines(ctx context.Context, o *entity.PurchaseOrder) error {
	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, item_id, item_name, quantity, uom_id, note, position
		FROM purchase_order_lines WHERE order_id = $1 ORDER BY position ASC`, o.ID)
	if err != nil {
		return fmt.Errorf("load purchase order lines: %w", err)
	}
	defer rows.Close()
	o.Lines = o.Lines[:0]
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ItemID, &l.ItemName, &l.Quantity, &l.UomID, &l.Note, &l.Position); err != nil {
			return fmt.Errorf("scan purchase order line: %w", err)
		}
		o.Lines = append(o.Lines, l)
	}
	return rows.Err()
}

func (r *PurchaseOrderRepo) insertLines(ctx context.Context, o *entity.PurchaseOrder) error {
	for _, l := range o.Lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO purchase_order_lines (id, order_id, item_id, item_name, quantity, uom_id, note, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			l.ID, o.ID, l.ItemID, l.ItemName, l.Quantity, l.UomID, l.Note, l.Position,
		)
		if err != nil {
			return fmt.Errorf("insert purchase order line: %w", err)
		}
	}
	return nil
}
