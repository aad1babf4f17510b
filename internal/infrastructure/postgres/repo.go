package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ndtrung/warehouse-backoffice/internal/domain"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/repository"
)

// Mapping describes how an entity type maps onto its table. Columns[0] must
// be the primary key. Fields returns scan destinations and Values returns
// insert values, both in column order.
type Mapping[T repository.Persistable] struct {
	Table        string
	Columns      []string
	DefaultOrder string // deterministic sort applied when a page has no explicit order
	Fields       func(e *T) []any
	Values       func(e *T) []any
}

// Repo is the generic repository: one implementation of the CRUD contract,
// instantiated per persistable entity type with its mapping. Entity adapters
// embed it and add their filtered queries on top of Select.
type Repo[T repository.Persistable] struct {
	q Querier
	m Mapping[T]
}

var _ repository.CRUD[entity.Supplier] = (*Repo[entity.Supplier])(nil)

// NewRepo binds a mapping to a querier (pool or unit of work).
func NewRepo[T repository.Persistable](q Querier, m Mapping[T]) *Repo[T] {
	return &Repo[T]{q: q, m: m}
}

func (r *Repo[T]) columnList() string { return strings.Join(r.m.Columns, ", ") }

// GetAll fetches every row, unordered. Callers listing for users should go
// through Select and a page instead.
func (r *Repo[T]) GetAll(ctx context.Context) ([]*T, error) {
	return r.Select().All(ctx)
}

// GetByID returns (nil, nil) when no row matches; absence is not an error.
func (r *Repo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, r.columnList(), r.m.Table, r.m.Columns[0])
	e := new(T)
	err := r.q.QueryRow(ctx, query, id).Scan(r.m.Fields(e)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s by id: %w", r.m.Table, err)
	}
	return e, nil
}

// Create inserts the entity. A unique violation surfaces as ErrConflict.
func (r *Repo[T]) Create(ctx context.Context, e *T) error {
	placeholders := make([]string, len(r.m.Columns))
	for i := range r.m.Columns {
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		r.m.Table, r.columnList(), strings.Join(placeholders, ", "))
	if _, err := r.q.Exec(ctx, query, r.m.Values(e)...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert %s: %w", r.m.Table, err)
	}
	return nil
}

// Update is a full replace keyed on the entity's own id. ErrNotFound when the
// row no longer exists, ErrConflict on a unique violation.
func (r *Repo[T]) Update(ctx context.Context, e *T) error {
	sets := make([]string, 0, len(r.m.Columns)-1)
	for i, col := range r.m.Columns[1:] {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+2))
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1`,
		r.m.Table, strings.Join(sets, ", "), r.m.Columns[0])
	args := append([]any{(*e).EntityID()}, r.m.Values(e)[1:]...)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update %s: %w", r.m.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete reports whether a row existed and was removed. Deleting an absent id
// is a no-op, never an error.
func (r *Repo[T]) Delete(ctx context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, r.m.Table, r.m.Columns[0])
	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", r.m.Table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Select starts a composable query. Nothing hits the store until Count, All
// or Page consumes it, so callers can stack conditions freely.
func (r *Repo[T]) Select() *Query[T] {
	return &Query[T]{repo: r}
}

// Query is a filtered, ordered, not-yet-materialized query over one table.
type Query[T repository.Persistable] struct {
	repo  *Repo[T]
	conds []string
	args  []any
	order string
}

// Where appends a condition. Use ? for arguments; placeholders are rewritten
// to their positional form when the query is consumed.
func (q *Query[T]) Where(expr string, args ...any) *Query[T] {
	q.conds = append(q.conds, expr)
	q.args = append(q.args, args...)
	return q
}

// OrderBy sets an explicit ORDER BY expression.
func (q *Query[T]) OrderBy(expr string) *Query[T] {
	q.order = expr
	return q
}

// whereClause joins conditions and rewrites ? placeholders to $1..$n.
func (q *Query[T]) whereClause() string {
	if len(q.conds) == 0 {
		return ""
	}
	joined := " WHERE " + strings.Join(q.conds, " AND ")
	var b strings.Builder
	n := 0
	for _, c := range joined {
		if c == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Count returns the total match count, ignoring any page bounds.
func (q *Query[T]) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, q.repo.m.Table, q.whereClause())
	var n int
	if err := q.repo.q.QueryRow(ctx, query, q.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", q.repo.m.Table, err)
	}
	return n, nil
}

// All materializes every matching row.
func (q *Query[T]) All(ctx context.Context) ([]*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s%s`, q.repo.columnList(), q.repo.m.Table, q.whereClause())
	if q.order != "" {
		query += " ORDER BY " + q.order
	}
	return q.fetch(ctx, query, q.args)
}

// Page materializes one page. When no explicit order was set the mapping's
// default order applies: unordered pagination would make page boundaries
// non-deterministic.
func (q *Query[T]) Page(ctx context.Context, p repository.Page) ([]*T, error) {
	p = p.Clamp()
	order := q.order
	if order == "" {
		order = q.repo.m.DefaultOrder
	}
	n := len(q.args)
	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		q.repo.columnList(), q.repo.m.Table, q.whereClause(), order, n+1, n+2)
	args := append(append([]any{}, q.args...), p.Size, p.Offset())
	return q.fetch(ctx, query, args)
}

func (q *Query[T]) fetch(ctx context.Context, query string, args []any) ([]*T, error) {
	rows, err := q.repo.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", q.repo.m.Table, err)
	}
	defer rows.Close()
	var list []*T
	for rows.Next() {
		e := new(T)
		if err := rows.Scan(q.repo.m.Fields(e)...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", q.repo.m.Table, err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
