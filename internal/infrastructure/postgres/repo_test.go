package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndtrung/warehouse-backoffice/internal/domain"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/repository"
)

// stubQuerier records the SQL it receives and answers Exec with a canned
// command tag. Query fails on purpose; these tests only look at the SQL.
type stubQuerier struct {
	lastSQL  string
	lastArgs []any
	execTag  pgconn.CommandTag
}

var errStubQuery = errors.New("stub")

func (s *stubQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.lastSQL, s.lastArgs = sql, args
	return s.execTag, nil
}

func (s *stubQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	s.lastSQL, s.lastArgs = sql, args
	return nil, errStubQuery
}

func (s *stubQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	s.lastSQL, s.lastArgs = sql, args
	return nil
}

// The SQL text the composable query produces must be deterministic: same
// filters, same clause, same placeholder numbering.

func newTestQuery() *Query[entity.Supplier] {
	return NewRepo[entity.Supplier](nil, supplierMapping).Select()
}

func TestWhereClause_Empty(t *testing.T) {
	q := newTestQuery()
	assert.Equal(t, "", q.whereClause())
}

func TestWhereClause_RewritesPlaceholdersInOrder(t *testing.T) {
	q := newTestQuery().
		Where("(code ILIKE ? OR name ILIKE ?)", "%a%", "%a%").
		Where("is_active = ?", true)

	assert.Equal(t,
		" WHERE (code ILIKE $1 OR name ILIKE $2) AND is_active = $3",
		q.whereClause())
	assert.Equal(t, []any{"%a%", "%a%", true}, q.args)
}

func TestWhereClause_StableAcrossCalls(t *testing.T) {
	q := newTestQuery().Where("code = ?", "NCC001").Where("is_active = ?", true)
	first := q.whereClause()
	assert.Equal(t, first, q.whereClause(), "clause must not change between consumptions")
}

func TestDelete_AbsentRowIsNotAnError(t *testing.T) {
	q := &stubQuerier{execTag: pgconn.NewCommandTag("DELETE 0")}
	repo := NewRepo[entity.Supplier](q, supplierMapping)

	deleted, err := repo.Delete(context.Background(), "missing-id")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, `DELETE FROM suppliers WHERE id = $1`, q.lastSQL)
}

func TestDelete_ReportsRemoval(t *testing.T) {
	q := &stubQuerier{execTag: pgconn.NewCommandTag("DELETE 1")}
	repo := NewRepo[entity.Supplier](q, supplierMapping)

	deleted, err := repo.Delete(context.Background(), "some-id")
	require.NoError(t, err)
	assert.True(t, deleted)
}

// Every stored entity must satisfy the persistable capability the generic
// repository is constrained to.
var (
	_ repository.Persistable = entity.User{}
	_ repository.Persistable = entity.Role{}
	_ repository.Persistable = entity.Supplier{}
	_ repository.Persistable = entity.Receiver{}
	_ repository.Persistable = entity.Warehouse{}
	_ repository.Persistable = entity.PurchaseOrder{}
)

func TestUpdate_KeysOnEntityID(t *testing.T) {
	q := &stubQuerier{execTag: pgconn.NewCommandTag("UPDATE 1")}
	repo := NewRepo[entity.Supplier](q, supplierMapping)

	err := repo.Update(context.Background(), &entity.Supplier{ID: "sup-1", Code: "NCC001"})
	require.NoError(t, err)

	assert.Contains(t, q.lastSQL, "UPDATE suppliers SET")
	assert.Contains(t, q.lastSQL, "WHERE id = $1")
	require.NotEmpty(t, q.lastArgs)
	assert.Equal(t, "sup-1", q.lastArgs[0])
}

func TestUpdate_VanishedRowIsNotFound(t *testing.T) {
	q := &stubQuerier{execTag: pgconn.NewCommandTag("UPDATE 0")}
	repo := NewRepo[entity.Supplier](q, supplierMapping)

	err := repo.Update(context.Background(), &entity.Supplier{ID: "gone"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPage_AppliesDefaultOrderAndBounds(t *testing.T) {
	q := &stubQuerier{}
	repo := NewRepo[entity.Supplier](q, supplierMapping)

	_, err := repo.Select().
		Where("is_active = ?", true).
		Page(context.Background(), repository.Page{Number: 3, Size: 20})
	require.ErrorIs(t, err, errStubQuery)

	// Unordered pagination would make page boundaries non-deterministic, so
	// the mapping's default order must appear, followed by LIMIT/OFFSET with
	// continued placeholder numbering.
	assert.Contains(t, q.lastSQL, "WHERE is_active = $1")
	assert.Contains(t, q.lastSQL, "ORDER BY "+supplierMapping.DefaultOrder)
	assert.Contains(t, q.lastSQL, "LIMIT $2 OFFSET $3")
	assert.Equal(t, []any{true, 20, 40}, q.lastArgs)
}

func TestMappings_ColumnsAndFieldsAgree(t *testing.T) {
	assert.Len(t, userMapping.Fields(&entity.User{}), len(userMapping.Columns))
	assert.Len(t, userMapping.Values(&entity.User{}), len(userMapping.Columns))
	assert.Len(t, supplierMapping.Fields(&entity.Supplier{}), len(supplierMapping.Columns))
	assert.Len(t, supplierMapping.Values(&entity.Supplier{}), len(supplierMapping.Columns))
	assert.Len(t, receiverMapping.Fields(&entity.Receiver{}), len(receiverMapping.Columns))
	assert.Len(t, receiverMapping.Values(&entity.Receiver{}), len(receiverMapping.Columns))
	assert.Len(t, warehouseMapping.Fields(&entity.Warehouse{}), len(warehouseMapping.Columns))
	assert.Len(t, warehouseMapping.Values(&entity.Warehouse{}), len(warehouseMapping.Columns))
	assert.Len(t, purchaseOrderMapping.Fields(&entity.PurchaseOrder{}), len(purchaseOrderMapping.Columns))
	assert.Len(t, purchaseOrderMapping.Values(&entity.PurchaseOrder{}), len(purchaseOrderMapping.Columns))
	assert.Len(t, roleMapping.Fields(&entity.Role{}), len(roleMapping.Columns))
	assert.Len(t, roleMapping.Values(&entity.Role{}), len(roleMapping.Columns))
}
