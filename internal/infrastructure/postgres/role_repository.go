package postgres

import (
	"context"

	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

var roleMapping = Mapping[entity.Role]{
	Table:        "roles",
	Columns:      []string{"id", "code", "name"},
	DefaultOrder: "code ASC",
	Fields: func(r *entity.Role) []any {
		return []any{&r.ID, &r.Code, &r.Name}
	},
	Values: func(r *entity.Role) []any {
		return []any{r.ID, r.Code, r.Name}
	},
}

// RoleRepo PostgreSQL adapter for the RoleRepository port.
type RoleRepo struct {
	*Repo[entity.Role]
}

// NewRoleRepository builds the adapter. Pass the pool or a unit of work.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{Repo: NewRepo(q, roleMapping)}
}

// GetByCode returns (nil, nil) when absent.
func (r *RoleRepo) GetByCode(ctx context.Context, code string) (*entity.Role, error) {
	roles, err := r.Select().Where("code = ?", code).All(ctx)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, nil
	}
	return roles[0], nil
}
