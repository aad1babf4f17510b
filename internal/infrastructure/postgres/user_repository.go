package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

var userMapping = Mapping[entity.User]{
	Table: "users",
	Columns: []string{
		"id", "email", "username", "full_name", "phone", "password_hash",
		"is_active", "role_id", "created_at", "updated_at", "last_login_at",
	},
	DefaultOrder: "created_at DESC, id DESC",
	Fields: func(u *entity.User) []any {
		return []any{
			&u.ID, &u.Email, &u.Username, &u.FullName, &u.Phone, &u.PasswordHash,
			&u.IsActive, &u.RoleID, &u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt,
		}
	},
	Values: func(u *entity.User) []any {
		return []any{
			u.ID, u.Email, u.Username, u.FullName, u.Phone, u.PasswordHash,
			u.IsActive, u.RoleID, u.CreatedAt, u.UpdatedAt, u.LastLoginAt,
		}
	},
}

// UserRepo PostgreSQL adapter for the UserRepository port.
type UserRepo struct {
	*Repo[entity.User]
}

// NewUserRepository builds the adapter. Pass the pool or a unit of work.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{Repo: NewRepo(q, userMapping)}
}

// GetByIdentifier matches email OR username exactly as stored.
func (r *UserRepo) GetByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	users, err := r.Select().
		Where("(email = ? OR username = ?)", identifier, identifier).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}

// GetByEmail returns (nil, nil) when absent.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := r.Select().Where("email = ?", email).All(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}

// UsernameExists reports whether the username is already taken.
func (r *UserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("username exists: %w", err)
	}
	return exists, nil
}

// List returns one page of users plus the total match count.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, int, error) {
	q := r.Select()
	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		q.Where("(email ILIKE ? OR username ILIKE ? OR full_name ILIKE ?)", kw, kw, kw)
	}
	if f.RoleID != "" {
		q.Where("role_id = ?", f.RoleID)
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
	users, err := q.Page(ctx, f.Page)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
