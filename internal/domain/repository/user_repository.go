package repository

import (
	"context"

	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
)

// UserRepository persistence port for User.
type UserRepository interface {
	CRUD[entity.User]
	// GetByIdentifier matches email OR username, as stored. (nil, nil) when absent.
	GetByIdentifier(ctx context.Context, identifier string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	// List returns one page plus the total match count before paging.
	List(ctx context.Context, f UserFilter) ([]*entity.User, int, error)
}

// RoleRepository persistence port for Role. The catalogue is read-only from
// the application's point of view.
type RoleRepository interface {
	CRUD[entity.Role]
	GetByCode(ctx context.Context, code string) (*entity.Role, error)
}
