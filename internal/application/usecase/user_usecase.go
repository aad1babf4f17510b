package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ndtrung/warehouse-backoffice/internal/application/dto"
	"github.com/ndtrung/warehouse-backoffice/internal/domain"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/repository"
	"github.com/ndtrung/warehouse-backoffice/pkg/vntext"
)

// UserUseCase admin user management: create with generated credentials,
// profile update, status toggle, paged listing.
type UserUseCase struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserUseCase wires the use case.
func NewUserUseCase(repo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{repo: repo, roleRepo: roleRepo}
}

// Create registers a new account with a generated username and temporary
// password. The temporary password is returned exactly once.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.CreatedUserResponse, error) {
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}
	role, err := uc.roleRepo.GetByID(ctx, in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("role %s: %w", in.RoleID, domain.ErrNotFound)
	}

	username, err := uc.generateUsername(ctx, in.FullName)
	if err != nil {
		return nil, err
	}
	tempPassword, err := generateTempPassword()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Username:     username,
		FullName:     in.FullName,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		IsActive:     true,
		RoleID:       in.RoleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.CreatedUserResponse{
		UserResponse:      userResponse(user, role.Name),
		TemporaryPassword: tempPassword,
	}, nil
}

// Update replaces the profile fields. Username and password are untouched.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != user.Email {
		other, err := uc.repo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrEmailExists
		}
	}
	role, err := uc.roleRepo.GetByID(ctx, in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("role %s: %w", in.RoleID, domain.ErrNotFound)
	}

	user.Email = in.Email
	user.FullName = in.FullName
	user.Phone = in.Phone
	user.RoleID = in.RoleID
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := userResponse(user, role.Name)
	return &resp, nil
}

// ToggleStatus flips the active flag. Accounts are never hard-deleted.
func (uc *UserUseCase) ToggleStatus(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.IsActive = !user.IsActive
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	roleName, err := uc.roleNameOf(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	resp := userResponse(user, roleName)
	return &resp, nil
}

// List returns one page of users with role names resolved.
func (uc *UserUseCase) List(ctx context.Context, in dto.UserListRequest) (*dto.PagedResult[dto.UserResponse], error) {
	rng, err := in.Range()
	if err != nil {
		return nil, fmt.Errorf("%w: fromDate/toDate", domain.ErrValidation)
	}
	page := in.Page()
	users, total, err := uc.repo.List(ctx, repository.UserFilter{
		Keyword:   in.SearchKeyword,
		RoleID:    in.RoleID,
		IsActive:  in.IsActive,
		DateRange: rng,
		Page:      page,
	})
	if err != nil {
		return nil, err
	}
	names, err := uc.roleNames(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, userResponse(u, names[u.RoleID]))
	}
	result := dto.NewPagedResult(items, page, total)
	return &result, nil
}

// Roles lists the role catalogue.
func (uc *UserUseCase) Roles(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := uc.roleRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleResponse{ID: r.ID, Code: r.Code, Name: r.Name})
	}
	return out, nil
}

// generateUsername builds the conventional username: folded given name plus
// the initials of the rest ("Nguyễn Văn An" -> "annv"), numeric suffix on
// collision ("annv1", "annv2", ...).
func (uc *UserUseCase) generateUsername(ctx context.Context, fullName string) (string, error) {
	words := strings.Fields(vntext.Fold(fullName))
	if len(words) == 0 {
		return "", fmt.Errorf("%w: ho ten trong", domain.ErrValidation)
	}
	base := vntext.FoldKey(words[len(words)-1])
	for _, w := range words[:len(words)-1] {
		key := vntext.FoldKey(w)
		if key != "" {
			base += key[:1]
		}
	}
	if base == "" {
		return "", fmt.Errorf("%w: ho ten khong hop le", domain.ErrValidation)
	}
	candidate := base
	for i := 1; ; i++ {
		taken, err := uc.repo.UsernameExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
}

const tempPasswordChars = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"

func generateTempPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = tempPasswordChars[int(b)%len(tempPasswordChars)]
	}
	return string(buf), nil
}

func (uc *UserUseCase) roleNameOf(ctx context.Context, roleID string) (string, error) {
	role, err := uc.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return "", err
	}
	if role == nil {
		return "", nil
	}
	return role.Name, nil
}

// roleNames loads the role catalogue as an id -> name map. The catalogue is
// a handful of rows, so one fetch per list call is fine.
func (uc *UserUseCase) roleNames(ctx context.Context) (map[string]string, error) {
	roles, err := uc.roleRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(roles))
	for _, r := range roles {
		names[r.ID] = r.Name
	}
	return names, nil
}

func userResponse(u *entity.User, roleName string) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		FullName:    u.FullName,
		Phone:       u.Phone,
		IsActive:    u.IsActive,
		RoleID:      u.RoleID,
		RoleName:    roleName,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
