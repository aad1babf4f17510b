package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ndtrung/warehouse-backoffice/internal/application/dto"
	"github.com/ndtrung/warehouse-backoffice/internal/domain"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/repository"
	"github.com/ndtrung/warehouse-backoffice/pkg/jwt"
)

// JWTConfig token issuance settings for the auth use case.
type JWTConfig struct {
	Secret              string
	Issuer              string
	AccessMinutes       int
	RefreshHours        int
	RefreshRememberDays int
}

// UseCase authentication: login, token refresh and the password-reset flow.
type UseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	tokens   ResetTokenStore
	mailer   Mailer
	jwtCfg   JWTConfig
}

// NewUseCase wires the auth use case.
func NewUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, tokens ResetTokenStore, mailer Mailer, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, roleRepo: roleRepo, tokens: tokens, mailer: mailer, jwtCfg: jwtCfg}
}

// ValidateLogin checks identifier (email or username) and password. Any
// mismatch — unknown identifier, wrong password, deactivated account —
// returns (nil, nil) so callers cannot tell the cases apart and user
// enumeration stays impossible.
func (uc *UseCase) ValidateLogin(ctx context.Context, identifier, password string) (*entity.User, error) {
	user, err := uc.userRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	if !user.IsActive {
		return nil, nil
	}
	return user, nil
}

// IssueTokens produces the signed access/refresh pair. The refresh window
// depends on rememberMe. Tokens are not persisted anywhere; verification is
// signature plus expiry only.
func (uc *UseCase) IssueTokens(user *entity.User, roleName string, rememberMe bool) (access string, expiresAt time.Time, refresh string, err error) {
	access, expiresAt, err = jwt.Generate(uc.jwtCfg.Secret, jwt.KindAccess,
		user.ID, user.Username, roleName, uc.jwtCfg.Issuer,
		time.Duration(uc.jwtCfg.AccessMinutes)*time.Minute)
	if err != nil {
		return "", time.Time{}, "", err
	}
	refreshTTL := time.Duration(uc.jwtCfg.RefreshHours) * time.Hour
	if rememberMe {
		refreshTTL = time.Duration(uc.jwtCfg.RefreshRememberDays) * 24 * time.Hour
	}
	refresh, _, err = jwt.Generate(uc.jwtCfg.Secret, jwt.KindRefresh,
		user.ID, user.Username, roleName, uc.jwtCfg.Issuer, refreshTTL)
	if err != nil {
		return "", time.Time{}, "", err
	}
	return access, expiresAt, refresh, nil
}

// Login validates credentials, issues tokens and records the login instant.
// Returns ErrUnauthorized with no further detail on any credential mismatch.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.ValidateLogin(ctx, in.Identifier, in.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	roleName, err := uc.roleName(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	access, expiresAt, refresh, err := uc.IssueTokens(user, roleName, in.RememberMe)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user.LastLoginAt = &now
	user.UpdatedAt = now
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		User:         toUserResponse(user, roleName),
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The user is
// reloaded so a deactivated account cannot keep refreshing.
func (uc *UseCase) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	claims, err := jwt.ParseKind(uc.jwtCfg.Secret, refreshToken, jwt.KindRefresh)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrTokenInvalid
	}
	roleName, err := uc.roleName(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	access, expiresAt, refresh, err := uc.IssueTokens(user, roleName, false)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		User:         toUserResponse(user, roleName),
	}, nil
}

// SendResetPasswordEmail issues a single-use reset token and mails it.
// Succeeds silently for an unknown email so the endpoint does not reveal
// whether an address is registered.
func (uc *UseCase) SendResetPasswordEmail(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	token := uuid.NewString()
	if err := uc.tokens.Save(ctx, token, user.ID); err != nil {
		return err
	}
	return uc.mailer.SendResetPassword(user.Email, user.FullName, token)
}

// ResetPassword redeems the token and replaces the password hash. An
// expired, unknown or already-consumed token fails with ErrTokenInvalid;
// redemption itself is atomic, so the token can never be used twice.
func (uc *UseCase) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := uc.tokens.Redeem(ctx, token)
	if err != nil {
		return err
	}
	if userID == "" {
		return domain.ErrTokenInvalid
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrTokenInvalid
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}

func (uc *UseCase) roleName(ctx context.Context, roleID string) (string, error) {
	role, err := uc.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return "", err
	}
	if role == nil {
		return "", nil
	}
	return role.Name, nil
}

func toUserResponse(u *entity.User, roleName string) dto.UserResponse {
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
