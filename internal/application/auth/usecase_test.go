package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ndtrung/warehouse-backoffice/internal/application/auth"
	"github.com/ndtrung/warehouse-backoffice/internal/application/dto"
	"github.com/ndtrung/warehouse-backoffice/internal/domain"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/repository"
	"github.com/ndtrung/warehouse-backoffice/pkg/jwt"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func (m *memUserRepo) GetAll(context.Context) ([]*entity.User, error) { return nil, nil }

func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	c := *u
	m.users[u.ID] = &c
	return nil
}

func (m *memUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *u
	m.users[u.ID] = &c
	return nil
}

func (m *memUserRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}

func (m *memUserRepo) GetByIdentifier(_ context.Context, identifier string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == identifier || u.Username == identifier {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) List(context.Context, repository.UserFilter) ([]*entity.User, int, error) {
	return nil, 0, nil
}

type memRoleRepo struct {
	role *entity.Role
}

func (m *memRoleRepo) GetAll(context.Context) ([]*entity.Role, error) {
	return []*entity.Role{m.role}, nil
}

func (m *memRoleRepo) GetByID(_ context.Context, id string) (*entity.Role, error) {
	if m.role != nil && m.role.ID == id {
		c := *m.role
		return &c, nil
	}
	return nil, nil
}

func (m *memRoleRepo) Create(context.Context, *entity.Role) error        { return nil }
func (m *memRoleRepo) Update(context.Context, *entity.Role) error        { return nil }
func (m *memRoleRepo) Delete(context.Context, string) (bool, error)      { return false, nil }
func (m *memRoleRepo) GetByCode(context.Context, string) (*entity.Role, error) {
	return nil, nil
}

// memTokenStore single-use semantics in memory: Redeem removes the token.
type memTokenStore struct {
	tokens map[string]string
}

func (m *memTokenStore) Save(_ context.Context, token, userID string) error {
	m.tokens[token] = userID
	return nil
}

func (m *memTokenStore) Redeem(_ context.Context, token string) (string, error) {
	userID := m.tokens[token]
	delete(m.tokens, token)
	return userID, nil
}

type memMailer struct {
	sentTo     []string
	lastTokens []string
}

func (m *memMailer) SendResetPassword(to, _, token string) error {
	m.sentTo = append(m.sentTo, to)
	m.lastTokens = append(m.lastTokens, token)
	return nil
}

const testPassword = "mat-khau-123"

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{
		Secret:              "test-secret",
		Issuer:              "warehouse-backoffice",
		AccessMinutes:       15,
		RefreshHours:        12,
		RefreshRememberDays: 30,
	}
}

func newAuthFixture(t *testing.T) (*auth.UseCase, *memUserRepo, *memTokenStore, *memMailer, *entity.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	role := &entity.Role{ID: uuid.NewString(), Code: "ADMIN", Name: "Quản trị viên"}
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        "an.nguyen@example.com",
		Username:     "annv",
		FullName:     "Nguyễn Văn An",
		PasswordHash: string(hash),
		IsActive:     true,
		RoleID:       role.ID,
		CreatedAt:    time.Now(),
	}
	users := &memUserRepo{users: map[string]*entity.User{user.ID: user}}
	tokens := &memTokenStore{tokens: map[string]string{}}
	mailer := &memMailer{}
	uc := auth.NewUseCase(users, &memRoleRepo{role: role}, tokens, mailer, testJWTConfig())
	return uc, users, tokens, mailer, user
}

func TestValidateLoginIndistinguishableFailures(t *testing.T) {
	uc, users, _, _, user := newAuthFixture(t)
	ctx := context.Background()

	// Unknown identifier, wrong password and deactivated account all come
	// back as the same (nil, nil).
	got, err := uc.ValidateLogin(ctx, "khong-ton-tai", testPassword)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = uc.ValidateLogin(ctx, user.Username, "sai-mat-khau")
	require.NoError(t, err)
	assert.Nil(t, got)

	user.IsActive = false
	require.NoError(t, users.Update(ctx, user))
	got, err = uc.ValidateLogin(ctx, user.Username, testPassword)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestValidateLoginByEmailOrUsername(t *testing.T) {
	uc, _, _, _, user := newAuthFixture(t)
	ctx := context.Background()

	byUsername, err := uc.ValidateLogin(ctx, user.Username, testPassword)
	require.NoError(t, err)
	require.NotNil(t, byUsername)

	byEmail, err := uc.ValidateLogin(ctx, user.Email, testPassword)
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, byUsername.ID, byEmail.ID)
}

func TestLoginIssuesTokensAndRecordsLogin(t *testing.T) {
	uc, users, _, _, user := newAuthFixture(t)
	ctx := context.Background()

	resp, err := uc.Login(ctx, dto.LoginRequest{Identifier: user.Username, Password: testPassword})
	require.NoError(t, err)

	claims, err := jwt.ParseKind(testJWTConfig().Secret, resp.AccessToken, jwt.KindAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "Quản trị viên", claims.Role)

	// The refresh token is a refresh token, not a second access token.
	_, err = jwt.ParseKind(testJWTConfig().Secret, resp.RefreshToken, jwt.KindAccess)
	assert.Error(t, err)
	rc, err := jwt.ParseKind(testJWTConfig().Secret, resp.RefreshToken, jwt.KindRefresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, rc.UserID)

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLoginAt)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	uc, _, _, _, user := newAuthFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Identifier: user.Username, Password: "sai-mat-khau"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRememberMeExtendsRefreshWindow(t *testing.T) {
	uc, _, _, _, user := newAuthFixture(t)
	ctx := context.Background()

	short, err := uc.Login(ctx, dto.LoginRequest{Identifier: user.Username, Password: testPassword})
	require.NoError(t, err)
	long, err := uc.Login(ctx, dto.LoginRequest{Identifier: user.Username, Password: testPassword, RememberMe: true})
	require.NoError(t, err)

	shortClaims, err := jwt.ParseKind(testJWTConfig().Secret, short.RefreshToken, jwt.KindRefresh)
	require.NoError(t, err)
	longClaims, err := jwt.ParseKind(testJWTConfig().Secret, long.RefreshToken, jwt.KindRefresh)
	require.NoError(t, err)
	assert.True(t, longClaims.ExpiresAt.After(shortClaims.ExpiresAt.Add(24*time.Hour)))
}

func TestRefresh(t *testing.T) {
	uc, users, _, _, user := newAuthFixture(t)
	ctx := context.Background()

	login, err := uc.Login(ctx, dto.LoginRequest{Identifier: user.Username, Password: testPassword})
	require.NoError(t, err)

	refreshed, err := uc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, user.ID, refreshed.User.ID)

	// An access token is not accepted as a refresh token.
	_, err = uc.Refresh(ctx, login.AccessToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	// A deactivated account cannot keep refreshing.
	user.IsActive = false
	require.NoError(t, users.Update(ctx, user))
	_, err = uc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestRefreshGarbageToken(t *testing.T) {
	uc, _, _, _, _ := newAuthFixture(t)

	_, err := uc.Refresh(context.Background(), "khong-phai-jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestResetPasswordFlow(t *testing.T) {
	uc, _, _, mailer, user := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, uc.SendResetPasswordEmail(ctx, user.Email))
	require.Len(t, mailer.sentTo, 1)
	assert.Equal(t, user.Email, mailer.sentTo[0])
	token := mailer.lastTokens[0]

	require.NoError(t, uc.ResetPassword(ctx, token, "mat-khau-moi-99"))

	got, err := uc.ValidateLogin(ctx, user.Username, "mat-khau-moi-99")
	require.NoError(t, err)
	require.NotNil(t, got)

	// The token was consumed by the first redemption.
	err = uc.ResetPassword(ctx, token, "lan-hai")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestResetUnknownEmailIsSilent(t *testing.T) {
	uc, _, tokens, mailer, _ := newAuthFixture(t)

	require.NoError(t, uc.SendResetPasswordEmail(context.Background(), "la@example.com"))
	assert.Empty(t, mailer.sentTo)
	assert.Empty(t, tokens.tokens)
}

func TestResetPasswordUnknownToken(t *testing.T) {
	uc, _, _, _, _ := newAuthFixture(t)

	err := uc.ResetPassword(context.Background(), uuid.NewString(), "mat-khau-moi")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
