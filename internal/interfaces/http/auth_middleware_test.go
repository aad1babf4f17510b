package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndtrung/warehouse-backoffice/pkg/jwt"
	"github.com/ndtrung/warehouse-backoffice/pkg/rolemap"
)

const testSecret = "test-secret"

func accessToken(t *testing.T, role string) string {
	t.Helper()
	token, _, err := jwt.Generate(testSecret, jwt.KindAccess,
		uuid.NewString(), "annv", role, "warehouse-backoffice", 15*time.Minute)
	require.NoError(t, err)
	return token
}

func newGatedApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	group := app.Group("/", AuthMiddleware(testSecret))
	for _, h := range handlers {
		group = group.Group("/", h)
	}
	group.Get("/protected", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId":   GetUserID(c),
			"username": GetUsername(c),
			"role":     GetRole(c),
		})
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, token string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp, body
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	resp, _ := doGet(t, newGatedApp(), "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	app := newGatedApp()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	resp, _ := doGet(t, newGatedApp(), "khong-phai-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	refresh, _, err := jwt.Generate(testSecret, jwt.KindRefresh,
		uuid.NewString(), "annv", "Quản trị viên", "warehouse-backoffice", 12*time.Hour)
	require.NoError(t, err)

	resp, _ := doGet(t, newGatedApp(), refresh)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewarePopulatesLocals(t *testing.T) {
	resp, body := doGet(t, newGatedApp(), accessToken(t, "Quản trị viên"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "annv", body["username"])
	assert.Equal(t, "Quản trị viên", body["role"])
	assert.NotEmpty(t, body["userId"])
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	app := newGatedApp(RequireRole(rolemap.RoleAdmin))
	resp, _ := doGet(t, app, accessToken(t, "admin"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRoleRedirectsInsufficientRole(t *testing.T) {
	app := newGatedApp(RequireRole(rolemap.RoleAdmin))
	resp, body := doGet(t, app, accessToken(t, "Thủ kho"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// A valid but insufficient role is pointed at its landing page.
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/warehouse", data["redirect"])
}

func TestRequireRoleForcesLogoutOnUnmappedRole(t *testing.T) {
	app := newGatedApp(RequireRole(rolemap.RoleAdmin))
	resp, body := doGet(t, app, accessToken(t, "Thuc tap sinh"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["forceLogout"])
	assert.Equal(t, "/login", data["redirect"])
}

func TestRequireRoleEmptySetAllowsAnyValidRole(t *testing.T) {
	app := newGatedApp(RequireRole())
	for _, role := range []string{"admin", "Giám đốc", "Kế toán", "Sale Engineer"} {
		resp, _ := doGet(t, app, accessToken(t, role))
		assert.Equal(t, http.StatusOK, resp.StatusCode, "role %s", role)
	}

	resp, _ := doGet(t, app, accessToken(t, "vai tro la"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
