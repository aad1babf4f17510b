package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ndtrung/warehouse-backoffice/internal/application/dto"
	"github.com/ndtrung/warehouse-backoffice/pkg/jwt"
	"github.com/ndtrung/warehouse-backoffice/pkg/rolemap"
)

// Locals keys populated by AuthMiddleware.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// AuthMiddleware validates the Bearer access token and stores the identity in
// c.Locals. Refresh tokens are rejected here; they are only good for the
// refresh endpoint.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
				Success: false, Message: "Thiếu thông tin đăng nhập",
			})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
				Success: false, Message: "Định dạng yêu cầu: Bearer <token>",
			})
		}
		claims, err := jwt.ParseKind(jwtSecret, strings.TrimSpace(parts[1]), jwt.KindAccess)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
				Success: false, Message: "Token không hợp lệ hoặc đã hết hạn",
			})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole gates a route group by permission role. It runs after
// AuthMiddleware and applies the same decisions as the web route gate: a role
// that maps to nothing invalidates the session (401 with forced logout), a
// valid but insufficient role is pointed at its landing page (403 with the
// redirect target).
func RequireRole(allowed ...rolemap.PermissionRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rawRole := GetRole(c)
		res := rolemap.Decide(GetUserID(c) != "", rawRole, allowed...)
		switch res.Decision {
		case rolemap.Allow:
			return c.Next()
		case rolemap.LogoutRoleError:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
				Success: false,
				Message: "Vai trò không hợp lệ, vui lòng đăng nhập lại",
				Data:    fiber.Map{"redirect": res.Redirect, "forceLogout": true},
			})
		case rolemap.RedirectLogin:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
				Success: false,
				Message: "Vui lòng đăng nhập",
				Data:    fiber.Map{"redirect": res.Redirect},
			})
		default: // rolemap.RedirectHome
			return c.Status(fiber.StatusForbidden).JSON(dto.Envelope{
				Success: false,
				Message: "Bạn không có quyền truy cập chức năng này",
				Data:    fiber.Map{"redirect": res.Redirect},
			})
		}
	}
}

// GetUserID returns the authenticated user id, or "" before AuthMiddleware.
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUsername returns the authenticated username.
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetRole returns the raw role name carried by the access token.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
