package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ndtrung/warehouse-backoffice/internal/application/auth"
	"github.com/ndtrung/warehouse-backoffice/internal/application/dto"
)

// AuthHandler login, token refresh and the password-reset flow.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Đăng nhập
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "identifier (email hoặc username), password, rememberMe"
// @Success      200   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      401   {object}  dto.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	in, err := parseBody[dto.LoginRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Login(c.Context(), *in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Đăng nhập thành công", out)
}

// Refresh godoc
// @Summary      Làm mới token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshRequest  true  "refreshToken"
// @Success      200   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      401   {object}  dto.Envelope
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	in, err := parseBody[dto.RefreshRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Refresh(c.Context(), in.RefreshToken)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Làm mới token thành công", out)
}

// ForgotPassword godoc
// @Summary      Quên mật khẩu
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  dto.Envelope
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	in, err := parseBody[dto.ForgotPasswordRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.SendResetPasswordEmail(c.Context(), in.Email); err != nil {
		return respondError(c, err)
	}
	// Same answer whether or not the email exists.
	return respondOK(c, fiber.StatusOK, "Nếu email tồn tại, hướng dẫn đặt lại mật khẩu đã được gửi", nil)
}

// ResetPassword godoc
// @Summary      Đặt lại mật khẩu
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "token, newPassword"
// @Success      200   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	in, err := parseBody[dto.ResetPasswordRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.ResetPassword(c.Context(), in.Token, in.NewPassword); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Đặt lại mật khẩu thành công", nil)
}
