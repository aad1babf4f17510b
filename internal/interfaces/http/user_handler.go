package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ndtrung/warehouse-backoffice/internal/application/dto"
	"github.com/ndtrung/warehouse-backoffice/internal/application/usecase"
)

// UserHandler admin account management. The whole group sits behind
// RequireRole(ADMIN).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler builds the user admin handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Danh sách người dùng
// @Tags         admin
// @Produce      json
// @Param        pageNumber     query  int     false  "trang, mặc định 1"
// @Param        pageSize       query  int     false  "kích thước trang, tối đa 100"
// @Param        searchKeyword  query  string  false  "tìm theo email, username hoặc họ tên"
// @Param        roleId         query  string  false  "lọc theo vai trò"
// @Param        isActive       query  bool    false  "lọc theo trạng thái"
// @Success      200  {object}  dto.Envelope{data=dto.PagedResult[dto.UserResponse]}
// @Security     BearerAuth
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	in, err := parseQuery[dto.UserListRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.Context(), *in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Lấy danh sách người dùng thành công", out)
}

// Create godoc
// @Summary      Tạo người dùng
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "email, fullName, phone, roleId"
// @Success      201   {object}  dto.Envelope{data=dto.CreatedUserResponse}
// @Failure      400   {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/admin/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	in, err := parseBody[dto.CreateUserRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), *in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "Tạo người dùng thành công", out)
}

// Update godoc
// @Summary      Cập nhật người dùng
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "user id"
// @Param        body  body  dto.UpdateUserRequest  true  "email, fullName, phone, roleId"
// @Success      200   {object}  dto.Envelope{data=dto.UserResponse}
// @Failure      404   {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/admin/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	in, err := parseBody[dto.UpdateUserRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), *in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Cập nhật người dùng thành công", out)
}

// ToggleStatus godoc
// @Summary      Bật/tắt trạng thái người dùng
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "user id"
// @Success      200  {object}  dto.Envelope{data=dto.UserResponse}
// @Failure      404  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/admin/users/{id}/status [patch]
func (h *UserHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Cập nhật trạng thái thành công", out)
}

// Roles godoc
// @Summary      Danh sách vai trò
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.RoleResponse}
// @Security     BearerAuth
// @Router       /api/admin/roles [get]
func (h *UserHandler) Roles(c *fiber.Ctx) error {
	out, err := h.uc.Roles(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Lấy danh sách vai trò thành công", out)
}
