package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ndtrung/warehouse-backoffice/internal/application/dto"
	"github.com/ndtrung/warehouse-backoffice/internal/application/usecase"
)

// SupplierHandler supplier reference CRUD.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler builds the supplier handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List godoc
// @Summary      Danh sách nhà cung cấp
// @Tags         supplier
// @Produce      json
// @Param        pageNumber     query  int     false  "trang, mặc định 1"
// @Param        pageSize       query  int     false  "kích thước trang, tối đa 100"
// @Param        searchKeyword  query  string  false  "tìm theo mã hoặc tên"
// @Param        isActive       query  bool    false  "lọc theo trạng thái"
// @Success      200  {object}  dto.Envelope{data=dto.PagedResult[dto.PartnerResponse]}
// @Security     BearerAuth
// @Router       /api/supplier [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	in, err := parseQuery[dto.PartnerListRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.Context(), *in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Lấy danh sách nhà cung cấp thành công", out)
}

// GetByID godoc
// @Summary      Chi tiết nhà cung cấp
// @Tags         supplier
// @Produce      json
// @Param        id  path  string  true  "supplier id"
// @Success      200  {object}  dto.Envelope{data=dto.PartnerResponse}
// @Failure      404  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/supplier/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Lấy thông tin nhà cung cấp thành công", out)
}

// Create godoc
// @Summary      Tạo nhà cung cấp
// @Tags         supplier
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartnerRequest  true  "code, name, contactPerson, phone, email, address"
// @Success      201   {object}  dto.Envelope{data=dto.PartnerResponse}
// @Failure      400   {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/supplier [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	in, err := parseBody[dto.CreatePartnerRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), *in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "Tạo nhà cung cấp thành công", out)
}

// Update godoc
// @Summary      Cập nhật nhà cung cấp
// @Tags         supplier
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "supplier id"
// @Param        body  body  dto.UpdatePartnerRequest  true  "name, contactPerson, phone, email, address"
// @Success      200   {object}  dto.Envelope{data=dto.PartnerResponse}
// @Failure      404   {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/supplier/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	in, err := parseBody[dto.UpdatePartnerRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), *in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Cập nhật nhà cung cấp thành công", out)
}

// ToggleStatus godoc
// @Summary      Bật/tắt trạng thái nhà cung cấp
// @Tags         supplier
// @Produce      json
// @Param        id  path  string  true  "supplier id"
// @Success      200  {object}  dto.Envelope{data=dto.PartnerResponse}
// @Failure      404  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/supplier/{id}/status [patch]
func (h *SupplierHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Cập nhật trạng thái thành công", out)
}
