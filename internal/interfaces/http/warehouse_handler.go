package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ndtrung/warehouse-backoffice/internal/application/dto"
	"github.com/ndtrung/warehouse-backoffice/internal/application/usecase"
)

// WarehouseHandler warehouse reference CRUD.
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler builds the warehouse handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// List godoc
// @Summary      Danh sách kho
// @Tags         warehouse
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.PagedResult[dto.WarehouseResponse]}
// @Security     BearerAuth
// @Router       /api/warehouse [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	in, err := parseQuery[dto.PartnerListRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.Context(), *in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Lấy danh sách kho thành công", out)
}

// GetByID godoc
// @Summary      Chi tiết kho
// @Tags         warehouse
// @Produce      json
// @Param        id  path  string  true  "warehouse id"
// @Success      200  {object}  dto.Envelope{data=dto.WarehouseResponse}
// @Failure      404  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/warehouse/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Lấy thông tin kho thành công", out)
}

// Create godoc
// @Summary      Tạo kho
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "code, name, address, phone, keeper"
// @Success      201   {object}  dto.Envelope{data=dto.WarehouseResponse}
// @Failure      400   {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/warehouse [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	in, err := parseBody[dto.CreateWarehouseRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), *in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "Tạo kho thành công", out)
}

// Update godoc
// @Summary      Cập nhật kho
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "warehouse id"
// @Param        body  body  dto.UpdateWarehouseRequest  true  "name, address, phone, keeper"
// @Success      200   {object}  dto.Envelope{data=dto.WarehouseResponse}
// @Failure      404   {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/warehouse/{id} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	in, err := parseBody[dto.UpdateWarehouseRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), *in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Cập nhật kho thành công", out)
}

// ToggleStatus godoc
// @Summary      Bật/tắt trạng thái kho
// @Tags         warehouse
// @Produce      json
// @Param        id  path  string  true  "warehouse id"
// @Success      200  {object}  dto.Envelope{data=dto.WarehouseResponse}
// @Failure      404  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/warehouse/{id}/status [patch]
func (h *WarehouseHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Cập nhật trạng thái thành công", out)
}
