package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ndtrung/warehouse-backoffice/internal/application/dto"
	"github.com/ndtrung/warehouse-backoffice/internal/application/usecase"
)

// ReceiverHandler receiver reference CRUD; mirrors the supplier surface.
type ReceiverHandler struct {
	uc *usecase.ReceiverUseCase
}

// NewReceiverHandler builds the receiver handler.
func NewReceiverHandler(uc *usecase.ReceiverUseCase) *ReceiverHandler {
	return &ReceiverHandler{uc: uc}
}

// List godoc
// @Summary      Danh sách đơn vị nhận hàng
// @Tags         receiver
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.PagedResult[dto.PartnerResponse]}
// @Security     BearerAuth
// @Router       /api/receiver [get]
func (h *ReceiverHandler) List(c *fiber.Ctx) error {
	in, err := parseQuery[dto.PartnerListRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.Context(), *in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Lấy danh sách đơn vị nhận hàng thành công", out)
}

// GetByID godoc
// @Summary      Chi tiết đơn vị nhận hàng
// @Tags         receiver
// @Produce      json
// @Param        id  path  string  true  "receiver id"
// @Success      200  {object}  dto.Envelope{data=dto.PartnerResponse}
// @Failure      404  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/receiver/{id} [get]
func (h *ReceiverHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Lấy thông tin đơn vị nhận hàng thành công", out)
}

// Create godoc
// @Summary      Tạo đơn vị nhận hàng
// @Tags         receiver
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartnerRequest  true  "code, name, contactPerson, phone, email, address"
// @Success      201   {object}  dto.Envelope{data=dto.PartnerResponse}
// @Failure      400   {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/receiver [post]
func (h *ReceiverHandler) Create(c *fiber.Ctx) error {
	in, err := parseBody[dto.CreatePartnerRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), *in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "Tạo đơn vị nhận hàng thành công", out)
}

// Update godoc
// @Summary      Cập nhật đơn vị nhận hàng
// @Tags         receiver
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "receiver id"
// @Param        body  body  dto.UpdatePartnerRequest  true  "name, contactPerson, phone, email, address"
// @Success      200   {object}  dto.Envelope{data=dto.PartnerResponse}
// @Failure      404   {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/receiver/{id} [put]
func (h *ReceiverHandler) Update(c *fiber.Ctx) error {
	in, err := parseBody[dto.UpdatePartnerRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), *in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Cập nhật đơn vị nhận hàng thành công", out)
}

// ToggleStatus godoc
// @Summary      Bật/tắt trạng thái đơn vị nhận hàng
// @Tags         receiver
// @Produce      json
// @Param        id  path  string  true  "receiver id"
// @Success      200  {object}  dto.Envelope{data=dto.PartnerResponse}
// @Failure      404  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/receiver/{id}/status [patch]
func (h *ReceiverHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Cập nhật trạng thái thành công", out)
}
