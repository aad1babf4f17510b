package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ndtrung/warehouse-backoffice/internal/application/dto"
	"github.com/ndtrung/warehouse-backoffice/internal/application/usecase"
)

// PurchaseOrderHandler purchase-order browsing and printing. Mutations go
// through the procurement workflow, not this API.
type PurchaseOrderHandler struct {
	uc *usecase.PurchaseOrderUseCase
}

// NewPurchaseOrderHandler builds the purchase-order handler.
func NewPurchaseOrderHandler(uc *usecase.PurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc}
}

// List godoc
// @Summary      Danh sách phiếu đặt hàng
// @Tags         purchaseorder
// @Produce      json
// @Param        pageNumber     query  int     false  "trang, mặc định 1"
// @Param        pageSize       query  int     false  "kích thước trang, tối đa 100"
// @Param        searchKeyword  query  string  false  "tìm theo mã phiếu hoặc người đề nghị"
// @Param        supplierId     query  string  false  "lọc theo nhà cung cấp"
// @Param        status         query  string  false  "lọc theo trạng thái"
// @Success      200  {object}  dto.Envelope{data=dto.PagedResult[dto.PurchaseOrderResponse]}
// @Security     BearerAuth
// @Router       /api/purchaseorder [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	in, err := parseQuery[dto.PurchaseOrderListRequest](c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.Context(), *in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Lấy danh sách phiếu đặt hàng thành công", out)
}

// GetByID godoc
// @Summary      Chi tiết phiếu đặt hàng
// @Tags         purchaseorder
// @Produce      json
// @Param        id  path  string  true  "order id"
// @Success      200  {object}  dto.Envelope{data=dto.PurchaseOrderResponse}
// @Failure      404  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/purchaseorder/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "Lấy thông tin phiếu đặt hàng thành công", out)
}

// Print godoc
// @Summary      In phiếu đặt hàng (PDF)
// @Tags         purchaseorder
// @Produce      application/pdf
// @Param        id  path  string  true  "order id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /api/purchaseorder/{id}/print [get]
func (h *PurchaseOrderHandler) Print(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Print(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="phieu-dat-hang-%s.pdf"`, id))
	return c.Send(pdf)
}
