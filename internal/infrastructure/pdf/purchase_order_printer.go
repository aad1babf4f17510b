// Package pdf renders the purchase-order print sheet.
//
// A4 layout:
//
//	┌──────────────────────────────────────────────────────────┐
//	│  HEADER: Phiếu đặt hàng + mã phiếu │ ngày tạo            │
//	│  ──────────────────────────────────────────────────────  │
//	│  NHÀ CUNG CẤP: tên / mã / liên hệ                        │
//	│  NGƯỜI YÊU CẦU + trạng thái                              │
//	│  ──────────────────────────────────────────────────────  │
//	│  TABLE: STT | Tên hàng | SL | ĐVT | Ghi chú              │
//	└──────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ndtrung/warehouse-backoffice/internal/application/usecase"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 84, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.PurchaseOrderPrinter = (*PurchaseOrderPrinter)(nil)

// PurchaseOrderPrinter renders the print sheet with Maroto v2.
type PurchaseOrderPrinter struct{}

// NewPurchaseOrderPrinter builds the printer.
func NewPurchaseOrderPrinter() *PurchaseOrderPrinter {
	return &PurchaseOrderPrinter{}
}

// RenderPurchaseOrder returns the PDF bytes. The supplier may be nil when the
// reference was removed out-of-band; the sheet then shows a placeholder.
func (g *PurchaseOrderPrinter) RenderPurchaseOrder(_ context.Context, order *entity.PurchaseOrder, supplier *entity.Supplier) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Phiếu đặt hàng "+order.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(supplier))
	m.AddRows(requesterRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(order.Lines) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(order *entity.PurchaseOrder) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("PHIẾU ĐẶT HÀNG", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Mã phiếu: "+order.Code, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Ngày tạo: "+order.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Giai đoạn: %d", order.Stage), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func supplierRow(supplier *entity.Supplier) core.Row {
	name, code, contact := "—", "—", "—"
	if supplier != nil {
		name = supplier.Name
		code = supplier.Code
		contact = fmt.Sprintf("%s | %s | %s",
			nonEmpty(supplier.ContactPerson, "—"),
			nonEmpty(supplier.Phone, "—"),
			nonEmpty(supplier.Email, "—"),
		)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("NHÀ CUNG CẤP", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s (%s)", name, code), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func requesterRow(order *entity.PurchaseOrder) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New("Người yêu cầu: "+order.Requester, props.Text{Size: 9, Top: 2}),
		),
		col.New(4).Add(
			text.New("Trạng thái: "+order.Status, props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("STT", 1, align.Center),
		h("Tên hàng", 5, align.Left),
		h("Số lượng", 2, align.Right),
		h("ĐVT", 1, align.Center),
		h("Ghi chú", 3, align.Left),
	)
}

func tableLineRows(lines []entity.PurchaseOrderLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for i, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.ItemName,
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.Quantity.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				l.UomID,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(l.Note, "—"),
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

func nonEmpty(s, alt string) string {
	if s == "" {
		return alt
	}
	return s
}
