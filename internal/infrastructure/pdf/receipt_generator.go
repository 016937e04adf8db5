// Package pdf genera el recibo de venta en PDF con Maroto v2.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda │ N° + Fecha    │
//	│  ──────────────────────────────────────────  │
//	│  CLIENTE (si se capturó)                      │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal   │
//	│  ──────────────────────────────────────────  │
//	│  TOTAL                                        │
//	└──────────────────────────────────────────────┘
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

	"github.com/HaosShot/zapateria-pos/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 40, Green: 40, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator genera el recibo PDF de una venta registrada.
type ReceiptGenerator struct {
	storeName string
}

// NewReceiptGenerator construye el generador con el nombre de la tienda.
func NewReceiptGenerator(storeName string) *ReceiptGenerator {
	return &ReceiptGenerator{storeName: storeName}
}

// GenerateReceipt genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceipt(_ context.Context, sale *entity.Sale) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if sale.CustomerName != "" {
		m.AddRows(customerRow(sale.CustomerName))
	}
	m.AddRows(tableHeaderRow())
	m.AddRows(saleLineRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq), n° de venta + fecha (der).
func (g *ReceiptGenerator) headerRow(sale *entity.Sale) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+sale.ID, props.Text{
				Size: 7, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Fecha: "+sale.SaleDate.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func customerRow(name string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Cliente: "+name, props.Text{Size: 9, Top: 2}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func saleLineRow(sale *entity.Sale) core.Row {
	desc := sale.ProductName
	if sale.Brand != "" {
		desc += " (" + sale.Brand + ")"
	}
	if sale.Size != "" {
		desc += " talla " + sale.Size
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", sale.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(5).Add(text.New(desc, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(sale.UnitPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New(sale.TotalPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

func totalRow(sale *entity.Sale) core.Row {
	return row.New(9).Add(
		col.New(9).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
		col.New(3).Add(text.New(sale.TotalPrice.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}
