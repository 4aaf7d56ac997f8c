// Package pdf genera el comprobante de venta en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sucursal + NIT  │  N° Venta + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre + identificación + contacto                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cant | P.Unit | Subtotal                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	appsales "github.com/jhoicas/supermercado-api/internal/application/sales"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appsales.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa sales.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceipt genera el PDF del comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(
	_ context.Context,
	sale *entity.Sale,
	branch *entity.Branch,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Venta", true).
		WithAuthor(branch.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, branch))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, d := range sale.Details {
		m.AddRows(detailRow(d))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: sucursal + NIT (izq) y N° de venta + fecha (der).
func headerRow(sale *entity.Sale, branch *entity.Branch) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(branch.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+branch.Nit, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(sale.SaleDate.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// customerRow: nombre completo + identificación del cliente.
func customerRow(customer *entity.Customer) core.Row {
	name := strings.TrimSpace(strings.Join([]string{
		customer.FirstName, customer.MiddleName, customer.LastName1, customer.LastName2,
	}, " "))
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Cliente: "+name, props.Text{Size: 9, Top: 1}),
			text.New("Identificación: "+customer.IdentificationNumber, props.Text{
				Size: 8, Top: 6, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	headerRight := header
	headerRight.Align = align.Right
	return row.New(7).Add(
		col.New(5).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Cantidad", headerRight)),
		col.New(2).Add(text.New("P. Unitario", headerRight)),
		col.New(3).Add(text.New("Subtotal", headerRight)),
	)
}

func detailRow(d entity.SaleDetail) core.Row {
	cell := props.Text{Size: 9, Top: 1}
	cellRight := cell
	cellRight.Align = align.Right
	return row.New(6).Add(
		col.New(5).Add(text.New(fmt.Sprintf("Producto %d", d.ProductID), cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", d.Quantity), cellRight)),
		col.New(2).Add(text.New("$ "+d.UnitPrice.StringFixed(2), cellRight)),
		col.New(3).Add(text.New("$ "+d.Subtotal.StringFixed(2), cellRight)),
	)
}

func totalRow(sale *entity.Sale) core.Row {
	return row.New(10).Add(
		col.New(9).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
		col.New(3).Add(text.New("$ "+sale.TotalAmount.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
		})),
	)
}
