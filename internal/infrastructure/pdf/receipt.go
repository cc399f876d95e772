// Package pdf genera los documentos imprimibles de la suite con Maroto v2:
// el recibo de venta del punto de venta y el desprendible de pago de nómina.
package pdf

import (
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

	"github.com/tu-usuario/farmacia-suite/internal/application/pos"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 82}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Etiquetas legibles de los métodos de pago.
var paymentLabels = map[string]string{
	entity.PaymentCash:     "Efectivo",
	entity.PaymentCard:     "Tarjeta",
	entity.PaymentTransfer: "Transferencia",
	entity.PaymentCredit:   "Crédito",
}

var _ pos.ReceiptRenderer = (*ReceiptRenderer)(nil)

// ReceiptRenderer genera el recibo de venta en formato A5.
type ReceiptRenderer struct{}

// NewReceiptRenderer construye el renderizador.
func NewReceiptRenderer() *ReceiptRenderer { return &ReceiptRenderer{} }

// Render genera el PDF del recibo y devuelve sus bytes.
func (r *ReceiptRenderer) Render(
	pharmacy *entity.Pharmacy,
	sale *entity.Sale,
	items []entity.SaleItem,
	payments []entity.SalePayment,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Recibo de venta", true).
		WithAuthor(pharmacy.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(receiptHeaderRow(pharmacy, sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))

	m.AddRows(receiptItemsHeaderRow())
	for _, it := range items {
		m.AddRows(receiptItemRow(it))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(receiptTotalsRow(sale))

	m.AddRows(line.NewRow(2))
	for _, p := range payments {
		m.AddRows(receiptPaymentRow(p))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Gracias por su compra. Conserve este recibo para cambios o devoluciones.", props.Text{
			Size: 6.5, Align: align.Center, Color: colorGray, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// receiptHeaderRow: farmacia (izq) y número de venta + fecha (der).
func receiptHeaderRow(pharmacy *entity.Pharmacy, sale *entity.Sale) core.Row {
	numero := fmt.Sprintf("Venta N° %d", sale.Number)
	fecha := sale.CreatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(pharmacy.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+pharmacy.NIT, props.Text{Size: 7, Top: 7, Color: colorGray}),
			text.New(nonEmpty(pharmacy.Address, "—")+"  |  Tel: "+nonEmpty(pharmacy.Phone, "—"), props.Text{
				Size: 7, Top: 12, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(numero, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6,
			}),
			text.New(fecha, props.Text{Size: 7, Align: align.Right, Top: 12, Color: colorGray}),
		),
	)
}

func receiptItemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("P. Unit", 3, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func receiptItemRow(it entity.SaleItem) core.Row {
	return row.New(5).Add(
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", it.Quantity),
			props.Text{Size: 7, Align: align.Center, Top: 1},
		)),
		col.New(5).Add(text.New(
			it.ProductName,
			props.Text{Size: 7, Align: align.Left, Top: 1},
		)),
		col.New(3).Add(text.New(
			money.Format(it.UnitPrice),
			props.Text{Size: 7, Align: align.Right, Top: 1},
		)),
		col.New(3).Add(text.New(
			money.Format(it.Subtotal),
			props.Text{Size: 7, Align: align.Right, Top: 1},
		)),
	)
}

func receiptTotalsRow(sale *entity.Sale) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 8, Align: align.Right})
	}
	return row.New(18).Add(
		col.New(5),
		col.New(4).Add(
			label("Subtotal:"),
			label("Descuento:"),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2,
			}),
		),
		col.New(3).Add(
			value(money.FormatCOP(sale.Subtotal)),
			value("- "+money.Format(sale.Discount)),
			text.New(money.FormatCOP(sale.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary,
			}),
		),
	)
}

func receiptPaymentRow(p entity.SalePayment) core.Row {
	label := paymentLabels[p.Method]
	if label == "" {
		label = p.Method
	}
	detail := money.FormatCOP(p.Amount)
	if p.Change.IsPositive() {
		detail += "  (vuelta " + money.Format(p.Change) + ")"
	}
	return row.New(5).Add(
		col.New(6).Add(text.New(label, props.Text{Size: 7, Top: 1, Color: colorGray})),
		col.New(6).Add(text.New(detail, props.Text{Size: 7, Align: align.Right, Top: 1})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
