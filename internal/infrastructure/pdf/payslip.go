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
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/farmacia-suite/internal/application/payroll"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/pkg/money"
)

var _ payroll.PayslipRenderer = (*PayslipRenderer)(nil)

// PayslipRenderer genera el desprendible de pago mensual en A4.
type PayslipRenderer struct{}

// NewPayslipRenderer construye el renderizador.
func NewPayslipRenderer() *PayslipRenderer { return &PayslipRenderer{} }

// Render genera el PDF del desprendible y devuelve sus bytes.
func (r *PayslipRenderer) Render(
	pharmacy *entity.Pharmacy,
	employee *entity.Employee,
	payslip *entity.Payslip,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Desprendible de pago", true).
		WithAuthor(pharmacy.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(payslipHeaderRow(pharmacy, payslip))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(employeeRow(employee))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Devengos
	m.AddRows(sectionTitleRow("DEVENGOS"))
	m.AddRows(conceptRow("Salario base", payslip.GrossSalary))
	m.AddRows(conceptRow("Bonificaciones", payslip.Bonuses))
	m.AddRows(conceptRow("Auxilio de transporte", payslip.TransportAllow))

	// Deducciones
	m.AddRows(sectionTitleRow("DEDUCCIONES"))
	m.AddRows(conceptRow("Salud (4%)", payslip.HealthDeduct.Neg()))
	m.AddRows(conceptRow("Pensión (4%)", payslip.PensionDeduct.Neg()))
	m.AddRows(conceptRow("Otras deducciones", payslip.OtherDeduct.Neg()))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(netPayRow(payslip))

	m.AddRows(line.NewRow(4))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(
			"Liquidación calculada conforme al régimen laboral colombiano vigente. "+
				"Este documento es soporte del pago del período indicado.",
			props.Text{Size: 7, Color: colorGray, Top: 2},
		),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar desprendible: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func payslipHeaderRow(pharmacy *entity.Pharmacy, payslip *entity.Payslip) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(pharmacy.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+pharmacy.NIT, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("DESPRENDIBLE DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+payslip.Period, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

func employeeRow(employee *entity.Employee) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("EMPLEADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(employee.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("CC: %s   |   Cargo: %s", employee.Document, employee.Position), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func conceptRow(concept string, amount decimal.Decimal) core.Row {
	return row.New(5).Add(
		col.New(8).Add(text.New(concept, props.Text{Size: 8, Top: 1, Left: 2})),
		col.New(4).Add(text.New(money.Format(amount), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

func netPayRow(payslip *entity.Payslip) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("NETO A PAGAR", props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2, Left: 2,
		})),
		col.New(4).Add(text.New(money.FormatCOP(payslip.NetPay), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}
