package compliance_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcompliance "github.com/tu-usuario/farmacia-suite/internal/application/compliance"
	xmlcompliance "github.com/tu-usuario/farmacia-suite/internal/infrastructure/compliance"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
	"github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

func TestXMLBuilder_RegistroMensual(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	in := appcompliance.ReportInput{
		Pharmacy: &entity.Pharmacy{
			Name:    "Droguería La Economía",
			NIT:     "900123456-7",
			Address: "Cra 10 # 20-30",
		},
		Period:      "2026-08",
		PeriodStart: start,
		PeriodEnd:   start.AddDate(0, 1, 0),
		Revenue:     decimal.NewFromInt(1_500_000),
		Cost:        decimal.NewFromInt(900_000),
		Payments: []repository.PaymentBreakdownRow{
			{Method: entity.PaymentCash, Amount: decimal.NewFromInt(1_000_000), Count: 40},
			{Method: entity.PaymentCard, Amount: decimal.NewFromInt(500_000), Count: 12},
		},
		Distribution: map[stock.Status]int{
			stock.StatusRupture: 2,
			stock.StatusNormal:  80,
		},
	}

	out, err := xmlcompliance.NewXMLBuilder().Build(in)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out), "el XML generado debe parsear")

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "RegistroMensual", root.Tag)
	assert.Equal(t, "2026-08", root.SelectAttrValue("periodo", ""))

	assert.Equal(t, "900123456-7", root.FindElement("Farmacia").SelectAttrValue("nit", ""))
	assert.Equal(t, "1500000.00", root.FindElement("Ventas/Ingresos").Text())
	assert.Equal(t, "600000.00", root.FindElement("Ventas/Margen").Text(), "margen = ingresos - costo")
	assert.Equal(t, "2026-08-31", root.FindElement("Ventas").SelectAttrValue("hasta", ""), "último día del período")

	medios := root.FindElements("Ventas/MediosPago/Medio")
	require.Len(t, medios, 2)
	assert.Equal(t, "CASH", medios[0].SelectAttrValue("metodo", ""))
	assert.Equal(t, "40", medios[0].SelectAttrValue("transacciones", ""))

	// El corte siempre lista los cinco niveles, incluso en cero.
	estados := root.FindElements("CorteInventario/Estado")
	require.Len(t, estados, len(stock.AllStatuses))
	assert.Equal(t, "rupture", estados[0].SelectAttrValue("nivel", ""))
	assert.Equal(t, "2", estados[0].Text())
	assert.Equal(t, "0", estados[1].Text(), "niveles sin productos se reportan en cero")
}
