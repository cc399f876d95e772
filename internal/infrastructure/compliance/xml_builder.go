// Package compliance (infraestructura) serializa el registro mensual a XML
// con etree. El esquema es propio de la suite, pensado para el ente de
// control sanitario departamental.
package compliance

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	appcompliance "github.com/tu-usuario/farmacia-suite/internal/application/compliance"
	"github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

const schemaVersion = "1.0"

var _ appcompliance.ReportBuilder = (*XMLBuilder)(nil)

// XMLBuilder serializa el registro mensual con etree.
type XMLBuilder struct{}

// NewXMLBuilder construye el builder.
func NewXMLBuilder() *XMLBuilder { return &XMLBuilder{} }

// Build arma el documento:
//
//	<RegistroMensual version="1.0" periodo="2026-08">
//	  <Farmacia nit="...">...</Farmacia>
//	  <Ventas desde="..." hasta="..."> Ingresos/Costo/Margen + MediosPago </Ventas>
//	  <CorteInventario generado="..."> un Estado por nivel </CorteInventario>
//	</RegistroMensual>
func (b *XMLBuilder) Build(in appcompliance.ReportInput) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("RegistroMensual")
	root.CreateAttr("version", schemaVersion)
	root.CreateAttr("periodo", in.Period)

	farmacia := root.CreateElement("Farmacia")
	farmacia.CreateAttr("nit", in.Pharmacy.NIT)
	farmacia.CreateElement("RazonSocial").SetText(in.Pharmacy.Name)
	farmacia.CreateElement("Direccion").SetText(in.Pharmacy.Address)

	ventas := root.CreateElement("Ventas")
	ventas.CreateAttr("desde", in.PeriodStart.Format("2006-01-02"))
	ventas.CreateAttr("hasta", in.PeriodEnd.AddDate(0, 0, -1).Format("2006-01-02"))
	ventas.CreateElement("Ingresos").SetText(in.Revenue.StringFixed(2))
	ventas.CreateElement("Costo").SetText(in.Cost.StringFixed(2))
	ventas.CreateElement("Margen").SetText(in.Revenue.Sub(in.Cost).StringFixed(2))

	medios := ventas.CreateElement("MediosPago")
	for _, p := range in.Payments {
		medio := medios.CreateElement("Medio")
		medio.CreateAttr("metodo", p.Method)
		medio.CreateAttr("transacciones", fmt.Sprintf("%d", p.Count))
		medio.SetText(p.Amount.StringFixed(2))
	}

	corte := root.CreateElement("CorteInventario")
	corte.CreateAttr("generado", time.Now().Format(time.RFC3339))
	for _, s := range stock.AllStatuses {
		estado := corte.CreateElement("Estado")
		estado.CreateAttr("nivel", string(s))
		estado.SetText(fmt.Sprintf("%d", in.Distribution[s]))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("compliance: serializar XML: %w", err)
	}
	return out, nil
}
