// Package payroll implementa la aritmética de liquidación mensual (servicio de
// dominio puro). Porcentajes según régimen colombiano simplificado.
package payroll

import "github.com/shopspring/decimal"

var (
	healthRate  = decimal.NewFromFloat(0.04) // aporte salud empleado
	pensionRate = decimal.NewFromFloat(0.04) // aporte pensión empleado

	// Auxilio de transporte: aplica si el salario base no supera 2 SMMLV.
	minimumWage     = decimal.NewFromInt(1_423_500)
	transportAllow  = decimal.NewFromInt(200_000)
	transportCutoff = minimumWage.Mul(decimal.NewFromInt(2))
)

// Input datos de entrada de la liquidación de un período.
type Input struct {
	BaseSalary  decimal.Decimal
	Bonuses     decimal.Decimal // bonificaciones no salariales del período
	OtherDeduct decimal.Decimal // descuentos adicionales (préstamos, embargos)
}

// Result montos resueltos de la liquidación.
type Result struct {
	Gross          decimal.Decimal // base + bonificaciones
	TransportAllow decimal.Decimal
	HealthDeduct   decimal.Decimal // 4% sobre el salario base
	PensionDeduct  decimal.Decimal // 4% sobre el salario base
	OtherDeduct    decimal.Decimal
	Net            decimal.Decimal
}

// Calculate liquida el período: bruto, auxilio de transporte, deducciones de
// ley sobre el salario base y neto. Aritmética directa, sin estado.
func Calculate(in Input) Result {
	gross := in.BaseSalary.Add(in.Bonuses)

	allow := decimal.Zero
	if in.BaseSalary.GreaterThan(decimal.Zero) && in.BaseSalary.LessThanOrEqual(transportCutoff) {
		allow = transportAllow
	}

	health := in.BaseSalary.Mul(healthRate).Round(2)
	pension := in.BaseSalary.Mul(pensionRate).Round(2)

	net := gross.Add(allow).Sub(health).Sub(pension).Sub(in.OtherDeduct).Round(2)
	if net.LessThan(decimal.Zero) {
		net = decimal.Zero
	}

	return Result{
		Gross:          gross.Round(2),
		TransportAllow: allow,
		HealthDeduct:   health,
		PensionDeduct:  pension,
		OtherDeduct:    in.OtherDeduct,
		Net:            net,
	}
}
