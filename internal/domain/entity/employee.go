package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee empleado de la farmacia para el módulo de nómina.
type Employee struct {
	ID         string
	PharmacyID string
	Document   string // cédula
	Name       string
	Position   string
	BaseSalary decimal.Decimal // salario mensual
	HiredAt    time.Time
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Payslip liquidación mensual de un empleado. Los montos se calculan en
// domain/payroll y se persisten ya resueltos para auditoría.
type Payslip struct {
	ID             string
	PharmacyID     string
	EmployeeID     string
	Period         string // "2026-08"
	GrossSalary    decimal.Decimal
	Bonuses        decimal.Decimal
	TransportAllow decimal.Decimal
	HealthDeduct   decimal.Decimal
	PensionDeduct  decimal.Decimal
	OtherDeduct    decimal.Decimal
	NetPay         decimal.Decimal
	CreatedAt      time.Time
}
