package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest alta de empleado.
type CreateEmployeeRequest struct {
	Document   string          `json:"document" validate:"required,max=20"`
	Name       string          `json:"name" validate:"required,max=200"`
	Position   string          `json:"position" validate:"max=100"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	HiredAt    time.Time       `json:"hired_at"`
}

// EmployeeResponse representación pública de un empleado.
type EmployeeResponse struct {
	ID         string          `json:"id"`
	Document   string          `json:"document"`
	Name       string          `json:"name"`
	Position   string          `json:"position"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	HiredAt    time.Time       `json:"hired_at"`
	Active     bool            `json:"active"`
}

// GeneratePayslipRequest liquidación de un período para un empleado.
type GeneratePayslipRequest struct {
	EmployeeID  string          `json:"employee_id" validate:"required,uuid4"`
	Period      string          `json:"period" validate:"required,len=7"` // "2026-08"
	Bonuses     decimal.Decimal `json:"bonuses"`
	OtherDeduct decimal.Decimal `json:"other_deductions"`
}

// PayslipResponse liquidación resuelta.
type PayslipResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	Period         string          `json:"period"`
	GrossSalary    decimal.Decimal `json:"gross_salary"`
	Bonuses        decimal.Decimal `json:"bonuses"`
	TransportAllow decimal.Decimal `json:"transport_allowance"`
	HealthDeduct   decimal.Decimal `json:"health_deduction"`
	PensionDeduct  decimal.Decimal `json:"pension_deduction"`
	OtherDeduct    decimal.Decimal `json:"other_deductions"`
	NetPay         decimal.Decimal `json:"net_pay"`
	CreatedAt      time.Time       `json:"created_at"`
}
