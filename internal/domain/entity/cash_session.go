package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una sesión de caja.
const (
	CashSessionOpen   = "OPEN"
	CashSessionClosed = "CLOSED"
)

// CashSession sesión de caja de un cajero: apertura con base, ventas asociadas
// y cierre con conteo. La diferencia se calcula contra el efectivo esperado
// (base + ventas en efectivo - vueltas).
type CashSession struct {
	ID             string
	PharmacyID     string
	UserID         string
	OpeningAmount  decimal.Decimal
	ExpectedAmount decimal.Decimal // calculado al cierre
	CountedAmount  decimal.Decimal // declarado por el cajero al cierre
	Difference     decimal.Decimal // CountedAmount - ExpectedAmount
	Status         string
	OpenedAt       time.Time
	ClosedAt       *time.Time
}
