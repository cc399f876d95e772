package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusCompleted = "COMPLETED"
	SaleStatusVoided    = "VOIDED"
)

// Métodos de pago aceptados en el punto de venta.
const (
	PaymentCash     = "CASH"
	PaymentCard     = "CARD"
	PaymentTransfer = "TRANSFER"
	PaymentCredit   = "CREDIT" // fiado a cliente registrado
)

// Sale venta de mostrador registrada dentro de una sesión de caja.
type Sale struct {
	ID            string
	PharmacyID    string
	CashSessionID string
	UserID        string
	Number        int64 // consecutivo por farmacia
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal // descuento total aplicado (promociones)
	Total         decimal.Decimal // Subtotal - Discount
	Status        string
	VoidReason    string
	CreatedAt     time.Time
}

// SaleItem línea de venta. El precio se congela al momento de la venta.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal // descuento de la línea
	Subtotal    decimal.Decimal // Quantity*UnitPrice - Discount
}

// SalePayment un medio de pago de la venta. Una venta puede tener varios
// (pago dividido); la vuelta solo aplica sobre el tramo en efectivo.
type SalePayment struct {
	ID     string
	SaleID string
	Method string
	Amount decimal.Decimal
	Change decimal.Decimal // vuelta entregada; solo para CASH
}
