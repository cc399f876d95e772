package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta entrante.
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// SalePaymentRequest un medio de pago de la venta (pago dividido).
type SalePaymentRequest struct {
	Method string          `json:"method" validate:"required,oneof=CASH CARD TRANSFER CREDIT"`
	Amount decimal.Decimal `json:"amount"`
}

// CreateSaleRequest registro de una venta de mostrador.
type CreateSaleRequest struct {
	CashSessionID string               `json:"cash_session_id" validate:"required,uuid4"`
	Items         []SaleItemRequest    `json:"items" validate:"required,min=1,dive"`
	Payments      []SalePaymentRequest `json:"payments" validate:"required,min=1,dive"`
}

// SaleItemResponse línea de venta resuelta.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SalePaymentResponse pago resuelto, con vuelta si aplica.
type SalePaymentResponse struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	Change decimal.Decimal `json:"change"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID        string                `json:"id"`
	Number    int64                 `json:"number"`
	Subtotal  decimal.Decimal       `json:"subtotal"`
	Discount  decimal.Decimal       `json:"discount"`
	Total     decimal.Decimal       `json:"total"`
	Status    string                `json:"status"`
	Items     []SaleItemResponse    `json:"items"`
	Payments  []SalePaymentResponse `json:"payments"`
	CreatedAt time.Time             `json:"created_at"`
}

// OpenCashSessionRequest apertura de caja con base inicial.
type OpenCashSessionRequest struct {
	OpeningAmount decimal.Decimal `json:"opening_amount"`
}

// CloseCashSessionRequest cierre de caja con el conteo del cajero.
type CloseCashSessionRequest struct {
	CountedAmount decimal.Decimal `json:"counted_amount"`
}

// CashSessionResponse estado de una sesión de caja.
type CashSessionResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	OpeningAmount  decimal.Decimal `json:"opening_amount"`
	ExpectedAmount decimal.Decimal `json:"expected_amount"`
	CountedAmount  decimal.Decimal `json:"counted_amount"`
	Difference     decimal.Decimal `json:"difference"`
	Status         string          `json:"status"`
	OpenedAt       time.Time       `json:"opened_at"`
	ClosedAt       *time.Time      `json:"closed_at,omitempty"`
}
