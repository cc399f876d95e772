package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto en el catálogo.
type CreateProductRequest struct {
	Code        string          `json:"code" validate:"required,max=40"`
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=500"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	// Overrides de umbral opcionales; nil hereda de la farmacia
	CriticalThreshold *int `json:"critical_threshold" validate:"omitempty,min=0"`
	LowThreshold      *int `json:"low_threshold" validate:"omitempty,min=0"`
	MaxThreshold      *int `json:"max_threshold" validate:"omitempty,min=0"`
}

// UpdateProductRequest actualización parcial de producto.
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,max=200"`
	Description       *string          `json:"description" validate:"omitempty,max=500"`
	Price             *decimal.Decimal `json:"price"`
	Cost              *decimal.Decimal `json:"cost"`
	TaxRate           *decimal.Decimal `json:"tax_rate"`
	CriticalThreshold *int             `json:"critical_threshold" validate:"omitempty,min=0"`
	LowThreshold      *int             `json:"low_threshold" validate:"omitempty,min=0"`
	MaxThreshold      *int             `json:"max_threshold" validate:"omitempty,min=0"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	PharmacyID        string          `json:"pharmacy_id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	TaxRate           decimal.Decimal `json:"tax_rate"`
	CriticalThreshold *int            `json:"critical_threshold,omitempty"`
	LowThreshold      *int            `json:"low_threshold,omitempty"`
	MaxThreshold      *int            `json:"max_threshold,omitempty"`
	Active            bool            `json:"active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ReceiveLotRequest entrada de mercancía: un lote nuevo para un producto.
type ReceiveLotRequest struct {
	ProductID  string          `json:"product_id" validate:"required,uuid4"`
	LotNumber  string          `json:"lot_number" validate:"required,max=60"`
	Quantity   int             `json:"quantity" validate:"required,min=1"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	ExpiryDate time.Time       `json:"expiry_date" validate:"required"`
}

// AdjustLotRequest ajuste manual del remanente de un lote.
type AdjustLotRequest struct {
	Quantity int    `json:"quantity" validate:"min=0"`
	Reason   string `json:"reason" validate:"required,max=200"`
}

// LotResponse representación pública de un lote.
type LotResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	LotNumber  string          `json:"lot_number"`
	Quantity   int             `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	ExpiryDate time.Time       `json:"expiry_date"`
	ReceivedAt time.Time       `json:"received_at"`
}
