package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePromotionRequest alta de promoción.
type CreatePromotionRequest struct {
	ProductID   string          `json:"product_id" validate:"omitempty,uuid4"`
	Name        string          `json:"name" validate:"required,max=200"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	StartsAt    time.Time       `json:"starts_at" validate:"required"`
	EndsAt      time.Time       `json:"ends_at" validate:"required"`
}

// PromotionResponse representación pública de una promoción.
type PromotionResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	Name        string          `json:"name"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	StartsAt    time.Time       `json:"starts_at"`
	EndsAt      time.Time       `json:"ends_at"`
	Active      bool            `json:"active"`
	ValidNow    bool            `json:"valid_now"`
}
