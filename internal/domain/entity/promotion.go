package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion descuento porcentual sobre un producto, con ventana de vigencia.
// ProductID vacío = promoción general de la farmacia.
type Promotion struct {
	ID          string
	PharmacyID  string
	ProductID   string
	Name        string
	DiscountPct decimal.Decimal // 0 < pct <= 100
	StartsAt    time.Time
	EndsAt      time.Time
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidAt informa si la promoción aplica en el instante dado.
func (p *Promotion) ValidAt(t time.Time) bool {
	if !p.Active {
		return false
	}
	if p.DiscountPct.LessThanOrEqual(decimal.Zero) || p.DiscountPct.GreaterThan(decimal.NewFromInt(100)) {
		return false
	}
	return !t.Before(p.StartsAt) && !t.After(p.EndsAt)
}
