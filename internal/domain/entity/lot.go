package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot representa un lote de un producto con su propio vencimiento y remanente.
// El stock actual de un producto es la suma de los remanentes positivos de sus
// lotes no vencidos; corregir un lote corrige el stock sin contador aparte.
type Lot struct {
	ID         string
	PharmacyID string
	ProductID  string
	LotNumber  string
	Quantity   int             // remanente, siempre >= 0
	UnitCost   decimal.Decimal // costo de compra del lote
	ExpiryDate time.Time
	ReceivedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Expired informa si el lote está vencido respecto a la fecha dada.
func (l *Lot) Expired(now time.Time) bool {
	return !l.ExpiryDate.IsZero() && l.ExpiryDate.Before(now)
}
